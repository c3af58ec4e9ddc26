package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/raspador"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ raspador.RecordService = (*RecordService)(nil)

// RecordService implements raspador.RecordService using SQLite.
//
// Values are stored as JSON, so a record read back carries JSON types:
// numbers become float64, dates and times become strings.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a new record, assigning its ID and creation time.
func (s *RecordService) CreateRecord(ctx context.Context, rec *raspador.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}
	values := rec.Values
	if values == nil {
		values = map[string]any{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, document_id, parser, source, fields, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.DocumentID, rec.Parser, rec.Source, string(fields), string(data),
		formatTimestamp(rec.CreatedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*raspador.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, document_id, parser, source, fields, data, created_at
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, raspador.Errorf(raspador.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, oldest first.
func (s *RecordService) FindRecords(ctx context.Context, filter raspador.RecordFilter) ([]*raspador.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, parser, source, fields, data, created_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Parser != nil {
		query.WriteString(" AND parser = ?")
		args = append(args, *filter.Parser)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*raspador.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return raspador.Errorf(raspador.ENOTFOUND, "record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*raspador.Record, error) {
	var rec raspador.Record
	var fields, data, createdAt string

	if err := row.Scan(&rec.ID, &rec.DocumentID, &rec.Parser, &rec.Source,
		&fields, &data, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &rec.Values); err != nil {
		return nil, fmt.Errorf("failed to decode values: %w", err)
	}

	var err error
	rec.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
