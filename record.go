package raspador

import (
	"context"
	"io"
	"time"
)

// Record holds the values extracted from one document.
type Record struct {
	ID         string         `json:"id"`
	DocumentID string         `json:"documentId"`
	Parser     string         `json:"parser"`
	Source     string         `json:"source"`
	Fields     []string       `json:"fields"` // Declaration order
	Values     map[string]any `json:"values"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Parser == "" {
		return Errorf(EINVALID, "record parser required")
	}
	if r.Source == "" {
		return Errorf(EINVALID, "record source required")
	}
	return nil
}

// Get returns the value of the named field and whether it is present.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// RecordService represents a service for managing records.
type RecordService interface {
	// CreateRecord stores a new record.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID     *string `json:"id"`
	Parser *string `json:"parser"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordEncoder writes records in a serialization format.
type RecordEncoder interface {
	Encode(w io.Writer, records []*Record) error
}
