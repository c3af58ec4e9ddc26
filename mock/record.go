package mock

import (
	"context"
	"io"

	"github.com/fwojciec/raspador"
)

var _ raspador.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of raspador.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *raspador.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*raspador.Record, error)
	FindRecordsFn    func(ctx context.Context, filter raspador.RecordFilter) ([]*raspador.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *raspador.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*raspador.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter raspador.RecordFilter) ([]*raspador.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

var _ raspador.RecordEncoder = (*RecordEncoder)(nil)

// RecordEncoder is a mock implementation of raspador.RecordEncoder.
type RecordEncoder struct {
	EncodeFn func(w io.Writer, records []*raspador.Record) error
}

func (e *RecordEncoder) Encode(w io.Writer, records []*raspador.Record) error {
	return e.EncodeFn(w, records)
}
