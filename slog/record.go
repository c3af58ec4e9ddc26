package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/raspador"
)

// Ensure LoggingRecordService implements raspador.RecordService.
var _ raspador.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   raspador.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next raspador.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *raspador.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create record",
			"id", rec.ID,
			"source", rec.Source,
			"duration", time.Since(begin),
			"err", err,
			"code", raspador.ErrorCode(err),
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (rec *raspador.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
			"code", raspador.ErrorCode(err),
		)
	}(time.Now())
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter raspador.RecordFilter) (records []*raspador.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
			"code", raspador.ErrorCode(err),
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
			"code", raspador.ErrorCode(err),
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
