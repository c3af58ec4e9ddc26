package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/raspador"
)

// Ensure LoggingParser implements raspador.DocumentParser.
var _ raspador.DocumentParser = (*LoggingParser)(nil)

// LoggingParser wraps a DocumentParser with logging.
type LoggingParser struct {
	next   raspador.DocumentParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next raspador.DocumentParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(ctx context.Context, doc *raspador.Document) (rec *raspador.Record, err error) {
	defer func(begin time.Time) {
		fields := 0
		if rec != nil {
			fields = len(rec.Values)
		}
		p.logger.Info("parse",
			"source", doc.Source,
			"lines", len(doc.Lines()),
			"fields", fields,
			"duration", time.Since(begin),
			"err", err,
			"code", raspador.ErrorCode(err),
		)
	}(time.Now())
	return p.next.Parse(ctx, doc)
}

// Ensure LoggingDocumentSource implements raspador.DocumentSource.
var _ raspador.DocumentSource = (*LoggingDocumentSource)(nil)

// LoggingDocumentSource wraps a DocumentSource with logging.
type LoggingDocumentSource struct {
	next   raspador.DocumentSource
	logger *slog.Logger
}

// NewLoggingDocumentSource creates a new LoggingDocumentSource.
func NewLoggingDocumentSource(next raspador.DocumentSource, logger *slog.Logger) *LoggingDocumentSource {
	return &LoggingDocumentSource{next: next, logger: logger}
}

// Documents delegates to the wrapped source and logs the operation.
func (s *LoggingDocumentSource) Documents(ctx context.Context) (docs []*raspador.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
			"code", raspador.ErrorCode(err),
		)
	}(time.Now())
	return s.next.Documents(ctx)
}
