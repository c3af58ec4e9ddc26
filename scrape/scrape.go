// Package scrape provides batch scraping orchestration.
// It coordinates loading documents, skipping duplicates, parsing and
// storage of the extracted records.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/raspador"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents parsed at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// Runner scrapes every document of a source with one parser.
// Records and Duplicates are optional.
type Runner struct {
	Source      raspador.DocumentSource
	Parser      raspador.DocumentParser
	Records     raspador.RecordService
	Duplicates  raspador.DuplicateFilter
	Concurrency int
}

// Result holds the outcome of a scrape.
type Result struct {
	Parsed  int
	Skipped int
	Failed  int

	// Records holds the successfully parsed records in source order.
	Records []*raspador.Record
}

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressParsed
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// parseResult holds the outcome of parsing a single document.
type parseResult struct {
	position int
	doc      *raspador.Document
	rec      *raspador.Record
	err      error
}

// Run parses all documents and stores the records if a RecordService is set.
// A document that fails to parse or store is counted and reported, and does
// not abort the batch. Run returns an error only when the source fails or
// ctx is cancelled.
func (r *Runner) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	docs, err := r.Source.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	total := len(docs)
	result := &Result{}
	completed := 0

	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	// Deduplicate in source order so the first copy of a document wins.
	var pending []*raspador.Document
	for _, doc := range docs {
		if r.Duplicates != nil && r.Duplicates.Seen(contentKey(doc)) {
			result.Skipped++
			completed++
			notify(ProgressEvent{
				Type:      ProgressSkipped,
				Completed: completed,
				Total:     total,
				Source:    doc.Source,
			})
			continue
		}
		pending = append(pending, doc)
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan parseResult, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, doc := range pending {
			i, doc := i, doc
			g.Go(func() error {
				rec, err := r.Parser.Parse(gctx, doc)
				resultCh <- parseResult{position: i, doc: doc, rec: rec, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]parseResult, len(pending))
	for res := range resultCh {
		completed++
		results[res.position] = res

		if res.err != nil {
			result.Failed++
			notify(ProgressEvent{
				Type:      ProgressFailed,
				Completed: completed,
				Total:     total,
				Source:    res.doc.Source,
				Error:     res.err,
			})
			continue
		}
		notify(ProgressEvent{
			Type:      ProgressParsed,
			Completed: completed,
			Total:     total,
			Source:    res.doc.Source,
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, res := range results {
		if res.err != nil {
			continue
		}

		if r.Records != nil {
			if err := r.Records.CreateRecord(ctx, res.rec); err != nil {
				result.Failed++
				notify(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					Source:    res.doc.Source,
					Error:     fmt.Errorf("storing record: %w", err),
				})
				continue
			}
		}

		result.Parsed++
		result.Records = append(result.Records, res.rec)
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

func contentKey(doc *raspador.Document) string {
	if doc.ContentHash != "" {
		return doc.ContentHash
	}
	return raspador.HashContent(doc.Content)
}
