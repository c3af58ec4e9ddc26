package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/raspador"
	"github.com/fwojciec/raspador/bloom"
	"github.com/fwojciec/raspador/fs"
	"github.com/fwojciec/raspador/scrape"
	rslog "github.com/fwojciec/raspador/slog"
)

// Sizing for the duplicate filter; a batch larger than this only raises the
// false positive rate.
const (
	expectedDocuments = 100_000
	duplicateFPRate   = 0.0001
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	enc, err := NewEncoder(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raspador.ErrorMessage(err))
		return err
	}

	parser, err := c.loadParser(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raspador.ErrorMessage(err))
		return err
	}

	runner := &scrape.Runner{
		Source:      rslog.NewLoggingDocumentSource(fs.NewSource(c.Files...), deps.Logger),
		Parser:      rslog.NewLoggingParser(parser, deps.Logger),
		Concurrency: c.Concurrency,
	}
	if !c.KeepDuplicates {
		runner.Duplicates = bloom.NewFilter(expectedDocuments, duplicateFPRate)
	}
	if c.Store {
		runner.Records = deps.Records
	}

	result, err := runner.Run(deps.Ctx, func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", e.Source, e.Error)
		case scrape.ProgressSkipped:
			deps.Logger.Debug("duplicate document", "source", e.Source)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raspador.ErrorMessage(err))
		return err
	}

	if err := enc.Encode(deps.Stdout, result.Records); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}

	summary := fmt.Sprintf("Parsed %d, skipped %d, failed %d", result.Parsed, result.Skipped, result.Failed)
	if c.Store {
		summary += fmt.Sprintf(" (stored %d)", result.Parsed)
	}
	fmt.Fprintln(deps.Stderr, summary)

	if result.Failed > 0 {
		return raspador.Errorf(raspador.EINVALID, "%d of %d documents failed", result.Failed, result.Parsed+result.Skipped+result.Failed)
	}
	return nil
}

func (c *ParseCmd) loadParser(deps *Dependencies) (*raspador.Parser, error) {
	f, err := os.Open(c.Schema)
	if err != nil {
		return nil, fmt.Errorf("opening schema: %w", err)
	}
	defer f.Close()

	schema, err := deps.Schemas.LoadSchema(f)
	if err != nil {
		return nil, err
	}
	return schema.Build()
}
