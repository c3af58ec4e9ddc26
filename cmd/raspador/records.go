package main

import (
	"fmt"

	"github.com/fwojciec/raspador"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	enc, err := NewEncoder(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raspador.ErrorMessage(err))
		return err
	}

	filter := raspador.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Source != "" {
		filter.Source = &c.Source
	}
	if c.Parser != "" {
		filter.Parser = &c.Parser
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raspador.ErrorMessage(err))
		return err
	}

	if len(records) == 0 && c.Format == "text" {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'raspador parse --store' to add some.")
		return nil
	}

	return enc.Encode(deps.Stdout, records)
}
