package main

import (
	"fmt"

	"github.com/fwojciec/raspador"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	enc, err := NewEncoder(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raspador.ErrorMessage(err))
		return err
	}

	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if raspador.ErrorCode(err) == raspador.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'raspador records' to see stored records.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", raspador.ErrorMessage(err))
		return err
	}

	if c.Format == "text" {
		fmt.Fprintf(deps.Stdout, "ID: %s\nParser: %s\nStored: %s\n\n", rec.ID, rec.Parser, rec.CreatedAt.Format("2006-01-02 15:04"))
	}
	return enc.Encode(deps.Stdout, []*raspador.Record{rec})
}
