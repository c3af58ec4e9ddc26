package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/raspador"
	"github.com/fwojciec/raspador/etree"
)

// NewEncoder returns the record encoder for an output format.
func NewEncoder(format string) (raspador.RecordEncoder, error) {
	switch format {
	case "", "text":
		return textEncoder{}, nil
	case "json":
		return jsonEncoder{}, nil
	case "xml":
		return etree.NewEncoder(), nil
	}
	return nil, raspador.Errorf(raspador.EINVALID, "unknown format %q", format)
}

type textEncoder struct{}

func (textEncoder) Encode(w io.Writer, records []*raspador.Record) error {
	if len(records) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, raspador.FormatRecords(records))
	return err
}

type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, records []*raspador.Record) error {
	if records == nil {
		records = []*raspador.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
