// Package etree encodes records as XML using beevik/etree.
package etree

import (
	"fmt"
	"io"
	"reflect"

	"github.com/beevik/etree"
	"github.com/fwojciec/raspador"
)

// Ensure Encoder implements raspador.RecordEncoder.
var _ raspador.RecordEncoder = (*Encoder)(nil)

// Encoder writes records as an indented XML document:
//
//	<records>
//	  <record id="..." parser="receipt" source="cupom.txt">
//	    <field name="coo">1234</field>
//	    <field name="items"><value>ARROZ</value><value>FEIJAO</value></field>
//	  </record>
//	</records>
//
// Fields without a value are written as empty elements with missing="true".
type Encoder struct {
	Indent int
}

// NewEncoder creates a new Encoder indenting with two spaces.
func NewEncoder() *Encoder {
	return &Encoder{Indent: 2}
}

// Encode writes records to w.
func (e *Encoder) Encode(w io.Writer, records []*raspador.Record) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("records")
	for _, rec := range records {
		encodeRecord(root.CreateElement("record"), rec)
	}

	doc.Indent(e.Indent)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing XML: %w", err)
	}
	return nil
}

func encodeRecord(el *etree.Element, rec *raspador.Record) {
	if rec.ID != "" {
		el.CreateAttr("id", rec.ID)
	}
	el.CreateAttr("parser", rec.Parser)
	el.CreateAttr("source", rec.Source)

	for _, name := range rec.Fields {
		field := el.CreateElement("field")
		field.CreateAttr("name", name)

		v, ok := rec.Values[name]
		if !ok {
			field.CreateAttr("missing", "true")
			continue
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			field.SetText(raspador.FormatValue(v))
			continue
		}
		for i := 0; i < rv.Len(); i++ {
			field.CreateElement("value").SetText(raspador.FormatValue(rv.Index(i).Interface()))
		}
	}
}
