package etree_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/beevik/etree"
	"github.com/fwojciec/raspador"
	retree "github.com/fwojciec/raspador/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes scalar and list fields", func(t *testing.T) {
		t.Parallel()

		records := []*raspador.Record{{
			ID:     "rec-1",
			Parser: "receipt",
			Source: "cupom.txt",
			Fields: []string{"coo", "date", "items", "cancelled"},
			Values: map[string]any{
				"coo":       1234,
				"date":      civil.Date{Year: 2013, Month: time.January, Day: 2},
				"items":     []string{"ARROZ", "FEIJAO"},
				"cancelled": false,
			},
		}}

		var buf bytes.Buffer
		require.NoError(t, retree.NewEncoder().Encode(&buf, records))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

		recs := doc.FindElements("/records/record")
		require.Len(t, recs, 1)
		assert.Equal(t, "rec-1", recs[0].SelectAttrValue("id", ""))
		assert.Equal(t, "receipt", recs[0].SelectAttrValue("parser", ""))
		assert.Equal(t, "cupom.txt", recs[0].SelectAttrValue("source", ""))

		fields := recs[0].SelectElements("field")
		require.Len(t, fields, 4)
		assert.Equal(t, "coo", fields[0].SelectAttrValue("name", ""))
		assert.Equal(t, "1234", fields[0].Text())
		assert.Equal(t, "2013-01-02", fields[1].Text())
		assert.Equal(t, "false", fields[3].Text())

		values := fields[2].SelectElements("value")
		require.Len(t, values, 2)
		assert.Equal(t, "ARROZ", values[0].Text())
		assert.Equal(t, "FEIJAO", values[1].Text())
	})

	t.Run("marks missing fields", func(t *testing.T) {
		t.Parallel()

		records := []*raspador.Record{{
			Parser: "receipt",
			Source: "cupom.txt",
			Fields: []string{"coo"},
			Values: map[string]any{},
		}}

		var buf bytes.Buffer
		require.NoError(t, retree.NewEncoder().Encode(&buf, records))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

		field := doc.FindElement("/records/record/field")
		require.NotNil(t, field)
		assert.Equal(t, "true", field.SelectAttrValue("missing", ""))
		assert.Nil(t, doc.FindElement("/records/record").SelectAttr("id"))
	})

	t.Run("escapes text", func(t *testing.T) {
		t.Parallel()

		records := []*raspador.Record{{
			Parser: "receipt",
			Source: "a&b.txt",
			Fields: []string{"name"},
			Values: map[string]any{"name": "<ACME & CIA>"},
		}}

		var buf bytes.Buffer
		require.NoError(t, retree.NewEncoder().Encode(&buf, records))
		assert.Contains(t, buf.String(), "&lt;ACME &amp; CIA&gt;")

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
		assert.Equal(t, "<ACME & CIA>", doc.FindElement("//field").Text())
	})

	t.Run("writes empty root for no records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, retree.NewEncoder().Encode(&buf, nil))
		assert.Contains(t, buf.String(), "<records/>")
	})

	t.Run("returns write errors", func(t *testing.T) {
		t.Parallel()

		err := retree.NewEncoder().Encode(failingWriter{}, nil)
		require.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
