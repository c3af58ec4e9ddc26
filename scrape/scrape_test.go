package scrape_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/raspador"
	"github.com/fwojciec/raspador/bloom"
	"github.com/fwojciec/raspador/mock"
	"github.com/fwojciec/raspador/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(docs ...*raspador.Document) *mock.DocumentSource {
	return &mock.DocumentSource{
		DocumentsFn: func(_ context.Context) ([]*raspador.Document, error) {
			return docs, nil
		},
	}
}

func doc(source, content string) *raspador.Document {
	return &raspador.Document{
		ID:          source,
		Source:      source,
		Content:     content,
		ContentHash: raspador.HashContent(content),
	}
}

func newCOOParser() *raspador.Parser {
	p := raspador.NewParser("receipt")
	p.MustAddField("coo", raspador.Must(raspador.NewIntegerField(`COO:(\d+)`)))
	return p
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns zero result for empty source", func(t *testing.T) {
		t.Parallel()

		r := &scrape.Runner{
			Source: staticSource(),
			Parser: &mock.DocumentParser{},
		}

		result, err := r.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Parsed)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, 0, result.Failed)
		assert.Empty(t, result.Records)
	})

	t.Run("parses documents and returns records in source order", func(t *testing.T) {
		t.Parallel()

		r := &scrape.Runner{
			Source: staticSource(
				doc("a.txt", "COO:000001\n"),
				doc("b.txt", "COO:000002\n"),
				doc("c.txt", "COO:000003\n"),
			),
			Parser:      newCOOParser(),
			Concurrency: 3,
		}

		result, err := r.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Parsed)
		require.Len(t, result.Records, 3)
		for i, want := range []int{1, 2, 3} {
			v, ok := result.Records[i].Get("coo")
			require.True(t, ok)
			assert.Equal(t, want, v)
		}
		assert.Equal(t, "a.txt", result.Records[0].DocumentID)
	})

	t.Run("counts parse failures without aborting", func(t *testing.T) {
		t.Parallel()

		p := raspador.NewParser("receipt")
		p.MustAddField("total", raspador.Must(raspador.NewFloatField(`TOTAL R\$\s+(\S+)`)))

		var events []scrape.ProgressEvent
		r := &scrape.Runner{
			Source: staticSource(
				doc("good.txt", "TOTAL R$ 1.234,56\n"),
				doc("bad.txt", "TOTAL R$ abc\n"),
			),
			Parser:      p,
			Concurrency: 1,
		}

		result, err := r.Run(context.Background(), func(e scrape.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Parsed)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "good.txt", result.Records[0].Source)

		var failed *scrape.ProgressEvent
		for i := range events {
			if events[i].Type == scrape.ProgressFailed {
				failed = &events[i]
			}
		}
		require.NotNil(t, failed)
		assert.Equal(t, "bad.txt", failed.Source)
		assert.Equal(t, raspador.ECONVERSION, raspador.ErrorCode(failed.Error))
	})

	t.Run("skips duplicate documents", func(t *testing.T) {
		t.Parallel()

		var skipped []string
		r := &scrape.Runner{
			Source: staticSource(
				doc("a.txt", "COO:000001\n"),
				doc("copy-of-a.txt", "COO:000001\n"),
				doc("b.txt", "COO:000002\n"),
			),
			Parser:     newCOOParser(),
			Duplicates: bloom.NewFilter(100, 0.01),
		}

		result, err := r.Run(context.Background(), func(e scrape.ProgressEvent) {
			if e.Type == scrape.ProgressSkipped {
				skipped = append(skipped, e.Source)
			}
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Parsed)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, []string{"copy-of-a.txt"}, skipped)
	})

	t.Run("hashes content when document has no hash", func(t *testing.T) {
		t.Parallel()

		var keys []string
		r := &scrape.Runner{
			Source: staticSource(&raspador.Document{Source: "a.txt", Content: "COO:000001\n"}),
			Parser: newCOOParser(),
			Duplicates: &mock.DuplicateFilter{
				SeenFn: func(key string) bool {
					keys = append(keys, key)
					return false
				},
			},
		}

		_, err := r.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, []string{raspador.HashContent("COO:000001\n")}, keys)
	})

	t.Run("stores records", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var stored []string
		r := &scrape.Runner{
			Source: staticSource(doc("a.txt", "COO:000001\n"), doc("b.txt", "COO:000002\n")),
			Parser: newCOOParser(),
			Records: &mock.RecordService{
				CreateRecordFn: func(_ context.Context, rec *raspador.Record) error {
					mu.Lock()
					defer mu.Unlock()
					stored = append(stored, rec.Source)
					return nil
				},
			},
		}

		result, err := r.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Parsed)
		assert.Equal(t, []string{"a.txt", "b.txt"}, stored)
	})

	t.Run("counts storage failures", func(t *testing.T) {
		t.Parallel()

		r := &scrape.Runner{
			Source: staticSource(doc("a.txt", "COO:000001\n")),
			Parser: newCOOParser(),
			Records: &mock.RecordService{
				CreateRecordFn: func(_ context.Context, _ *raspador.Record) error {
					return errors.New("disk full")
				},
			},
		}

		result, err := r.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Parsed)
		assert.Equal(t, 1, result.Failed)
		assert.Empty(t, result.Records)
	})

	t.Run("reports progress from start to finish", func(t *testing.T) {
		t.Parallel()

		var types []scrape.ProgressType
		r := &scrape.Runner{
			Source:      staticSource(doc("a.txt", "COO:000001\n")),
			Parser:      newCOOParser(),
			Concurrency: 1,
		}

		_, err := r.Run(context.Background(), func(e scrape.ProgressEvent) {
			types = append(types, e.Type)
			assert.Equal(t, 1, e.Total)
		})

		require.NoError(t, err)
		assert.Equal(t, []scrape.ProgressType{
			scrape.ProgressStarted,
			scrape.ProgressParsed,
			scrape.ProgressFinished,
		}, types)
	})

	t.Run("returns source error", func(t *testing.T) {
		t.Parallel()

		r := &scrape.Runner{
			Source: &mock.DocumentSource{
				DocumentsFn: func(_ context.Context) ([]*raspador.Document, error) {
					return nil, raspador.Errorf(raspador.ENOTFOUND, "file not found: x")
				},
			},
			Parser: newCOOParser(),
		}

		_, err := r.Run(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, raspador.ENOTFOUND, raspador.ErrorCode(err))
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := &scrape.Runner{
			Source: staticSource(doc("a.txt", "COO:000001\n")),
			Parser: newCOOParser(),
		}

		_, err := r.Run(ctx, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
