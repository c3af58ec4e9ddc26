package raspador

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Document represents one text document to be scraped, e.g. the log of a
// single fiscal receipt.
type Document struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	ReadAt      time.Time `json:"readAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	return nil
}

// Lines splits the document content into lines, dropping line terminators.
func (d *Document) Lines() []string {
	if d.Content == "" {
		return nil
	}
	content := strings.TrimSuffix(d.Content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// HashContent computes the xxHash of content and returns it as a hex string.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// DocumentSource provides the documents to be scraped.
type DocumentSource interface {
	Documents(ctx context.Context) ([]*Document, error)
}

// DocumentParser turns a document into a record.
type DocumentParser interface {
	Parse(ctx context.Context, doc *Document) (*Record, error)
}

// DuplicateFilter detects documents that were already seen.
type DuplicateFilter interface {
	// Seen records key and reports whether it had been recorded before.
	// False positives are possible depending on the implementation.
	Seen(key string) bool
}
