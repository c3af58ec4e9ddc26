// Package fs reads documents from the local file system.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fwojciec/raspador"
	"github.com/google/uuid"
)

// Ensure Source implements raspador.DocumentSource at compile time.
var _ raspador.DocumentSource = (*Source)(nil)

// Source reads one document per file. Directories are expanded to the
// regular files they contain, in lexical order, without recursing.
type Source struct {
	paths []string

	// Now returns the read timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewSource creates a Source for the given file or directory paths.
func NewSource(paths ...string) *Source {
	return &Source{paths: paths, Now: time.Now}
}

// Documents reads every file, in the order given.
func (s *Source) Documents(ctx context.Context) ([]*raspador.Document, error) {
	if len(s.paths) == 0 {
		return nil, raspador.Errorf(raspador.EINVALID, "no input files")
	}

	files, err := s.expand()
	if err != nil {
		return nil, err
	}

	docs := make([]*raspador.Document, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		docs = append(docs, &raspador.Document{
			ID:          uuid.New().String(),
			Source:      path,
			Content:     string(content),
			ContentHash: raspador.HashContent(string(content)),
			ReadAt:      s.Now(),
		})
	}

	return docs, nil
}

func (s *Source) expand() ([]string, error) {
	var files []string
	for _, path := range s.paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return nil, raspador.Errorf(raspador.ENOTFOUND, "file not found: %s", path)
		}
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", path, err)
		}
		var names []string
		for _, e := range entries {
			if e.Type().IsRegular() {
				names = append(names, filepath.Join(path, e.Name()))
			}
		}
		sort.Strings(names)
		files = append(files, names...)
	}
	return files, nil
}
