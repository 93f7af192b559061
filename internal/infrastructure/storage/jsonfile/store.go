// Package jsonfile persists keyed record collections as JSON documents on disk.
// One document per record type; the whole document is rewritten on every save.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"aktiva/internal/core/apperror"
)

// Store reads and writes one JSON document mapping record identifiers
// (canonical UUID strings) to serialized records. It owns no long-lived
// state; it is invoked on demand by the repository layer.
type Store struct {
	path string
}

// NewStore creates a Store for the given document path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing document path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole document. A missing document is the bootstrap case of
// a first run and yields an empty collection, not an error.
func (s *Store) Load(ctx context.Context) (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, apperror.NewStorage("failed to read backing document", err).
			WithDetail("path", s.path).
			WithDetail("kind", "io")
	}

	docs := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, apperror.NewStorage("backing document is not well-formed JSON", err).
			WithDetail("path", s.path).
			WithDetail("kind", "format")
	}
	return docs, nil
}

// Save fully overwrites the document with the given collection.
// The write goes through a temp file in the same directory followed by a
// rename, so a crash mid-write never leaves a truncated document behind.
func (s *Store) Save(ctx context.Context, docs map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return apperror.NewStorage("failed to serialize collection", err).
			WithDetail("path", s.path).
			WithDetail("kind", "format")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return apperror.NewStorage("failed to create temp document", err).
			WithDetail("path", s.path).
			WithDetail("kind", "io")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.NewStorage("failed to write backing document", err).
			WithDetail("path", s.path).
			WithDetail("kind", "io")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorage("failed to flush backing document", err).
			WithDetail("path", s.path).
			WithDetail("kind", "io")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorage("failed to replace backing document", err).
			WithDetail("path", s.path).
			WithDetail("kind", "io")
	}
	return nil
}
