package cim

import (
	"fmt"

	"github.com/joshuapare/cimkit/internal/mmfile"
)

// Store is an opened capture, backed by a read-only mmap (unix) or a byte
// slice (other platforms). The view is immutable for the Store's lifetime;
// decoders seek freely within it without re-reading the file.
type Store struct {
	path    string
	data    []byte
	cleanup func() error
}

// Open maps the capture at path read-only.
func Open(path string) (*Store, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("cim: open %s: %w", path, err)
	}
	return &Store{path: path, data: data, cleanup: cleanup}, nil
}

// FromBytes wraps an already-loaded capture. identity stands in for the file
// path in diagnostics and in the InputFilePath of every record.
func FromBytes(data []byte, identity string) *Store {
	return &Store{path: identity, data: data, cleanup: func() error { return nil }}
}

// Close releases the underlying mapping. Safe to call more than once.
func (s *Store) Close() error {
	if s == nil || s.cleanup == nil {
		return nil
	}
	err := s.cleanup()
	s.cleanup = nil
	s.data = nil
	return err
}

// Bytes returns the raw capture contents. Callers must not mutate them.
func (s *Store) Bytes() []byte { return s.data }

// Path returns the identity the Store was opened with.
func (s *Store) Path() string { return s.path }

// Size returns the capture length in bytes.
func (s *Store) Size() int64 { return int64(len(s.data)) }
