// Package storage provides the flat, named-blob file store the recorder
// writes its log to. There is no directory structure and a single writer
// per name is assumed.
package storage

import (
	"io"
)

// Store is an append-oriented named-blob store.
type Store interface {
	// Create creates or truncates the named blob.
	Create(name string) (io.WriteCloser, error)

	// Append opens an existing blob for appending.
	Append(name string) (io.WriteCloser, error)

	// Open opens the named blob for reading.
	Open(name string) (io.ReadCloser, error)

	Exists(name string) bool

	Remove(name string) error

	// Size returns the blob length in bytes.
	Size(name string) (int64, error)
}
