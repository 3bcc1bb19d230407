package storage

import (
	"bytes"
	"io"
	"io/fs"
	"io/ioutil"
	"sync"
)

// MemStore is an in-memory Store. Writes are visible immediately.
type MemStore struct {
	mu       sync.RWMutex
	blobs    map[string]*bytes.Buffer
	writeErr error
}

func NewMemStore() *MemStore {
	return &MemStore{
		blobs: make(map[string]*bytes.Buffer),
	}
}

// FailWrites makes every subsequent Create, Append and Write return err.
// Passing nil restores normal operation.
func (m *MemStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

func (m *MemStore) Create(name string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	m.blobs[name] = &bytes.Buffer{}
	return &memWriter{store: m, name: name}, nil
}

func (m *MemStore) Append(name string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	if _, ok := m.blobs[name]; !ok {
		return nil, &fs.PathError{Op: "append", Path: name, Err: fs.ErrNotExist}
	}
	return &memWriter{store: m, name: name}, nil
}

func (m *MemStore) Open(name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return ioutil.NopCloser(bytes.NewReader(append([]byte(nil), b.Bytes()...))), nil
}

func (m *MemStore) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blobs[name]
	return ok
}

func (m *MemStore) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.blobs, name)
	return nil
}

func (m *MemStore) Size(name string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[name]
	if !ok {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return int64(b.Len()), nil
}

// Contents returns a copy of the named blob, or nil if it does not exist.
func (m *MemStore) Contents(name string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[name]
	if !ok {
		return nil
	}
	return append([]byte(nil), b.Bytes()...)
}

type memWriter struct {
	store  *MemStore
	name   string
	closed bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	if w.closed {
		return 0, fs.ErrClosed
	}
	if w.store.writeErr != nil {
		return 0, w.store.writeErr
	}
	b, ok := w.store.blobs[w.name]
	if !ok {
		return 0, &fs.PathError{Op: "write", Path: w.name, Err: fs.ErrNotExist}
	}
	return b.Write(p)
}

func (w *memWriter) Close() error {
	w.closed = true
	return nil
}
