package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DirStore keeps each blob as a file in a single directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir, creating the directory if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create storage directory %s", dir)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(name string) string {
	// names are flat; "/telemetry.txt" and "telemetry.txt" are the same blob
	name = strings.TrimLeft(filepath.Clean("/"+name), "/")
	return filepath.Join(s.dir, filepath.Base(name))
}

func (s *DirStore) Create(name string) (io.WriteCloser, error) {
	return os.Create(s.path(name))
}

func (s *DirStore) Append(name string) (io.WriteCloser, error) {
	return os.OpenFile(s.path(name), os.O_WRONLY|os.O_APPEND, 0)
}

func (s *DirStore) Open(name string) (io.ReadCloser, error) {
	return os.Open(s.path(name))
}

func (s *DirStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

func (s *DirStore) Remove(name string) error {
	return os.Remove(s.path(name))
}

func (s *DirStore) Size(name string) (int64, error) {
	fi, err := os.Stat(s.path(name))
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
