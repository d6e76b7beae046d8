package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"buildready/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// LocalDocumentStore writes uploaded pricing documents to a directory on
// disk, one subdirectory per account. The stored filename is prefixed with a
// UUID so repeated uploads of the same file never collide.
//
// Env:
//   - DOCUMENTS_DIR (default: ./data/documents)

type LocalDocumentStore struct {
	baseDir string
}

var _ interfaces.IDocumentStore = (*LocalDocumentStore)(nil)

func NewLocalDocumentStore() *LocalDocumentStore {
	dir := os.Getenv("DOCUMENTS_DIR")
	if dir == "" {
		dir = filepath.Join("data", "documents")
	}
	return &LocalDocumentStore{baseDir: dir}
}

func NewLocalDocumentStoreAt(baseDir string) *LocalDocumentStore {
	return &LocalDocumentStore{baseDir: baseDir}
}

func (s *LocalDocumentStore) Save(_ context.Context, accountID, filename string, r io.Reader) (string, int64, error) {
	dir := filepath.Join(s.baseDir, accountID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, err
	}

	path := filepath.Join(dir, uuid.NewString()+"_"+filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}
	return path, size, nil
}

func (s *LocalDocumentStore) Remove(_ context.Context, storedPath string) error {
	return os.Remove(storedPath)
}
