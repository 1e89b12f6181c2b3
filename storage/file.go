package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in one JSON object on disk. Each call rereads
// the file so writes from another process are picked up; the last writer
// wins. Load reports an unparseable file as *CorruptError; Clear and
// SaveBatch replace it.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (s *FileStore) Save(ctx context.Context, key string, value []byte) error {
	return s.SaveBatch(ctx, map[string][]byte{key: value})
}

func (s *FileStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	switch {
	case IsCorrupt(err):
		// An unreadable file holds nothing worth keeping; rewrite it empty.
		data = map[string]string{}
	case err != nil:
		return err
	default:
		if _, ok := data[key]; !ok {
			return nil
		}
	}
	delete(data, key)
	return s.write(data)
}

func (s *FileStore) SaveBatch(_ context.Context, values map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if IsCorrupt(err) {
		data = map[string]string{}
	} else if err != nil {
		return err
	}
	for k, v := range values {
		data[k] = string(v)
	}
	return s.write(data)
}

func (s *FileStore) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	data := map[string]string{}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, &CorruptError{Key: s.path, Err: err}
	}
	return data, nil
}

// write replaces the file through a temp file and rename.
func (s *FileStore) write(data map[string]string) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".sber-store-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
