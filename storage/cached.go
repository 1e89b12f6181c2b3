package storage

import (
	"context"
	"errors"
	"sync"
)

// CachedStore is a read-through cache in front of another Store. Writes go
// to the inner store first and then drop the cached entries they touch.
// Writes made by other processes are not seen until Invalidate.
type CachedStore struct {
	inner Store
	mu    sync.RWMutex
	byKey map[string][]byte
	miss  map[string]bool
}

func NewCachedStore(inner Store) *CachedStore {
	return &CachedStore{inner: inner, byKey: map[string][]byte{}, miss: map[string]bool{}}
}

func (s *CachedStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	if v, ok := s.byKey[key]; ok {
		s.mu.RUnlock()
		return append([]byte(nil), v...), nil
	}
	if s.miss[key] {
		s.mu.RUnlock()
		return nil, ErrNotFound
	}
	s.mu.RUnlock()

	v, err := s.inner.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		s.mu.Lock()
		s.miss[key] = true
		s.mu.Unlock()
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.byKey[key] = append([]byte(nil), v...)
	s.mu.Unlock()
	return v, nil
}

func (s *CachedStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.inner.Save(ctx, key, value); err != nil {
		return err
	}
	s.invalidate(key)
	return nil
}

func (s *CachedStore) Clear(ctx context.Context, key string) error {
	if err := s.inner.Clear(ctx, key); err != nil {
		return err
	}
	s.invalidate(key)
	return nil
}

func (s *CachedStore) SaveBatch(ctx context.Context, values map[string][]byte) error {
	if err := s.inner.SaveBatch(ctx, values); err != nil {
		return err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	s.invalidate(keys...)
	return nil
}

// Invalidate drops every cached entry.
func (s *CachedStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey = map[string][]byte{}
	s.miss = map[string]bool{}
}

func (s *CachedStore) invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.byKey, k)
		delete(s.miss, k)
	}
}
