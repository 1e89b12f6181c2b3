// Package storage is the persistence boundary: a small key-value contract
// modelled on browser localStorage and several backends for it.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Keys holding the two persisted collections.
const (
	KeyCards        = "sber_cards"
	KeyTransactions = "sber_transactions"
)

var ErrNotFound = errors.New("key not found")

// Store is a synchronous key-value store. Load returns ErrNotFound for an
// absent key. SaveBatch writes every entry or none of them.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
	SaveBatch(ctx context.Context, values map[string][]byte) error
}

// CorruptError reports a persisted value that could not be decoded.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt value at %q: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// IsCorrupt reports whether err carries a *CorruptError.
func IsCorrupt(err error) bool {
	var ce *CorruptError
	return errors.As(err, &ce)
}
