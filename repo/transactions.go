package repo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"sber/domain"
	"sber/storage"
)

type TransactionRepo struct {
	store storage.Store
	log   zerolog.Logger
}

func NewTransactionRepo(store storage.Store, log zerolog.Logger) *TransactionRepo {
	return &TransactionRepo{store: store, log: log.With().Str("key", storage.KeyTransactions).Logger()}
}

// Load returns the stored history, most recent first, seeding defaults on
// first use.
func (r *TransactionRepo) Load(ctx context.Context) ([]domain.Transaction, error) {
	b, err := r.store.Load(ctx, storage.KeyTransactions)
	if errors.Is(err, storage.ErrNotFound) {
		txs := domain.DefaultTransactions()
		if err := r.Save(ctx, txs); err != nil {
			return nil, err
		}
		r.log.Info().Int("count", len(txs)).Msg("seeded default transactions")
		return txs, nil
	}
	if err != nil {
		return nil, err
	}
	return storage.DecodeTransactions(b)
}

func (r *TransactionRepo) Save(ctx context.Context, txs []domain.Transaction) error {
	b, err := storage.EncodeTransactions(txs)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, storage.KeyTransactions, b)
}

func (r *TransactionRepo) Clear(ctx context.Context) error {
	return r.store.Clear(ctx, storage.KeyTransactions)
}
