package repo

import (
	"context"

	"sber/domain"
	"sber/storage"
)

// Ledger writes both collections together through Store.SaveBatch.
type Ledger struct {
	store storage.Store
}

func NewLedger(store storage.Store) *Ledger { return &Ledger{store: store} }

func (l *Ledger) SaveAll(ctx context.Context, cards []domain.Card, txs []domain.Transaction) error {
	cb, err := storage.EncodeCards(cards)
	if err != nil {
		return err
	}
	tb, err := storage.EncodeTransactions(txs)
	if err != nil {
		return err
	}
	return l.store.SaveBatch(ctx, map[string][]byte{
		storage.KeyCards:        cb,
		storage.KeyTransactions: tb,
	})
}
