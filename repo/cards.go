package repo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"sber/domain"
	"sber/storage"
)

type CardRepo struct {
	store storage.Store
	log   zerolog.Logger
}

func NewCardRepo(store storage.Store, log zerolog.Logger) *CardRepo {
	return &CardRepo{store: store, log: log.With().Str("key", storage.KeyCards).Logger()}
}

// Load returns the stored cards, seeding and persisting the defaults when
// nothing is stored yet. Malformed data comes back as *storage.CorruptError.
func (r *CardRepo) Load(ctx context.Context) ([]domain.Card, error) {
	b, err := r.store.Load(ctx, storage.KeyCards)
	if errors.Is(err, storage.ErrNotFound) {
		cards := domain.DefaultCards()
		if err := r.Save(ctx, cards); err != nil {
			return nil, err
		}
		r.log.Info().Int("count", len(cards)).Msg("seeded default cards")
		return cards, nil
	}
	if err != nil {
		return nil, err
	}
	return storage.DecodeCards(b)
}

func (r *CardRepo) Save(ctx context.Context, cards []domain.Card) error {
	b, err := storage.EncodeCards(cards)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, storage.KeyCards, b)
}

func (r *CardRepo) Clear(ctx context.Context) error {
	return r.store.Clear(ctx, storage.KeyCards)
}
