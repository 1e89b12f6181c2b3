package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sber/domain"
	"sber/repo"
	"sber/storage"
)

// Policy holds the money rules the engine enforces.
type Policy struct {
	// Floor is the lowest balance a card may be left with.
	Floor decimal.Decimal
}

// AccountService owns the in-memory cards and history. Every mutating call
// writes the whole affected collection back before it returns. It is not
// safe for concurrent use.
type AccountService struct {
	cardRepo *repo.CardRepo
	txRepo   *repo.TransactionRepo
	ledger   *repo.Ledger
	f        domain.Factory
	policy   Policy
	log      zerolog.Logger

	cards  []domain.Card
	txs    []domain.Transaction
	loaded bool
}

func NewAccountService(
	cards *repo.CardRepo,
	txs *repo.TransactionRepo,
	ledger *repo.Ledger,
	f domain.Factory,
	policy Policy,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		cardRepo: cards,
		txRepo:   txs,
		ledger:   ledger,
		f:        f,
		policy:   policy,
		log:      log.With().Str("component", "accounts").Logger(),
	}
}

// Load reads both collections from the store. A corrupt collection is
// cleared and reseeded with defaults instead of failing.
func (s *AccountService) Load(ctx context.Context) error {
	cards, err := s.cardRepo.Load(ctx)
	if storage.IsCorrupt(err) {
		s.log.Warn().Err(err).Msg("stored cards are corrupt, resetting to defaults")
		if err := s.cardRepo.Clear(ctx); err != nil {
			return err
		}
		cards, err = s.cardRepo.Load(ctx)
	}
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}

	txs, err := s.txRepo.Load(ctx)
	if storage.IsCorrupt(err) {
		s.log.Warn().Err(err).Msg("stored transactions are corrupt, resetting to defaults")
		if err := s.txRepo.Clear(ctx); err != nil {
			return err
		}
		txs, err = s.txRepo.Load(ctx)
	}
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	s.cards, s.txs, s.loaded = cards, txs, true
	s.log.Debug().Int("cards", len(cards)).Int("transactions", len(txs)).Msg("state loaded")
	return nil
}

func (s *AccountService) ensureLoaded() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (s *AccountService) Policy() Policy { return s.policy }

func (s *AccountService) Cards() []domain.Card { return slices.Clone(s.cards) }

// Transactions returns the history, most recent first.
func (s *AccountService) Transactions() []domain.Transaction { return slices.Clone(s.txs) }

func (s *AccountService) Card(id int64) (domain.Card, bool) {
	i := slices.IndexFunc(s.cards, func(c domain.Card) bool { return c.ID == id })
	if i < 0 {
		return domain.Card{}, false
	}
	return s.cards[i], true
}

func (s *AccountService) Transaction(id int64) (domain.Transaction, bool) {
	i := slices.IndexFunc(s.txs, func(t domain.Transaction) bool { return t.ID == id })
	if i < 0 {
		return domain.Transaction{}, false
	}
	return s.txs[i], true
}

func cardIDs(cards []domain.Card) []int64 {
	out := make([]int64, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func txIDs(txs []domain.Transaction) []int64 {
	out := make([]int64, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

// AddCard appends a blank debit card with a random display number.
func (s *AccountService) AddCard(ctx context.Context) (domain.Card, error) {
	if err := s.ensureLoaded(); err != nil {
		return domain.Card{}, err
	}
	c, err := s.f.NewCard(cardIDs(s.cards))
	if err != nil {
		return domain.Card{}, err
	}
	next := append(slices.Clone(s.cards), c)
	if err := s.saveCards(ctx, next); err != nil {
		return domain.Card{}, err
	}
	s.log.Info().Int64("card_id", c.ID).Msg("card added")
	return c, nil
}

// UpdateCard replaces the card with the same id. An unknown id is a no-op
// and reports false.
func (s *AccountService) UpdateCard(ctx context.Context, c domain.Card) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	i := slices.IndexFunc(s.cards, func(x domain.Card) bool { return x.ID == c.ID })
	if i < 0 {
		s.log.Debug().Int64("card_id", c.ID).Msg("update of unknown card ignored")
		return false, nil
	}
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := c.CheckFloor(s.policy.Floor); err != nil {
		return false, err
	}
	next := slices.Clone(s.cards)
	next[i] = c
	if err := s.saveCards(ctx, next); err != nil {
		return false, err
	}
	s.log.Info().Int64("card_id", c.ID).Msg("card updated")
	return true, nil
}

// DeleteCard removes the card. Transactions are left untouched.
func (s *AccountService) DeleteCard(ctx context.Context, id int64) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	next := slices.DeleteFunc(slices.Clone(s.cards), func(c domain.Card) bool { return c.ID == id })
	if len(next) == len(s.cards) {
		return false, nil
	}
	if err := s.saveCards(ctx, next); err != nil {
		return false, err
	}
	s.log.Info().Int64("card_id", id).Msg("card deleted")
	return true, nil
}

// AddTransaction prepends a blank expense entry.
func (s *AccountService) AddTransaction(ctx context.Context) (domain.Transaction, error) {
	if err := s.ensureLoaded(); err != nil {
		return domain.Transaction{}, err
	}
	t, err := s.f.NewBlankTransaction(txIDs(s.txs))
	if err != nil {
		return domain.Transaction{}, err
	}
	return s.prepend(ctx, t)
}

// InsertTransaction prepends t under a freshly generated id. Type is
// derived from the amount sign.
func (s *AccountService) InsertTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	if err := s.ensureLoaded(); err != nil {
		return domain.Transaction{}, err
	}
	t.ID = s.f.NextID(txIDs(s.txs))
	if t.Date == "" {
		t.Date = domain.FormatDate(s.f.Now())
	}
	t.Type = domain.TypeFor(t.Amount)
	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return s.prepend(ctx, t)
}

func (s *AccountService) prepend(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	next := append([]domain.Transaction{t}, s.txs...)
	if err := s.saveTransactions(ctx, next); err != nil {
		return domain.Transaction{}, err
	}
	s.log.Info().Int64("tx_id", t.ID).Msg("transaction added")
	return t, nil
}

// UpdateTransaction replaces the entry with the same id. The type must
// agree with the amount sign. An unknown id is a no-op.
func (s *AccountService) UpdateTransaction(ctx context.Context, t domain.Transaction) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	i := slices.IndexFunc(s.txs, func(x domain.Transaction) bool { return x.ID == t.ID })
	if i < 0 {
		s.log.Debug().Int64("tx_id", t.ID).Msg("update of unknown transaction ignored")
		return false, nil
	}
	if err := t.Validate(); err != nil {
		return false, err
	}
	next := slices.Clone(s.txs)
	next[i] = t
	if err := s.saveTransactions(ctx, next); err != nil {
		return false, err
	}
	s.log.Info().Int64("tx_id", t.ID).Msg("transaction updated")
	return true, nil
}

func (s *AccountService) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	next := slices.DeleteFunc(slices.Clone(s.txs), func(t domain.Transaction) bool { return t.ID == id })
	if len(next) == len(s.txs) {
		return false, nil
	}
	if err := s.saveTransactions(ctx, next); err != nil {
		return false, err
	}
	s.log.Info().Int64("tx_id", id).Msg("transaction deleted")
	return true, nil
}

// ResetToDefaults replaces both collections with the seed data in one
// batch, so a failed write leaves the old state everywhere.
func (s *AccountService) ResetToDefaults(ctx context.Context) error {
	cards, txs := domain.DefaultCards(), domain.DefaultTransactions()
	if err := s.ledger.SaveAll(ctx, cards, txs); err != nil {
		return fmt.Errorf("reset to defaults: %w", err)
	}
	s.cards, s.txs, s.loaded = cards, txs, true
	s.log.Warn().Msg("state reset to defaults")
	return nil
}

func (s *AccountService) saveCards(ctx context.Context, next []domain.Card) error {
	if err := s.cardRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("save cards: %w", err)
	}
	s.cards = next
	return nil
}

func (s *AccountService) saveTransactions(ctx context.Context, next []domain.Transaction) error {
	if err := s.txRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	s.txs = next
	return nil
}
