package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"sber/domain"
)

type TransferInput struct {
	Recipient    string
	Amount       string
	SourceCardID int64
	Comment      string
}

type TransferResult struct {
	Card        domain.Card
	Transaction domain.Transaction
}

// ParseAmount reads a user-typed amount: "1 500,50", "1500.50" and
// "1,500.50" are all accepted. Kopecks are the smallest unit, so more than
// two fractional digits is an error.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.NewReplacer(" ", "", "\u00a0", "").Replace(strings.TrimSpace(raw))
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Zero, fmt.Errorf("%w: %q has more than 2 decimals", ErrInvalidAmount, raw)
	}
	return d, nil
}

// Transfer debits the source card and prepends the matching expense entry.
// Both collections are persisted in one batch; on any failure neither the
// store nor the in-memory state changes.
func (s *AccountService) Transfer(ctx context.Context, in TransferInput) (TransferResult, error) {
	if err := s.ensureLoaded(); err != nil {
		return TransferResult{}, err
	}
	recipient := strings.TrimSpace(in.Recipient)
	if recipient == "" || strings.TrimSpace(in.Amount) == "" {
		return TransferResult{}, ErrFillAllFields
	}
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return TransferResult{}, err
	}
	if !amount.IsPositive() {
		return TransferResult{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	i := slices.IndexFunc(s.cards, func(c domain.Card) bool { return c.ID == in.SourceCardID })
	if i < 0 {
		return TransferResult{}, fmt.Errorf("%w: card %d not found", domain.ErrInsufficientFunds, in.SourceCardID)
	}
	card := s.cards[i]
	if err := card.Debit(amount, s.policy.Floor); err != nil {
		return TransferResult{}, err
	}

	tx, err := s.f.NewTransfer(txIDs(s.txs), recipient, amount, in.Comment)
	if err != nil {
		return TransferResult{}, err
	}

	nextCards := slices.Clone(s.cards)
	nextCards[i] = card
	nextTxs := append([]domain.Transaction{tx}, s.txs...)

	if err := s.ledger.SaveAll(ctx, nextCards, nextTxs); err != nil {
		return TransferResult{}, fmt.Errorf("save transfer: %w", err)
	}
	s.cards, s.txs = nextCards, nextTxs

	s.log.Info().
		Int64("card_id", card.ID).
		Str("amount", amount.String()).
		Str("balance", card.Balance.String()).
		Int64("tx_id", tx.ID).
		Msg("transfer completed")
	return TransferResult{Card: card, Transaction: tx}, nil
}
