package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"sber/domain"
)

// Wire shapes of the two collections. Money travels as JSON numbers, the
// way the web front end wrote them.
type cardRecord struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Number   string      `json:"number"`
	Balance  json.Number `json:"balance"`
	Type     string      `json:"type"`
	Currency string      `json:"currency"`
	Blocked  bool        `json:"blocked,omitempty"`
}

type transactionRecord struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Date     string      `json:"date"`
	Amount   json.Number `json:"amount"`
	Type     string      `json:"type"`
	Category string      `json:"category"`
	Icon     string      `json:"icon"`
}

func EncodeCards(cards []domain.Card) ([]byte, error) {
	out := make([]cardRecord, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardRecord{
			ID:       c.ID,
			Name:     c.Name,
			Number:   c.Number,
			Balance:  json.Number(c.Balance.String()),
			Type:     string(c.Type),
			Currency: c.Currency,
			Blocked:  c.Blocked,
		})
	}
	return json.Marshal(out)
}

// DecodeCards parses and validates a stored card array. Any failure is
// returned as *CorruptError so callers can fall back to defaults.
func DecodeCards(b []byte) ([]domain.Card, error) {
	var in []cardRecord
	if err := strictUnmarshal(b, &in); err != nil {
		return nil, &CorruptError{Key: KeyCards, Err: err}
	}
	out := make([]domain.Card, 0, len(in))
	seen := map[int64]bool{}
	for i, r := range in {
		bal, err := decimal.NewFromString(r.Balance.String())
		if err != nil {
			return nil, &CorruptError{Key: KeyCards, Err: fmt.Errorf("card #%d balance: %w", i, err)}
		}
		t, err := domain.ParseCardType(r.Type)
		if err != nil {
			return nil, &CorruptError{Key: KeyCards, Err: fmt.Errorf("card #%d: %w", i, err)}
		}
		c := domain.Card{
			ID:       r.ID,
			Name:     r.Name,
			Number:   r.Number,
			Balance:  bal,
			Type:     t,
			Currency: r.Currency,
			Blocked:  r.Blocked,
		}
		if err := c.Validate(); err != nil {
			return nil, &CorruptError{Key: KeyCards, Err: fmt.Errorf("card #%d: %w", i, err)}
		}
		if seen[c.ID] {
			return nil, &CorruptError{Key: KeyCards, Err: fmt.Errorf("duplicate card id %d", c.ID)}
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}

func EncodeTransactions(txs []domain.Transaction) ([]byte, error) {
	out := make([]transactionRecord, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionRecord{
			ID:       t.ID,
			Title:    t.Title,
			Date:     t.Date,
			Amount:   json.Number(t.Amount.String()),
			Type:     string(t.Type),
			Category: t.Category,
			Icon:     string(t.Icon),
		})
	}
	return json.Marshal(out)
}

// DecodeTransactions keeps the stored order.
func DecodeTransactions(b []byte) ([]domain.Transaction, error) {
	var in []transactionRecord
	if err := strictUnmarshal(b, &in); err != nil {
		return nil, &CorruptError{Key: KeyTransactions, Err: err}
	}
	out := make([]domain.Transaction, 0, len(in))
	seen := map[int64]bool{}
	for i, r := range in {
		amt, err := decimal.NewFromString(r.Amount.String())
		if err != nil {
			return nil, &CorruptError{Key: KeyTransactions, Err: fmt.Errorf("transaction #%d amount: %w", i, err)}
		}
		typ, err := domain.ParseTxType(r.Type)
		if err != nil {
			return nil, &CorruptError{Key: KeyTransactions, Err: fmt.Errorf("transaction #%d: %w", i, err)}
		}
		icon, err := domain.ParseIcon(r.Icon)
		if err != nil {
			return nil, &CorruptError{Key: KeyTransactions, Err: fmt.Errorf("transaction #%d: %w", i, err)}
		}
		t := domain.Transaction{
			ID:       r.ID,
			Title:    r.Title,
			Date:     r.Date,
			Amount:   amt,
			Type:     typ,
			Category: r.Category,
			Icon:     icon,
		}
		if err := t.Validate(); err != nil {
			return nil, &CorruptError{Key: KeyTransactions, Err: fmt.Errorf("transaction #%d: %w", i, err)}
		}
		if seen[t.ID] {
			return nil, &CorruptError{Key: KeyTransactions, Err: fmt.Errorf("duplicate transaction id %d", t.ID)}
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out, nil
}

var errNotArray = errors.New("stored value is not a JSON array")

func strictUnmarshal(b []byte, v any) error {
	if t := bytes.TrimSpace(b); len(t) == 0 || t[0] != '[' {
		return errNotArray
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON array")
	}
	return nil
}
