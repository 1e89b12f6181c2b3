package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTxID        = errors.New("transaction id is empty")
	ErrEmptyTxTitle     = errors.New("transaction title is empty")
	ErrEmptyCategory    = errors.New("transaction category is empty")
	ErrTypeSignMismatch = errors.New("transaction type does not match amount sign")
)

// Transaction is a ledger entry: positive amount is income, negative is
// expense. Date is a display string, not an ordering key.
type Transaction struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TxType          `json:"type"`
	Category string          `json:"category"`
	Icon     Icon            `json:"icon"`
}

func (t Transaction) Validate() error {
	if t.ID <= 0 {
		return ErrEmptyTxID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTxTitle
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !t.Type.Valid() {
		return ErrInvalidTxType
	}
	if !t.Icon.Valid() {
		return ErrUnknownIcon
	}
	if !TypeAgrees(t.Type, t.Amount) {
		return ErrTypeSignMismatch
	}
	return nil
}

func (t Transaction) IsIncome() bool  { return t.Type == TxIncome }
func (t Transaction) IsExpense() bool { return t.Type == TxExpense }

// TypeFor derives the type from the amount sign. Zero counts as expense,
// matching a freshly created blank entry.
func TypeFor(amount decimal.Decimal) TxType {
	if amount.IsPositive() {
		return TxIncome
	}
	return TxExpense
}

// TypeAgrees: income needs amount >= 0, expense needs amount <= 0.
func TypeAgrees(t TxType, amount decimal.Decimal) bool {
	switch t {
	case TxIncome:
		return !amount.IsNegative()
	case TxExpense:
		return !amount.IsPositive()
	default:
		return false
	}
}

// SetAmount replaces the amount and re-derives the type.
func (t *Transaction) SetAmount(amount decimal.Decimal) error {
	if t == nil {
		return errors.New("nil receiver: Transaction")
	}
	if amount.IsZero() && t.Type.Valid() {
		t.Amount = amount
		return nil
	}
	t.Amount = amount
	t.Type = TypeFor(amount)
	return nil
}
