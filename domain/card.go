package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCardID       = errors.New("card id is empty")
	ErrEmptyCardName     = errors.New("card name is empty")
	ErrEmptyCurrency     = errors.New("card currency is empty")
	ErrNonPositiveAmt    = errors.New("amount must be > 0")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBalanceBelowFloor = errors.New("balance is below the allowed floor")
)

// Card is a mock bank card. Number is a display-only digit group.
type Card struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Number   string          `json:"number"`
	Balance  decimal.Decimal `json:"balance"`
	Type     CardType        `json:"type"`
	Currency string          `json:"currency"`
	Blocked  bool            `json:"blocked,omitempty"`
}

func (c Card) Validate() error {
	if c.ID <= 0 {
		return ErrEmptyCardID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCardName
	}
	if !c.Type.Valid() {
		return ErrInvalidCardType
	}
	if strings.TrimSpace(c.Currency) == "" {
		return ErrEmptyCurrency
	}
	return nil
}

// CheckFloor reports ErrBalanceBelowFloor when the balance is under floor.
func (c Card) CheckFloor(floor decimal.Decimal) error {
	if c.Balance.LessThan(floor) {
		return ErrBalanceBelowFloor
	}
	return nil
}

func (c Card) CanDebit(amount, floor decimal.Decimal) bool {
	if !amount.GreaterThan(decimal.Zero) {
		return false
	}
	return c.Balance.Sub(amount).GreaterThanOrEqual(floor)
}

func (c *Card) Rename(name string) error {
	if c == nil {
		return errors.New("nil receiver: Card")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCardName
	}
	c.Name = name
	return nil
}

func (c *Card) Credit(amount decimal.Decimal) error {
	if c == nil {
		return errors.New("nil receiver: Card")
	}
	if !amount.GreaterThan(decimal.Zero) {
		return ErrNonPositiveAmt
	}
	c.Balance = c.Balance.Add(amount)
	return nil
}

// Debit subtracts amount exactly. The balance may not drop under floor.
func (c *Card) Debit(amount, floor decimal.Decimal) error {
	if c == nil {
		return errors.New("nil receiver: Card")
	}
	if !amount.GreaterThan(decimal.Zero) {
		return ErrNonPositiveAmt
	}
	if !c.CanDebit(amount, floor) {
		return ErrInsufficientFunds
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}
