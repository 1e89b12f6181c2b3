package domain

import (
	"errors"
	"fmt"
)

type CardType string

const (
	CardDebit  CardType = "debit"
	CardCredit CardType = "credit"
)

func (t CardType) Valid() bool { return t == CardDebit || t == CardCredit }

type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

func (t TxType) Valid() bool { return t == TxIncome || t == TxExpense }

var (
	ErrInvalidCardType = errors.New("invalid card type")
	ErrInvalidTxType   = errors.New("invalid transaction type")
)

func ParseCardType(s string) (CardType, error) {
	t := CardType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCardType, s)
	}
	return t, nil
}

func ParseTxType(s string) (TxType, error) {
	t := TxType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTxType, s)
	}
	return t, nil
}
