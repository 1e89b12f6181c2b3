package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCardName     = "Новая карта"
	DefaultCurrency     = "₽"
	DefaultTxTitle      = "Новая операция"
	DefaultTxCategory   = "Прочее"
	CategoryTransfers   = "Transfers"
	transferTitlePrefix = "Перевод: "
)

// Factory builds new records. Now and Digits are replaceable for tests.
type Factory struct {
	Now    func() time.Time
	Digits func() string
}

func NewFactory() Factory {
	return Factory{
		Now:    time.Now,
		Digits: randomDigits,
	}
}

func randomDigits() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}

func (f Factory) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// NextID returns a creation-time millisecond id that is greater than every
// id in taken.
func (f Factory) NextID(taken []int64) int64 {
	id := f.now().UnixMilli()
	for _, t := range taken {
		if t >= id {
			id = t + 1
		}
	}
	return id
}

func (f Factory) NewCard(taken []int64) (Card, error) {
	digits := f.Digits
	if digits == nil {
		digits = randomDigits
	}
	c := Card{
		ID:       f.NextID(taken),
		Name:     DefaultCardName,
		Number:   digits(),
		Balance:  decimal.Zero,
		Type:     CardDebit,
		Currency: DefaultCurrency,
	}
	return c, c.Validate()
}

// NewTransaction derives Type from the sign of amount.
func (f Factory) NewTransaction(taken []int64, title string, amount decimal.Decimal, category string, icon Icon) (Transaction, error) {
	t := Transaction{
		ID:       f.NextID(taken),
		Title:    strings.TrimSpace(title),
		Date:     FormatDate(f.now()),
		Amount:   amount,
		Type:     TypeFor(amount),
		Category: strings.TrimSpace(category),
		Icon:     icon,
	}
	return t, t.Validate()
}

func (f Factory) NewBlankTransaction(taken []int64) (Transaction, error) {
	return f.NewTransaction(taken, DefaultTxTitle, decimal.Zero, DefaultTxCategory, IconCircleDollarSign)
}

// NewTransfer builds the expense entry logged by a transfer of amount > 0.
func (f Factory) NewTransfer(taken []int64, recipient string, amount decimal.Decimal, comment string) (Transaction, error) {
	title := transferTitlePrefix + strings.TrimSpace(recipient)
	if c := strings.TrimSpace(comment); c != "" {
		title += " · " + c
	}
	return f.NewTransaction(taken, title, amount.Neg(), CategoryTransfers, IconArrowUpRight)
}
