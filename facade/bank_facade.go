package facade

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"sber/domain"
	"sber/service"
)

// BankFacade is the read side of the banking app plus the transfer command.
type BankFacade struct {
	Engine Engine
}

// TotalBalance sums the balances of cards that are not blocked.
func (f BankFacade) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, c := range f.Engine.Cards() {
		if c.Blocked {
			continue
		}
		total = total.Add(c.Balance)
	}
	return total
}

func (f BankFacade) Cards() []domain.Card { return f.Engine.Cards() }

// ActiveCards lists the cards a transfer may be sent from.
func (f BankFacade) ActiveCards() []domain.Card {
	var out []domain.Card
	for _, c := range f.Engine.Cards() {
		if !c.Blocked {
			out = append(out, c)
		}
	}
	return out
}

// History returns the entries, most recent first. An empty category means
// all of them.
func (f BankFacade) History(category string) []domain.Transaction {
	all := f.Engine.Transactions()
	if category == "" {
		return all
	}
	out := make([]domain.Transaction, 0, len(all))
	for _, t := range all {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Recent is the head of the history shown on the main page.
func (f BankFacade) Recent(n int) []domain.Transaction {
	all := f.Engine.Transactions()
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

func (f BankFacade) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range f.Engine.Transactions() {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	sort.Strings(out)
	return out
}

func (f BankFacade) Transfer(ctx context.Context, in service.TransferInput) (service.TransferResult, error) {
	return f.Engine.Transfer(ctx, in)
}
