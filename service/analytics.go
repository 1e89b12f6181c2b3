package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"sber/domain"
)

type AnalyticsService struct {
	accounts *AccountService
}

func NewAnalyticsService(accounts *AccountService) *AnalyticsService {
	return &AnalyticsService{accounts: accounts}
}

type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal // positive total of expenses
	Net     decimal.Decimal // Income - Expense
	Count   int
}

// Summary aggregates the history, optionally restricted to one category.
func (s *AnalyticsService) Summary(category string) Summary {
	income, expense := decimal.Zero, decimal.Zero
	n := 0
	for _, t := range s.accounts.Transactions() {
		if category != "" && t.Category != category {
			continue
		}
		n++
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount.Abs())
		}
	}
	return Summary{Income: income, Expense: expense, Net: income.Sub(expense), Count: n}
}

type CategorySummary struct {
	Name    string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// ByCategory groups the history by category, largest expenses first, then
// by income.
func (s *AnalyticsService) ByCategory() []CategorySummary {
	byName := map[string]*CategorySummary{}
	var order []string
	for _, t := range s.accounts.Transactions() {
		cs, ok := byName[t.Category]
		if !ok {
			cs = &CategorySummary{Name: t.Category, Income: decimal.Zero, Expense: decimal.Zero}
			byName[t.Category] = cs
			order = append(order, t.Category)
		}
		if t.Type == domain.TxIncome {
			cs.Income = cs.Income.Add(t.Amount)
		} else {
			cs.Expense = cs.Expense.Add(t.Amount.Abs())
		}
	}
	out := make([]CategorySummary, 0, len(order))
	for _, name := range order {
		cs := byName[name]
		cs.Net = cs.Income.Sub(cs.Expense)
		out = append(out, *cs)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Expense.Equal(out[j].Expense) {
			return out[i].Expense.GreaterThan(out[j].Expense)
		}
		return out[i].Income.GreaterThan(out[j].Income)
	})
	return out
}
