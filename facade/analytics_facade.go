package facade

import (
	"sort"

	"github.com/shopspring/decimal"

	"sber/service"
)

type AnalyticsFacade struct {
	Svc *service.AnalyticsService
}

type FlowSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

func (a AnalyticsFacade) Summary(category string) FlowSummary {
	s := a.Svc.Summary(category)
	return FlowSummary{
		Income:  s.Income,
		Expense: s.Expense,
		Net:     s.Net,
		Count:   s.Count,
	}
}

type Breakdown struct {
	Incomes  []CatSum
	Expenses []CatSum
}
type CatSum struct {
	Category string
	Amount   decimal.Decimal
}

func (a AnalyticsFacade) BreakdownByCategory() Breakdown {
	var out Breakdown
	for _, r := range a.Svc.ByCategory() {
		if !r.Income.IsZero() {
			out.Incomes = append(out.Incomes, CatSum{Category: r.Name, Amount: r.Income})
		}
		if !r.Expense.IsZero() {
			out.Expenses = append(out.Expenses, CatSum{Category: r.Name, Amount: r.Expense})
		}
	}
	sort.SliceStable(out.Incomes, func(i, j int) bool { return out.Incomes[i].Amount.GreaterThan(out.Incomes[j].Amount) })
	sort.SliceStable(out.Expenses, func(i, j int) bool { return out.Expenses[i].Amount.GreaterThan(out.Expenses[j].Amount) })
	return out
}
