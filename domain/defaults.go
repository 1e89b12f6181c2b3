package domain

import "github.com/shopspring/decimal"

// DefaultCards is the seed used on first load and after a reset.
func DefaultCards() []Card {
	return []Card{
		{ID: 1, Name: "СберКарта", Number: "2512", Balance: decimal.RequireFromString("45230.50"), Type: CardDebit, Currency: DefaultCurrency},
		{ID: 2, Name: "Кредитная СберКарта", Number: "4771", Balance: decimal.RequireFromString("150000"), Type: CardCredit, Currency: DefaultCurrency, Blocked: true},
		{ID: 3, Name: "Платёжный счёт", Number: "5467", Balance: decimal.RequireFromString("12800"), Type: CardDebit, Currency: DefaultCurrency},
	}
}

// DefaultTransactions is the seed history, most recent first.
func DefaultTransactions() []Transaction {
	return []Transaction{
		{ID: 6, Title: "Пятёрочка", Date: "14 октября", Amount: decimal.RequireFromString("-1250.40"), Type: TxExpense, Category: "Супермаркеты", Icon: IconShoppingCart},
		{ID: 5, Title: "Кофейня", Date: "13 октября", Amount: decimal.RequireFromString("-320"), Type: TxExpense, Category: "Кафе и рестораны", Icon: IconCoffee},
		{ID: 4, Title: "Зарплата", Date: "10 октября", Amount: decimal.RequireFromString("85000"), Type: TxIncome, Category: "Зарплата", Icon: IconBriefcase},
		{ID: 3, Title: "Яндекс Такси", Date: "9 октября", Amount: decimal.RequireFromString("-540"), Type: TxExpense, Category: "Транспорт", Icon: IconCar},
		{ID: 2, Title: "МТС", Date: "5 октября", Amount: decimal.RequireFromString("-650"), Type: TxExpense, Category: "Связь", Icon: IconSmartphone},
		{ID: 1, Title: "Перевод от Анны", Date: "3 октября", Amount: decimal.RequireFromString("2000"), Type: TxIncome, Category: CategoryTransfers, Icon: IconArrowDownLeft},
	}
}
