package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"sber/domain"
)

func fixedFactory() domain.Factory {
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	return domain.Factory{
		Now:    func() time.Time { return now },
		Digits: func() string { return "0042" },
	}
}

func TestCardDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		floor   string
		want    error
		after   string
	}{
		{"exact", "1000", "500", "0", nil, "500"},
		{"whole balance", "100", "100", "0", nil, "0"},
		{"insufficient", "100", "500", "0", domain.ErrInsufficientFunds, "100"},
		{"zero amount", "100", "0", "0", domain.ErrNonPositiveAmt, "100"},
		{"negative amount", "100", "-5", "0", domain.ErrNonPositiveAmt, "100"},
		{"overdraft floor", "100", "150", "-100", nil, "-50"},
		{"fractional", "10.10", "0.01", "0", nil, "10.09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Card{Balance: decimal.RequireFromString(tt.balance)}
			err := c.Debit(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.floor))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !c.Balance.Equal(decimal.RequireFromString(tt.after)) {
				t.Errorf("expected balance %s, got %s", tt.after, c.Balance)
			}
		})
	}
}

func TestTypeAgrees(t *testing.T) {
	tests := []struct {
		typ    domain.TxType
		amount string
		want   bool
	}{
		{domain.TxIncome, "10", true},
		{domain.TxIncome, "0", true},
		{domain.TxIncome, "-10", false},
		{domain.TxExpense, "-10", true},
		{domain.TxExpense, "0", true},
		{domain.TxExpense, "10", false},
		{"refund", "10", false},
	}
	for _, tt := range tests {
		if got := domain.TypeAgrees(tt.typ, decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("TypeAgrees(%s, %s) = %v, want %v", tt.typ, tt.amount, got, tt.want)
		}
	}
}

func TestTransactionValidateRejectsMismatch(t *testing.T) {
	tx := domain.Transaction{
		ID: 1, Title: "Зарплата", Date: "1 октября", Category: "Зарплата",
		Amount: decimal.NewFromInt(-5), Type: domain.TxIncome, Icon: domain.IconBriefcase,
	}
	if err := tx.Validate(); !errors.Is(err, domain.ErrTypeSignMismatch) {
		t.Fatalf("expected ErrTypeSignMismatch, got %v", err)
	}
}

func TestNextIDIsUniqueAgainstTaken(t *testing.T) {
	f := fixedFactory()
	now := f.Now().UnixMilli()

	if got := f.NextID(nil); got != now {
		t.Errorf("expected %d, got %d", now, got)
	}
	if got := f.NextID([]int64{1, now, now + 3}); got != now+4 {
		t.Errorf("expected %d, got %d", now+4, got)
	}
}

func TestNewCardDefaults(t *testing.T) {
	c, err := fixedFactory().NewCard(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != domain.DefaultCardName || c.Number != "0042" || c.Type != domain.CardDebit {
		t.Errorf("unexpected card %+v", c)
	}
	if !c.Balance.IsZero() {
		t.Errorf("expected zero balance, got %s", c.Balance)
	}
}

func TestNewTransfer(t *testing.T) {
	tx, err := fixedFactory().NewTransfer(nil, "Ivan", decimal.NewFromInt(500), "за обед")
	if err != nil {
		t.Fatal(err)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(-500)) || tx.Type != domain.TxExpense {
		t.Errorf("expected -500 expense, got %s %s", tx.Amount, tx.Type)
	}
	if tx.Category != domain.CategoryTransfers {
		t.Errorf("expected category %q, got %q", domain.CategoryTransfers, tx.Category)
	}
	if !strings.Contains(tx.Title, "Ivan") || !strings.Contains(tx.Title, "за обед") {
		t.Errorf("title %q should mention recipient and comment", tx.Title)
	}
	if tx.Date != "14 октября" {
		t.Errorf("expected date %q, got %q", "14 октября", tx.Date)
	}
}

func TestParseIcon(t *testing.T) {
	if _, err := domain.ParseIcon("Coffee"); err != nil {
		t.Errorf("Coffee should be known: %v", err)
	}
	if _, err := domain.ParseIcon("Rocket"); !errors.Is(err, domain.ErrUnknownIcon) {
		t.Errorf("expected ErrUnknownIcon, got %v", err)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	for _, c := range domain.DefaultCards() {
		if err := c.Validate(); err != nil {
			t.Errorf("card %d: %v", c.ID, err)
		}
	}
	for _, tx := range domain.DefaultTransactions() {
		if err := tx.Validate(); err != nil {
			t.Errorf("transaction %d: %v", tx.ID, err)
		}
	}
}
