package facade_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sber/domain"
	"sber/facade"
	"sber/repo"
	"sber/service"
	"sber/storage"
)

func engine(t *testing.T) *service.AccountService {
	t.Helper()
	store := storage.NewMemoryStore()
	log := zerolog.Nop()
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	s := service.NewAccountService(
		repo.NewCardRepo(store, log),
		repo.NewTransactionRepo(store, log),
		repo.NewLedger(store),
		domain.Factory{Now: func() time.Time { return now }, Digits: func() string { return "0000" }},
		service.Policy{Floor: decimal.Zero},
		log,
	)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s
}

func ptr[T any](v T) *T { return &v }

func TestBankTotalBalanceSkipsBlocked(t *testing.T) {
	bank := facade.BankFacade{Engine: engine(t)}
	// 45230.50 + 12800; the credit card is blocked
	if got := bank.TotalBalance(); !got.Equal(decimal.RequireFromString("58030.50")) {
		t.Errorf("total balance: got %s", got)
	}
	if n := len(bank.ActiveCards()); n != 2 {
		t.Errorf("expected 2 active cards, got %d", n)
	}
}

func TestBankHistory(t *testing.T) {
	bank := facade.BankFacade{Engine: engine(t)}
	if n := len(bank.History("")); n != 6 {
		t.Errorf("expected full history, got %d", n)
	}
	h := bank.History("Связь")
	if len(h) != 1 || h[0].Title != "МТС" {
		t.Errorf("unexpected filtered history %+v", h)
	}
	if n := len(bank.Recent(3)); n != 3 {
		t.Errorf("expected 3 recent, got %d", n)
	}
	if n := len(bank.Categories()); n != 6 {
		t.Errorf("expected 6 categories, got %d", n)
	}
}

func TestAdminEditCard(t *testing.T) {
	ctx := context.Background()
	e := engine(t)
	admin := facade.AdminFacade{Engine: e}

	c, err := admin.EditCard(ctx, facade.EditCardInput{ID: 1, Name: ptr("Основная"), Balance: ptr(decimal.NewFromInt(10))})
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Основная" || !c.Balance.Equal(decimal.NewFromInt(10)) || c.Number != "2512" {
		t.Errorf("unexpected card %+v", c)
	}
	if _, err := admin.EditCard(ctx, facade.EditCardInput{ID: 1, Name: ptr("  ")}); !errors.Is(err, domain.ErrEmptyCardName) {
		t.Errorf("expected ErrEmptyCardName, got %v", err)
	}
	if _, err := admin.EditCard(ctx, facade.EditCardInput{ID: 999}); !errors.Is(err, facade.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	c, err = admin.ToggleBlocked(ctx, 1)
	if err != nil || !c.Blocked {
		t.Fatalf("ToggleBlocked: %+v %v", c, err)
	}
	if stored, _ := e.Card(1); !stored.Blocked {
		t.Error("blocked flag not persisted in engine")
	}
}

func TestAdminEditTransactionDerivesType(t *testing.T) {
	ctx := context.Background()
	admin := facade.AdminFacade{Engine: engine(t)}

	tx, err := admin.EditTransaction(ctx, facade.EditTxInput{ID: 6, Amount: ptr(decimal.NewFromInt(100))})
	if err != nil {
		t.Fatal(err)
	}
	if tx.Type != domain.TxIncome {
		t.Errorf("expected derived income, got %s", tx.Type)
	}
	_, err = admin.EditTransaction(ctx, facade.EditTxInput{ID: 6, Amount: ptr(decimal.NewFromInt(-5)), Type: ptr(domain.TxIncome)})
	if !errors.Is(err, domain.ErrTypeSignMismatch) {
		t.Errorf("expected ErrTypeSignMismatch, got %v", err)
	}
	if err := admin.DeleteTransaction(ctx, 424242); !errors.Is(err, facade.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminImportKeepsOrder(t *testing.T) {
	ctx := context.Background()
	admin := facade.AdminFacade{Engine: engine(t)}
	rows := []domain.Transaction{
		{Title: "A", Amount: decimal.NewFromInt(-1), Category: "X", Icon: domain.IconCoffee},
		{Title: "B", Amount: decimal.NewFromInt(2), Category: "X", Icon: domain.IconGift},
	}
	n, err := admin.Import(ctx, rows)
	if err != nil || n != 2 {
		t.Fatalf("Import: %d %v", n, err)
	}
	got := admin.Transactions()
	if got[0].Title != "A" || got[1].Title != "B" {
		t.Errorf("expected imported rows on top in file order, got %q %q", got[0].Title, got[1].Title)
	}
	if got[1].Type != domain.TxIncome || got[0].ID == got[1].ID {
		t.Errorf("unexpected imported rows %+v %+v", got[0], got[1])
	}
}

func TestAnalyticsBreakdown(t *testing.T) {
	a := facade.AnalyticsFacade{Svc: service.NewAnalyticsService(engine(t))}
	b := a.BreakdownByCategory()
	if len(b.Expenses) != 4 || b.Expenses[0].Category != "Супермаркеты" {
		t.Errorf("unexpected expenses %+v", b.Expenses)
	}
	if len(b.Incomes) != 2 || b.Incomes[0].Category != "Зарплата" {
		t.Errorf("unexpected incomes %+v", b.Incomes)
	}
	if s := a.Summary(""); s.Count != 6 {
		t.Errorf("expected 6 entries, got %d", s.Count)
	}
}
