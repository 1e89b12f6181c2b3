package facade

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"sber/domain"
)

var ErrNotFound = errors.New("record not found")

// Входы для частичного редактирования: nil означает "не менять".
type EditCardInput struct {
	ID       int64
	Name     *string
	Number   *string
	Balance  *decimal.Decimal
	Type     *domain.CardType
	Currency *string
	Blocked  *bool
}

type EditTxInput struct {
	ID       int64
	Title    *string
	Date     *string
	Amount   *decimal.Decimal
	Category *string
	Icon     *domain.Icon
	// Если тип не задан, а сумма меняется, тип выводится из знака суммы.
	Type *domain.TxType
}

// AdminFacade covers the admin panel scenarios over the engine.
type AdminFacade struct {
	Engine Engine
}

func (f AdminFacade) Cards() []domain.Card               { return f.Engine.Cards() }
func (f AdminFacade) Transactions() []domain.Transaction { return f.Engine.Transactions() }

func (f AdminFacade) AddCard(ctx context.Context) (domain.Card, error) {
	return f.Engine.AddCard(ctx)
}

func (f AdminFacade) EditCard(ctx context.Context, in EditCardInput) (domain.Card, error) {
	c, ok := f.Engine.Card(in.ID)
	if !ok {
		return domain.Card{}, fmt.Errorf("%w: card %d", ErrNotFound, in.ID)
	}
	if in.Name != nil {
		if err := c.Rename(*in.Name); err != nil {
			return domain.Card{}, err
		}
	}
	if in.Number != nil {
		c.Number = strings.TrimSpace(*in.Number)
	}
	if in.Balance != nil {
		c.Balance = *in.Balance
	}
	if in.Type != nil {
		c.Type = *in.Type
	}
	if in.Currency != nil {
		c.Currency = strings.TrimSpace(*in.Currency)
	}
	if in.Blocked != nil {
		c.Blocked = *in.Blocked
	}
	return c, f.apply(f.Engine.UpdateCard(ctx, c))
}

// ToggleBlocked flips the blocked flag and returns the updated card.
func (f AdminFacade) ToggleBlocked(ctx context.Context, id int64) (domain.Card, error) {
	c, ok := f.Engine.Card(id)
	if !ok {
		return domain.Card{}, fmt.Errorf("%w: card %d", ErrNotFound, id)
	}
	blocked := !c.Blocked
	return f.EditCard(ctx, EditCardInput{ID: id, Blocked: &blocked})
}

func (f AdminFacade) DeleteCard(ctx context.Context, id int64) error {
	return f.apply(f.Engine.DeleteCard(ctx, id))
}

func (f AdminFacade) AddTransaction(ctx context.Context) (domain.Transaction, error) {
	return f.Engine.AddTransaction(ctx)
}

func (f AdminFacade) EditTransaction(ctx context.Context, in EditTxInput) (domain.Transaction, error) {
	t, ok := f.Engine.Transaction(in.ID)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: transaction %d", ErrNotFound, in.ID)
	}
	if in.Title != nil {
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Date != nil {
		t.Date = strings.TrimSpace(*in.Date)
	}
	if in.Category != nil {
		t.Category = strings.TrimSpace(*in.Category)
	}
	if in.Icon != nil {
		t.Icon = *in.Icon
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
		if in.Type == nil {
			t.Type = domain.TypeFor(t.Amount)
		}
	}
	if in.Type != nil {
		t.Type = *in.Type
	}
	return t, f.apply(f.Engine.UpdateTransaction(ctx, t))
}

func (f AdminFacade) DeleteTransaction(ctx context.Context, id int64) error {
	return f.apply(f.Engine.DeleteTransaction(ctx, id))
}

// Import adds the entries on top of the history keeping their order.
// Ids are regenerated by the engine.
func (f AdminFacade) Import(ctx context.Context, txs []domain.Transaction) (int, error) {
	n := 0
	for i := len(txs) - 1; i >= 0; i-- {
		if _, err := f.Engine.InsertTransaction(ctx, txs[i]); err != nil {
			return n, fmt.Errorf("import row %d: %w", i+1, err)
		}
		n++
	}
	return n, nil
}

func (f AdminFacade) Reset(ctx context.Context) error {
	return f.Engine.ResetToDefaults(ctx)
}

func (f AdminFacade) apply(applied bool, err error) error {
	if err != nil {
		return err
	}
	if !applied {
		return ErrNotFound
	}
	return nil
}
