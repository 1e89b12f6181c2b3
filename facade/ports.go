package facade

import (
	"context"

	"sber/domain"
	"sber/service"
)

// Engine is the account engine as the facades see it; *service.AccountService
// implements it.
type Engine interface {
	Cards() []domain.Card
	Transactions() []domain.Transaction
	Card(id int64) (domain.Card, bool)
	Transaction(id int64) (domain.Transaction, bool)

	AddCard(ctx context.Context) (domain.Card, error)
	UpdateCard(ctx context.Context, c domain.Card) (bool, error)
	DeleteCard(ctx context.Context, id int64) (bool, error)
	AddTransaction(ctx context.Context) (domain.Transaction, error)
	InsertTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	UpdateTransaction(ctx context.Context, t domain.Transaction) (bool, error)
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
	ResetToDefaults(ctx context.Context) error
	Transfer(ctx context.Context, in service.TransferInput) (service.TransferResult, error)
}

var _ Engine = (*service.AccountService)(nil)
