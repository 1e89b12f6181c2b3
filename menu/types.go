package menu

import (
	"github.com/rs/zerolog"

	"sber/auth"
	"sber/facade"
	"sber/state"
)

type Item struct {
	Key   string `json:"key"`   // строковый ключ действия
	Field string `json:"field"` // текст для вывода
}

type Menu struct {
	Title string
	Items []Item
}

type Deps struct {
	Log         zerolog.Logger
	TimingsFile string

	Flow      *auth.Flow
	State     state.AppState
	StatePath string

	Bank  facade.BankFacade
	Admin facade.AdminFacade
	Ana   facade.AnalyticsFacade
}
