package di

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"sber/service"
	"sber/state"
)

// ensureState loads cards and history, seeding defaults on first run and
// resetting collections that no longer parse.
func ensureState(ctx context.Context, accounts *service.AccountService, log zerolog.Logger) error {
	if err := accounts.Load(ctx); err != nil {
		return fmt.Errorf("load account state: %w", err)
	}
	log.Info().
		Int("cards", len(accounts.Cards())).
		Int("transactions", len(accounts.Transactions())).
		Msg("account state ready")
	return nil
}

// loadUIState never fails the start-up: a broken file means defaults.
func loadUIState(path string, log zerolog.Logger) state.AppState {
	s, err := state.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("ui state unreadable, using defaults")
		return state.AppState{}
	}
	return s
}
