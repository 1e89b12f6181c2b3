package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sber/auth"
	"sber/config"
	"sber/di"
	"sber/menu"
)

func main() {
	mode := di.ModeApp
	if len(os.Args) > 1 {
		mode = di.Mode(os.Args[1])
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := di.Build(ctx, cfg, mode)
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}
	defer app.Close()

	switch mode {
	case di.ModeServe:
		err = serve(ctx, app)
	case di.ModeApp:
		err = runApp(ctx, app)
	case di.ModeAdmin:
		menu.Run(ctx, app.Menu, app.Deps)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		app.Log.Error().Err(err).Str("mode", string(mode)).Msg("stopped")
	}
}

// runApp signs the user in and reopens the page they left last time.
func runApp(ctx context.Context, app *di.App) error {
	if err := menu.Login(ctx, app.Deps); err != nil {
		return err
	}
	last := auth.Page(app.Deps.State.LastPage)
	if last.Valid() && last != auth.PageMain && last != auth.PageTransfer {
		if err := menu.Execute(ctx, string(last), app.Deps); err != nil {
			fmt.Println("Ошибка:", err)
		}
		menu.WaitEnter()
	}
	menu.Run(ctx, app.Menu, app.Deps)
	return nil
}

func serve(ctx context.Context, app *di.App) error {
	srv := &http.Server{Addr: app.Cfg.HTTP.Addr, Handler: app.Router}

	errCh := make(chan error, 1)
	go func() {
		app.Log.Info().Str("addr", srv.Addr).Msg("http api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.Log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
