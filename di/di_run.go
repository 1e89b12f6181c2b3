package di

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.uber.org/dig"

	"sber/api"
	"sber/auth"
	"sber/config"
	"sber/db"
	"sber/domain"
	"sber/facade"
	"sber/logging"
	"sber/menu"
	"sber/repo"
	"sber/service"
	"sber/storage"
)

type Mode string

const (
	ModeApp   Mode = "app"
	ModeAdmin Mode = "admin"
	ModeServe Mode = "serve"
)

type App struct {
	Cfg  config.Config
	Log  zerolog.Logger
	Menu menu.Menu
	Deps *menu.Deps
	// Router is set in serve mode only.
	Router http.Handler

	flow    *auth.Flow
	closers *closers
}

// Close releases database connections.
func (a *App) Close() {
	if a == nil || a.closers == nil {
		return
	}
	for i := len(a.closers.fns) - 1; i >= 0; i-- {
		a.closers.fns[i]()
	}
}

type closers struct{ fns []func() }

func (c *closers) add(fn func()) { c.fns = append(c.fns, fn) }

type appMenu struct {
	dig.In

	Menu menu.Menu `name:"app"`
}

type adminMenu struct {
	dig.In

	Menu menu.Menu `name:"admin"`
}

func Build(ctx context.Context, cfg config.Config, mode Mode) (*App, error) {
	c := dig.New()
	cl := &closers{}

	providers := []any{
		func() context.Context { return ctx },
		func() config.Config { return cfg },
		func() *closers { return cl },
		func(cfg config.Config) zerolog.Logger { return logging.New(cfg.Log) },
		domain.NewFactory,
		func(cfg config.Config) (service.Policy, error) {
			floor, err := cfg.Floor()
			return service.Policy{Floor: floor}, err
		},
		newStore,

		repo.NewCardRepo,
		repo.NewTransactionRepo,
		repo.NewLedger,

		service.NewAccountService,
		service.NewAnalyticsService,

		func(s *service.AccountService) facade.AdminFacade { return facade.AdminFacade{Engine: s} },
		func(s *service.AccountService) facade.BankFacade { return facade.BankFacade{Engine: s} },
		func(a *service.AnalyticsService) facade.AnalyticsFacade { return facade.AnalyticsFacade{Svc: a} },

		func(cfg config.Config) (*auth.Flow, error) {
			return auth.NewFlow(auth.Options{
				Variant:  cfg.Auth.Variant,
				SMSDelay: cfg.Auth.SMSDelay,
				PINDelay: cfg.Auth.PINDelay,
			})
		},

		func(s *service.AccountService) api.Engine { return s },
		api.NewHandler,
		api.NewRouter,
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, err
		}
	}
	if err := c.Provide(func(cfg config.Config) (menu.Menu, error) {
		m, err := menu.Load(cfg.MenuPath)
		m.Title = "СберБанк Онлайн"
		return m, err
	}, dig.Name("app")); err != nil {
		return nil, err
	}
	if err := c.Provide(func(cfg config.Config) (menu.Menu, error) {
		m, err := menu.Load(cfg.AdminMenuPath)
		m.Title = "Админ-панель"
		return m, err
	}, dig.Name("admin")); err != nil {
		return nil, err
	}

	app := &App{Cfg: cfg, closers: cl}
	err := c.Invoke(func(ctx context.Context, log zerolog.Logger, accounts *service.AccountService) error {
		app.Log = log
		return ensureState(ctx, accounts, log)
	})
	if err != nil {
		app.Close()
		return nil, err
	}

	switch mode {
	case ModeServe:
		err = c.Invoke(func(r *mux.Router) { app.Router = r })
	case ModeApp:
		err = c.Invoke(func(m appMenu, flow *auth.Flow) { app.Menu = m.Menu; app.flow = flow })
		if err == nil {
			err = c.Invoke(app.buildDeps)
		}
	case ModeAdmin:
		err = c.Invoke(func(m adminMenu) { app.Menu = m.Menu })
		if err == nil {
			err = c.Invoke(app.buildDeps)
		}
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// buildDeps assembles what the menu actions need. Only the app mode has a
// sign-in flow.
func (a *App) buildDeps(bank facade.BankFacade, admin facade.AdminFacade, ana facade.AnalyticsFacade) {
	a.Deps = &menu.Deps{
		Log:         a.Log,
		TimingsFile: a.Cfg.Log.TimingsFile,
		Flow:        a.flow,
		State:       loadUIState(a.Cfg.StateFile, a.Log),
		StatePath:   a.Cfg.StateFile,
		Bank:        bank,
		Admin:       admin,
		Ana:         ana,
	}
}

func newStore(ctx context.Context, cfg config.Config, log zerolog.Logger, cl *closers) (storage.Store, error) {
	var s storage.Store
	switch cfg.Store.Driver {
	case config.DriverMemory:
		s = storage.NewMemoryStore()
	case config.DriverFile:
		s = storage.NewFileStore(cfg.Store.Path)
	case config.DriverPostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		cl.add(pool.Close)
		pg := storage.NewPgStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		s = pg
	case config.DriverMongo:
		client, coll, err := db.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		cl.add(func() { _ = client.Disconnect(context.Background()) })
		s = storage.NewMongoStore(coll)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Store.Driver)
	}
	if cfg.Store.Cache {
		s = storage.NewCachedStore(s)
	}
	log.Info().Str("driver", cfg.Store.Driver).Bool("cache", cfg.Store.Cache).Msg("store ready")
	return s, nil
}
