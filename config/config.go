package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

const (
	VariantFull  = "full"
	VariantShort = "short"
	VariantPIN   = "pin"
)

var (
	ErrUnknownDriver  = errors.New("unknown store driver")
	ErrUnknownVariant = errors.New("unknown auth variant")
	ErrNegativeDelay  = errors.New("auth delay must be >= 0")
	ErrBadFloor       = errors.New("balance floor is not a number")
)

// Config holds the application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Auth     AuthConfig     `yaml:"auth"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`

	// BalanceFloor is the lowest balance a debit may leave on a card.
	BalanceFloor string `yaml:"balance_floor"`

	MenuPath      string `yaml:"menu_path"`
	AdminMenuPath string `yaml:"admin_menu_path"`
	StateFile     string `yaml:"state_file"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Cache  bool   `yaml:"cache"`
}

type PostgresConfig struct {
	URL         string        `yaml:"url"`
	MaxConns    int32         `yaml:"max_conns"`
	MinConns    int32         `yaml:"min_conns"`
	MaxConnIdle time.Duration `yaml:"max_conn_idle"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type AuthConfig struct {
	Variant  string        `yaml:"variant"`
	SMSDelay time.Duration `yaml:"sms_delay"`
	PINDelay time.Duration `yaml:"pin_delay"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Pretty      bool   `yaml:"pretty"`
	TimingsFile string `yaml:"timings_file"`
}

func Default() Config {
	return Config{
		Store: StoreConfig{
			Driver: DriverFile,
			Path:   "sber_storage.json",
		},
		Postgres: PostgresConfig{
			MaxConns:    5,
			MinConns:    1,
			MaxConnIdle: 2 * time.Minute,
		},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "sber",
			Collection: "kv_store",
		},
		Auth: AuthConfig{
			Variant:  VariantFull,
			SMSDelay: 500 * time.Millisecond,
			PINDelay: 300 * time.Millisecond,
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:       "info",
			Pretty:      true,
			TimingsFile: "timings.log",
		},
		BalanceFloor:  "0",
		MenuPath:      "menu/app.json",
		AdminMenuPath: "menu/admin.json",
		StateFile:     ".state.json",
	}
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Store.Driver)
	}
	switch c.Auth.Variant {
	case VariantFull, VariantShort, VariantPIN:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Auth.Variant)
	}
	if c.Auth.SMSDelay < 0 || c.Auth.PINDelay < 0 {
		return ErrNegativeDelay
	}
	if _, err := c.Floor(); err != nil {
		return err
	}
	return nil
}

// Floor parses BalanceFloor; an empty value means zero.
func (c Config) Floor() (decimal.Decimal, error) {
	if c.BalanceFloor == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(c.BalanceFloor)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadFloor, c.BalanceFloor)
	}
	return d, nil
}
