package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	envConfigPath    = "SBER_CONFIG"
	envStoreDriver   = "SBER_STORE"
	envStorePath     = "SBER_STORE_PATH"
	envStoreCache    = "SBER_STORE_CACHE"
	envDatabaseURL   = "DATABASE_URL"
	envMongoURI      = "MONGO_URI"
	envMongoDatabase = "MONGO_DATABASE"
	envHTTPAddr      = "SBER_HTTP_ADDR"
	envAuthVariant   = "SBER_AUTH_VARIANT"
	envBalanceFloor  = "SBER_BALANCE_FLOOR"
	envLogLevel      = "SBER_LOG_LEVEL"
	envLogPretty     = "SBER_LOG_PRETTY"
	envMenuPath      = "MENU_PATH"
	envAdminMenuPath = "ADMIN_MENU_PATH"
	envStateFile     = "SBER_STATE_FILE"

	defaultConfigPath = "sber.yaml"
)

// Path returns the config file location: SBER_CONFIG or sber.yaml.
func Path() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	return defaultConfigPath
}

// Load reads the YAML file at path on top of Default() and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(c *Config) error {
	setString(&c.Store.Driver, envStoreDriver)
	setString(&c.Store.Path, envStorePath)
	setString(&c.Postgres.URL, envDatabaseURL)
	setString(&c.Mongo.URI, envMongoURI)
	setString(&c.Mongo.Database, envMongoDatabase)
	setString(&c.HTTP.Addr, envHTTPAddr)
	setString(&c.Auth.Variant, envAuthVariant)
	setString(&c.BalanceFloor, envBalanceFloor)
	setString(&c.Log.Level, envLogLevel)
	setString(&c.MenuPath, envMenuPath)
	setString(&c.AdminMenuPath, envAdminMenuPath)
	setString(&c.StateFile, envStateFile)

	if err := setBool(&c.Store.Cache, envStoreCache); err != nil {
		return err
	}
	if err := setBool(&c.Log.Pretty, envLogPretty); err != nil {
		return err
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = b
	return nil
}
