package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sber/config"
)

var ErrNoURL = errors.New("database url is empty")

func ConnectPostgres(ctx context.Context, c config.PostgresConfig) (*pgxpool.Pool, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("postgres: %w (set DATABASE_URL)", ErrNoURL)
	}
	cfg, err := pgxpool.ParseConfig(c.URL)
	if err != nil {
		return nil, err
	}
	if c.MaxConns > 0 {
		cfg.MaxConns = c.MaxConns
	}
	if c.MinConns > 0 {
		cfg.MinConns = c.MinConns
	}
	if c.MaxConnIdle > 0 {
		cfg.MaxConnIdleTime = c.MaxConnIdle
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// ConnectMongo returns the collection holding the key-value documents and
// the client, which the caller disconnects on shutdown.
func ConnectMongo(ctx context.Context, c config.MongoConfig) (*mongo.Client, *mongo.Collection, error) {
	if c.URI == "" {
		return nil, nil, fmt.Errorf("mongo: %w (set MONGO_URI)", ErrNoURL)
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, client.Database(c.Database).Collection(c.Collection), nil
}
