package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName = "loan_ledger"
	maxConns        = 10
	maxConnIdleTime = 5 * time.Minute
)

// NewPgxPool opens the ledger's connection pool. Settings given in the URL (pool_max_conns and
// friends) take precedence over the defaults here. With checkConnection the pool is pinged
// before it is returned.
func NewPgxPool(ctx context.Context, databaseURL string, checkConnection bool) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	applyPoolDefaults(poolConfig, databaseURL)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if checkConnection {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		slog.InfoContext(ctx, "Connected to PostgreSQL",
			slog.String("host", poolConfig.ConnConfig.Host),
			slog.String("database", poolConfig.ConnConfig.Database),
			slog.Int("max_conns", int(poolConfig.MaxConns)))
	}
	return pool, nil
}

func applyPoolDefaults(poolConfig *pgxpool.Config, databaseURL string) {
	if !hasParam(databaseURL, "pool_max_conns") {
		poolConfig.MaxConns = maxConns
	}
	if !hasParam(databaseURL, "pool_max_conn_idle_time") {
		poolConfig.MaxConnIdleTime = maxConnIdleTime
	}
	if _, ok := poolConfig.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
}

// hasParam reports whether a URL or keyword/value connection string sets name.
func hasParam(databaseURL, name string) bool {
	return strings.Contains(databaseURL, name+"=")
}
