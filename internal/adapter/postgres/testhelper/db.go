// Package testhelper provides a containerised PostgreSQL and row seeders for
// integration tests.
package testhelper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/config"
)

const (
	dbUser     = "flashcards"
	dbPassword = "flashcards"
	dbName     = "flashcards_test"
)

var (
	containerOnce sync.Once
	containerCfg  config.DatabaseConfig
	containerErr  error
)

// SetupTestDB returns a pool connected to a migrated PostgreSQL container.
// The container is started once per test binary and outlives every test;
// the pool is closed through t.Cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	containerOnce.Do(func() {
		containerCfg, containerErr = startPostgres()
	})
	if containerErr != nil {
		t.Fatalf("testhelper: start postgres: %v", containerErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, containerCfg, "flashcards-tests")
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startPostgres() (config.DatabaseConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPassword,
				"POSTGRES_DB":       dbName,
			},
			// The entrypoint restarts the server once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("container port: %w", err)
	}

	cfg := config.DatabaseConfig{
		DSN: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			dbUser, dbPassword, host, port.Port(), dbName),
		MaxConns:        10,
		MinConns:        0,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
		ConnectTimeout:  5 * time.Second,
	}

	pool, err := postgres.NewPool(ctx, cfg, "flashcards-migrate")
	if err != nil {
		return config.DatabaseConfig{}, err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, Logger()); err != nil {
		return config.DatabaseConfig{}, err
	}
	return cfg, nil
}

// Logger returns a logger that drops every record.
func Logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
