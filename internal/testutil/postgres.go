// Package testutil starts a disposable PostgreSQL for integration tests.
package testutil

import (
	"context"
	"strings"
	"time"

	"workshop/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every application table, children first.
var Tables = []string{"task_instances", "workflow_instances", "orders", "workflows", "tasks"}

// Postgres is a running container with the schema migrated.
type Postgres struct {
	Container *postgres.PostgresContainer
	URL       string
	DB        *gorm.DB
}

// StartPostgres runs postgres:15-alpine, applies the embedded migrations and opens GORM.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := migrations.Up(url); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(url), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Postgres{Container: container, URL: url, DB: db}, nil
}

// Truncate empties every application table.
func (p *Postgres) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE " + strings.Join(Tables, ", ") + " CASCADE").Error
}

// Terminate closes the connection pool and stops the container.
func (p *Postgres) Terminate(ctx context.Context) error {
	if sqlDB, err := p.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return p.Container.Terminate(ctx)
}
