// Package pgtest starts a disposable PostgreSQL with the application schema for integration suites.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	pgadapter "hospitalfood/internal/adapters/out/postgres"
	"hospitalfood/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Tables lists every application table, children first.
var Tables = []string{"orders", "meal_plans", "patients", "staff"}

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and migrates it to the latest schema.
func Start(ctx context.Context) (*Database, error) {
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

	database := &Database{Container: container}

	database.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return database, err
	}

	if err = migrations.Up(ctx, database.DSN); err != nil {
		return database, err
	}

	database.DB, err = pgadapter.Open(database.DSN, zap.NewNop())
	return database, err
}

// Truncate empties every application table.
func (d *Database) Truncate() error {
	return d.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(Tables, ", "))).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
