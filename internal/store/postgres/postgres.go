// Package postgres implements the store.Store interface backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/eshan-bhimani/vaso-map/internal/model"
	"github.com/eshan-bhimani/vaso-map/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore implements store.Store backed by a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

// Compile-time check that PostgresStore implements store.Store.
var _ store.Store = (*PostgresStore)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// LoadDataset reads all five tables and returns the flat record sets.
// The listings run sequentially on the shared pool; the dataset is small
// enough that a repeatable-read transaction buys nothing here.
func (s *PostgresStore) LoadDataset(ctx context.Context) (*model.Dataset, error) {
	vessels, err := queryListVessels(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load vessels: %w", err)
	}
	edges, err := queryListEdges(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}
	aliases, err := queryListAliases(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load aliases: %w", err)
	}
	regions, err := queryListRegions(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}
	notes, err := queryListNotes(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	return &model.Dataset{
		Vessels:  vessels,
		Edges:    edges,
		Aliases:  aliases,
		Regions:  regions,
		Notes:    notes,
		LoadedAt: time.Now().UTC(),
	}, nil
}

func (s *PostgresStore) ListVessels(ctx context.Context) ([]*model.Vessel, error) {
	return queryListVessels(ctx, s.db)
}

func (s *PostgresStore) ListEdges(ctx context.Context) ([]*model.Edge, error) {
	return queryListEdges(ctx, s.db)
}

func (s *PostgresStore) ListAliases(ctx context.Context) ([]*model.Alias, error) {
	return queryListAliases(ctx, s.db)
}

func (s *PostgresStore) ListRegions(ctx context.Context) ([]*model.Region, error) {
	return queryListRegions(ctx, s.db)
}

func (s *PostgresStore) ListNotes(ctx context.Context) ([]*model.Note, error) {
	return queryListNotes(ctx, s.db)
}
