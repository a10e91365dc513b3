package core

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/julien-sobczak/the-clozewriter/pkg/resync"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

var (
	// Lazy-load ensuring a single connection
	dbOnce      resync.Once
	dbSingleton *DB
)

// DB stores the notes in .nt/database.db.
type DB struct {
	client *sql.DB
}

func CurrentDB() *DB {
	dbOnce.Do(func() {
		var err error
		dbSingleton, err = OpenDB(CurrentConfig().DatabasePath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
			os.Exit(1)
		}
	})
	return dbSingleton
}

// OpenDB connects to the SQLite database and applies pending migrations.
func OpenDB(path string) (*DB, error) {
	client, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database %s: %w", path, err)
	}
	if err := migrateUp(client); err != nil {
		client.Close()
		return nil, err
	}
	CurrentLogger().Debugf("Connected to database %s", path)
	return &DB{client: client}, nil
}

func migrateUp(client *sql.DB) error {
	instance, err := sqlite3.WithInstance(client, &sqlite3.Config{})
	if err != nil {
		return err
	}

	d, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return fmt.Errorf("error while reading migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", instance)
	if err != nil {
		return fmt.Errorf("error while initializing migrations: %w", err)
	}

	err = m.Up() // Create/Update table schema_migrations
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error while running migrations: %w", err)
	}
	return nil
}

// Client returns the underlying connection.
func (db *DB) Client() *sql.DB {
	return db.client
}

func (db *DB) Close() error {
	if db.client != nil {
		return db.client.Close()
	}
	return nil
}
