package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations applies the embedded up migrations to the database at dbPath.
func RunMigrations(dbPath string) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	return runWithSource(dbPath, func(driver migratedb.Driver) (*migrate.Migrate, error) {
		return migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	})
}

// RunMigrationsFromDir applies up migrations found at migrationsPath instead
// of the embedded set.
func RunMigrationsFromDir(dbPath, migrationsPath string) error {
	return runWithSource(dbPath, func(driver migratedb.Driver) (*migrate.Migrate, error) {
		return migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "sqlite3", driver)
	})
}

// runWithSource uses a dedicated connection: closing the migrate instance
// closes the underlying *sql.DB.
func runWithSource(dbPath string, build func(migratedb.Driver) (*migrate.Migrate, error)) error {
	db, err := Open(dbPath)
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		_ = db.Close()
		return err
	}
	m, err := build(driver)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
