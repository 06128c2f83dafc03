package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) Repos {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepos(db)
}

func TestRunMigrationsIsRepeatable(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath), "second run is a no-op")
}

func TestRunMigrationsFromDir(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrationsFromDir(dbPath, "migrations"))
	// the embedded set shares the version table, so nothing is left to apply
	require.NoError(t, RunMigrations(dbPath))

	db, err := Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'executions'`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestLoadFixtures(t *testing.T) {
	t.Parallel()

	f, err := LoadFixtures()
	require.NoError(t, err)
	require.Len(t, f.ResearchNodes, 4)
	require.Len(t, f.Citations, 4)
	require.Len(t, f.Executions, 4)
	require.Len(t, f.Policies, 3)
	require.Len(t, f.Entities, 4)
	require.Len(t, f.ComponentChanges, 7)
	require.Len(t, f.SOPVersions, 4)

	require.Equal(t, "GOV-8821", f.Executions[0].ID)
	require.True(t, time.Date(2024, 12, 10, 9, 15, 22, 0, time.UTC).Equal(f.Executions[0].ExecutedAt))
	require.Equal(t, 0.98, f.ResearchNodes[0].Confidence)
	require.Contains(t, f.ComponentChanges[0].Rationale, "85°C")
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	repos := openTestDB(t)

	require.NoError(t, SeedDefaults(ctx, repos))
	require.NoError(t, SeedDefaults(ctx, repos))

	execs, err := repos.Executions.List(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 4)
	require.Equal(t, "GOV-8821", execs[0].ID, "newest first")

	cits, err := repos.Citations.ByNode(ctx, "RES-001")
	require.NoError(t, err)
	require.Len(t, cits, 3)

	changes, err := repos.ComponentChanges.List(ctx)
	require.NoError(t, err)
	require.Len(t, changes, 7)

	versions, err := repos.SOPVersions.List(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 4)
}

func TestRepoUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := openTestDB(t)
	require.NoError(t, SeedDefaults(ctx, repos))

	ok, err := repos.Executions.UpdateStatus(ctx, "GOV-8820", "CLEARED")
	require.NoError(t, err)
	require.True(t, ok)
	e, err := repos.Executions.Get(ctx, "GOV-8820")
	require.NoError(t, err)
	require.Equal(t, "CLEARED", e.Status)

	ok, err = repos.Executions.UpdateStatus(ctx, "GOV-0000", "CLEARED")
	require.NoError(t, err)
	require.False(t, ok)
	missing, err := repos.Executions.Get(ctx, "GOV-0000")
	require.NoError(t, err)
	require.Nil(t, missing)

	ok, err = repos.Nodes.IncrementSources(ctx, "RES-005")
	require.NoError(t, err)
	require.True(t, ok)
	n, err := repos.Nodes.Get(ctx, "RES-005")
	require.NoError(t, err)
	require.Equal(t, 9, n.Sources)

	ok, err = repos.Entities.UpdateStatus(ctx, "BOT-991", "ACTIVE")
	require.NoError(t, err)
	require.True(t, ok)
}
