package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

func setup(t *testing.T) (context.Context, *sql.DB, Sources) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := database.NewRepos(db)
	require.NoError(t, database.SeedDefaults(ctx, repos))
	return ctx, db, New(repos, nil)
}

func TestGovernanceApproveAndFlag(t *testing.T) {
	t.Parallel()
	ctx, _, src := setup(t)

	snap, err := src.Governance.DashboardData(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Executions, 4)
	require.Len(t, snap.Policies, 3)

	e, err := src.Governance.ApproveExecution(ctx, "GOV-8820")
	require.NoError(t, err)
	require.Equal(t, StatusCleared, e.Status)
	require.Equal(t, "J.DOE", e.Initiator)

	e, err = src.Governance.FlagExecution(ctx, "GOV-8818")
	require.NoError(t, err)
	require.Equal(t, StatusFlagged, e.Status)

	_, err = src.Governance.ApproveExecution(ctx, "GOV-0001")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "GOV-0001")

	_, err = src.Governance.FlagExecution(ctx, "GOV-0001")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResearchAddSourceBumpsNode(t *testing.T) {
	t.Parallel()
	ctx, _, src := setup(t)

	draft, err := src.Research.AnalyzeURL(ctx, "https://arxiv.org/abs/2401.00001")
	require.NoError(t, err)
	c, err := src.Research.AddSource(ctx, "RES-005", draft)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(c.ID, "CIT-"))
	require.Equal(t, "PAPER", c.Type)
	require.Equal(t, "HIGH", c.Relevance)

	cits, err := src.Research.CitationsForNode(ctx, "RES-005")
	require.NoError(t, err)
	require.Len(t, cits, 2)

	snap, err := src.Research.ResearchData(ctx)
	require.NoError(t, err)
	for _, n := range snap.Nodes {
		if n.ID == "RES-005" {
			require.Equal(t, 9, n.Sources)
		}
	}

	_, err = src.Research.AddSource(ctx, "RES-999", draft)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = src.Research.AnalyzeURL(ctx, "   ")
	require.Error(t, err)
}

func TestResearchAddSourceRollsBackCitation(t *testing.T) {
	t.Parallel()
	ctx, db, src := setup(t)

	_, err := db.ExecContext(ctx, `
	CREATE TRIGGER refuse_bump BEFORE UPDATE OF sources ON research_nodes
	BEGIN SELECT RAISE(ABORT, 'bump refused'); END;`)
	require.NoError(t, err)

	_, err = src.Research.AddSource(ctx, "RES-005", SourceDraft{Title: "Orphan", Type: "BLOG"})
	require.ErrorContains(t, err, "bump refused")

	cits, err := src.Research.CitationsForNode(ctx, "RES-005")
	require.NoError(t, err)
	require.Len(t, cits, 1)
	for _, c := range cits {
		require.NotEqual(t, "Orphan", c.Title)
	}
}

func TestResearchAddSourceDefaultsRelevance(t *testing.T) {
	t.Parallel()
	ctx, _, src := setup(t)

	c, err := src.Research.AddSource(ctx, "RES-001", SourceDraft{Title: "Rollup notes", Type: "BLOG"})
	require.NoError(t, err)
	require.Equal(t, "MEDIUM", c.Relevance)
}

func TestResearchUpdateCitationMerges(t *testing.T) {
	t.Parallel()
	ctx, _, src := setup(t)

	relevance := "CRITICAL"
	c, err := src.Research.UpdateCitation(ctx, "CIT-03", CitationUpdate{Relevance: &relevance, Tags: []string{"#L2"}})
	require.NoError(t, err)
	require.Equal(t, "Flashbots Docs", c.Title)
	require.Equal(t, "CRITICAL", c.Relevance)
	require.Equal(t, []string{"#L2"}, c.Tags)

	cits, err := src.Research.CitationsForNode(ctx, "RES-001")
	require.NoError(t, err)
	var stored repository.Citation
	for _, cit := range cits {
		if cit.ID == "CIT-03" {
			stored = cit
		}
	}
	require.Equal(t, "CRITICAL", stored.Relevance)
	require.Equal(t, []string{"#L2"}, stored.Tags)

	_, err = src.Research.UpdateCitation(ctx, "CIT-99", CitationUpdate{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResearchAskQuestion(t *testing.T) {
	t.Parallel()
	ctx, _, src := setup(t)

	answer, err := src.Research.AskQuestion(ctx, "RES-001", "what about sequencers?")
	require.NoError(t, err)
	require.Contains(t, answer, "consensus is that sequencers? is critical")

	_, err = src.Research.AskQuestion(ctx, "RES-404", "anything")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIdentityAddAndUpdate(t *testing.T) {
	t.Parallel()
	ctx, _, src := setup(t)

	e, err := src.Identity.AddEntity(ctx, repository.Entity{Name: "Night_Auditor", Type: "HUMAN", Role: "READ_ONLY"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(e.ID, "USR-"))
	require.Equal(t, EntityActive, e.Status)
	require.False(t, e.LastSeenAt.IsZero())

	kept, err := src.Identity.AddEntity(ctx, repository.Entity{ID: "SVC-777", Name: "Ledger", Type: "SERVICE", Role: "SYSTEM_WRITE", Status: EntityIdle})
	require.NoError(t, err)
	require.Equal(t, "SVC-777", kept.ID)
	require.Equal(t, EntityIdle, kept.Status)

	list, err := src.Identity.Entities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 6)

	up, err := src.Identity.UpdateStatus(ctx, "BOT-991", EntityActive)
	require.NoError(t, err)
	require.Equal(t, EntityActive, up.Status)

	_, err = src.Identity.UpdateStatus(ctx, "USR-404", EntityActive)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = src.Identity.AddEntity(ctx, repository.Entity{Type: "BOT"})
	require.Error(t, err)
}

func TestAuditLists(t *testing.T) {
	t.Parallel()
	ctx, _, src := setup(t)

	changes, err := src.Audit.ComponentChanges(ctx)
	require.NoError(t, err)
	require.Len(t, changes, 7)
	require.Equal(t, "COMP-2847", changes[0].ComponentID)

	versions, err := src.Audit.SOPVersions(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 4)
	require.Equal(t, "v4.2", versions[0].Version)
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()
	ctx, db, src := setup(t)

	m := &MaintenanceService{DB: db}
	require.NoError(t, m.Reset(ctx))

	snap, err := src.Governance.DashboardData(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.Executions)
	require.Empty(t, snap.Policies)

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}
