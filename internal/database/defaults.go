package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

//go:embed fixtures/seed.yaml
var seedYAML []byte

// Fixtures is the canonical data set the console ships with.
type Fixtures struct {
	ResearchNodes    []repository.ResearchNode    `yaml:"research_nodes"`
	Citations        []repository.Citation        `yaml:"citations"`
	Executions       []repository.Execution       `yaml:"executions"`
	Policies         []repository.Policy          `yaml:"policies"`
	Entities         []repository.Entity          `yaml:"entities"`
	ComponentChanges []repository.ComponentChange `yaml:"component_changes"`
	SOPVersions      []repository.SOPVersion      `yaml:"sop_versions"`
}

// LoadFixtures decodes the embedded seed data.
func LoadFixtures() (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

// Repos bundles the repositories seeding writes through.
type Repos struct {
	DB               *sql.DB
	Nodes            *repository.ResearchNodeRepo
	Citations        *repository.CitationRepo
	Executions       *repository.ExecutionRepo
	Policies         *repository.PolicyRepo
	Entities         *repository.EntityRepo
	ComponentChanges *repository.ComponentChangeRepo
	SOPVersions      *repository.SOPVersionRepo
}

// SeedDefaults loads the fixtures into an empty database.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, repos Repos) error {
	existing, err := repos.Executions.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	f, err := LoadFixtures()
	if err != nil {
		return err
	}
	return Seed(ctx, repos, f)
}

// Seed upserts every fixture record.
func Seed(ctx context.Context, repos Repos, f Fixtures) error {
	for _, n := range f.ResearchNodes {
		if err := repos.Nodes.Upsert(ctx, n); err != nil {
			return fmt.Errorf("seed node %s: %w", n.ID, err)
		}
	}
	for _, c := range f.Citations {
		if err := repos.Citations.Upsert(ctx, c); err != nil {
			return fmt.Errorf("seed citation %s: %w", c.ID, err)
		}
	}
	for _, e := range f.Executions {
		if err := repos.Executions.Upsert(ctx, e); err != nil {
			return fmt.Errorf("seed execution %s: %w", e.ID, err)
		}
	}
	for _, p := range f.Policies {
		if err := repos.Policies.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed policy %s: %w", p.ID, err)
		}
	}
	for _, e := range f.Entities {
		if err := repos.Entities.Upsert(ctx, e); err != nil {
			return fmt.Errorf("seed entity %s: %w", e.ID, err)
		}
	}
	for _, c := range f.ComponentChanges {
		if err := repos.ComponentChanges.Upsert(ctx, c); err != nil {
			return fmt.Errorf("seed component change %s: %w", c.ID, err)
		}
	}
	for _, v := range f.SOPVersions {
		if err := repos.SOPVersions.Upsert(ctx, v); err != nil {
			return fmt.Errorf("seed sop version %s: %w", v.ID, err)
		}
	}
	return nil
}

// NewRepos builds every repository over db.
func NewRepos(db *sql.DB) Repos {
	return Repos{
		DB:               db,
		Nodes:            repository.NewResearchNodeRepo(db),
		Citations:        repository.NewCitationRepo(db),
		Executions:       repository.NewExecutionRepo(db),
		Policies:         repository.NewPolicyRepo(db),
		Entities:         repository.NewEntityRepo(db),
		ComponentChanges: repository.NewComponentChangeRepo(db),
		SOPVersions:      repository.NewSOPVersionRepo(db),
	}
}
