package service

import (
	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database"
)

// New builds the SQLite-backed sources over repos.
func New(repos database.Repos, log *zap.Logger) Sources {
	return Sources{
		Research:   &ResearchService{DB: repos.DB, Nodes: repos.Nodes, Citations: repos.Citations, Log: log},
		Governance: &GovernanceService{Executions: repos.Executions, Policies: repos.Policies, Log: log},
		Identity:   &IdentityService{Repo: repos.Entities, Log: log},
		Audit:      &AuditService{Changes: repos.ComponentChanges, Versions: repos.SOPVersions},
	}
}
