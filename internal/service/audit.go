package service

import (
	"context"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

// AuditService serves audit trail records from SQLite.
type AuditService struct {
	Changes  *repository.ComponentChangeRepo
	Versions *repository.SOPVersionRepo
}

var _ Audit = (*AuditService)(nil)

func (s *AuditService) ComponentChanges(ctx context.Context) ([]repository.ComponentChange, error) {
	return s.Changes.List(ctx)
}

func (s *AuditService) SOPVersions(ctx context.Context) ([]repository.SOPVersion, error) {
	return s.Versions.List(ctx)
}
