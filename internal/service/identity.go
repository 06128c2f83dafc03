package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

// IdentityService serves identities from SQLite.
type IdentityService struct {
	Repo *repository.EntityRepo
	Log  *zap.Logger
}

var _ Identity = (*IdentityService)(nil)

func (s *IdentityService) Entities(ctx context.Context) ([]repository.Entity, error) {
	return s.Repo.List(ctx)
}

func (s *IdentityService) AddEntity(ctx context.Context, e repository.Entity) (repository.Entity, error) {
	if strings.TrimSpace(e.Name) == "" {
		return repository.Entity{}, fmt.Errorf("add entity: name required")
	}
	e = NewEntity(e, database.Now)
	if err := s.Repo.Upsert(ctx, e); err != nil {
		return repository.Entity{}, fmt.Errorf("add entity %s: %w", e.ID, err)
	}
	orNop(s.Log).Info("entity added", zap.String("id", e.ID), zap.String("type", e.Type))
	return e, nil
}

func (s *IdentityService) UpdateStatus(ctx context.Context, id, status string) (repository.Entity, error) {
	ok, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return repository.Entity{}, fmt.Errorf("update entity %s: %w", id, err)
	}
	if !ok {
		return repository.Entity{}, notFound("entity", id)
	}
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return repository.Entity{}, err
	}
	if e == nil {
		return repository.Entity{}, notFound("entity", id)
	}
	return *e, nil
}
