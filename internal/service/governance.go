package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

// GovernanceService serves executions and policies from SQLite.
type GovernanceService struct {
	Executions *repository.ExecutionRepo
	Policies   *repository.PolicyRepo
	Log        *zap.Logger
}

var _ Governance = (*GovernanceService)(nil)

func (s *GovernanceService) DashboardData(ctx context.Context) (GovernanceSnapshot, error) {
	execs, err := s.Executions.List(ctx)
	if err != nil {
		return GovernanceSnapshot{}, fmt.Errorf("list executions: %w", err)
	}
	pols, err := s.Policies.List(ctx)
	if err != nil {
		return GovernanceSnapshot{}, fmt.Errorf("list policies: %w", err)
	}
	return GovernanceSnapshot{Executions: execs, Policies: pols}, nil
}

func (s *GovernanceService) ApproveExecution(ctx context.Context, id string) (repository.Execution, error) {
	return s.setStatus(ctx, id, StatusCleared)
}

func (s *GovernanceService) FlagExecution(ctx context.Context, id string) (repository.Execution, error) {
	return s.setStatus(ctx, id, StatusFlagged)
}

func (s *GovernanceService) setStatus(ctx context.Context, id, status string) (repository.Execution, error) {
	ok, err := s.Executions.UpdateStatus(ctx, id, status)
	if err != nil {
		return repository.Execution{}, fmt.Errorf("set execution %s to %s: %w", id, status, err)
	}
	if !ok {
		return repository.Execution{}, notFound("execution", id)
	}
	e, err := s.Executions.Get(ctx, id)
	if err != nil {
		return repository.Execution{}, err
	}
	if e == nil {
		return repository.Execution{}, notFound("execution", id)
	}
	orNop(s.Log).Info("execution status changed", zap.String("id", id), zap.String("status", status))
	return *e, nil
}
