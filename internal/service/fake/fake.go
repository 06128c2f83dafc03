// Package fake provides in-memory implementations of the service interfaces,
// seeded from the shipped fixtures. It backs --demo mode and view tests.
package fake

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service"
)

// Store holds every record in memory. Latency, when set, delays each call to
// mimic a remote backend; cancelling the context cuts the delay short.
type Store struct {
	Latency time.Duration
	Now     func() time.Time

	mu         sync.Mutex
	nodes      []repository.ResearchNode
	citations  []repository.Citation
	executions []repository.Execution
	policies   []repository.Policy
	entities   []repository.Entity
	changes    []repository.ComponentChange
	versions   []repository.SOPVersion
}

var (
	_ service.Research   = (*Store)(nil)
	_ service.Governance = (*Store)(nil)
	_ service.Identity   = (*Store)(nil)
	_ service.Audit      = (*Store)(nil)
)

// New returns a store holding a copy of f.
func New(f database.Fixtures) *Store {
	return &Store{
		Now:        func() time.Time { return time.Now().UTC() },
		nodes:      slices.Clone(f.ResearchNodes),
		citations:  slices.Clone(f.Citations),
		executions: slices.Clone(f.Executions),
		policies:   slices.Clone(f.Policies),
		entities:   slices.Clone(f.Entities),
		changes:    slices.Clone(f.ComponentChanges),
		versions:   slices.Clone(f.SOPVersions),
	}
}

// NewFromFixtures loads the embedded fixtures.
func NewFromFixtures() (*Store, error) {
	f, err := database.LoadFixtures()
	if err != nil {
		return nil, err
	}
	return New(f), nil
}

// Sources exposes the store through every service interface.
func (s *Store) Sources() service.Sources {
	return service.Sources{Research: s, Governance: s, Identity: s, Audit: s}
}

func (s *Store) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Store) ResearchData(ctx context.Context) (service.ResearchSnapshot, error) {
	if err := s.wait(ctx); err != nil {
		return service.ResearchSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.ResearchSnapshot{Nodes: slices.Clone(s.nodes), Citations: slices.Clone(s.citations)}, nil
}

func (s *Store) CitationsForNode(ctx context.Context, nodeID string) ([]repository.Citation, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []repository.Citation
	for _, c := range s.citations {
		if c.NodeID == nodeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) UpdateCitation(ctx context.Context, id string, u service.CitationUpdate) (repository.Citation, error) {
	if err := s.wait(ctx); err != nil {
		return repository.Citation{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.citations, func(c repository.Citation) bool { return c.ID == id })
	if i < 0 {
		return repository.Citation{}, fmt.Errorf("citation %s: %w", id, service.ErrNotFound)
	}
	s.citations[i] = service.ApplyCitationUpdate(s.citations[i], u)
	return s.citations[i], nil
}

func (s *Store) AnalyzeURL(ctx context.Context, input string) (service.SourceDraft, error) {
	if err := s.wait(ctx); err != nil {
		return service.SourceDraft{}, err
	}
	if strings.TrimSpace(input) == "" {
		return service.SourceDraft{}, fmt.Errorf("analyze: empty input")
	}
	return service.AnalyzeSource(input), nil
}

func (s *Store) AskQuestion(ctx context.Context, nodeID, query string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.IndexFunc(s.nodes, func(n repository.ResearchNode) bool { return n.ID == nodeID }) < 0 {
		return "", fmt.Errorf("research node %s: %w", nodeID, service.ErrNotFound)
	}
	return service.AnswerQuestion(query), nil
}

func (s *Store) AddSource(ctx context.Context, nodeID string, d service.SourceDraft) (repository.Citation, error) {
	if err := s.wait(ctx); err != nil {
		return repository.Citation{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.nodes, func(n repository.ResearchNode) bool { return n.ID == nodeID })
	if i < 0 {
		return repository.Citation{}, fmt.Errorf("research node %s: %w", nodeID, service.ErrNotFound)
	}
	c := service.NewCitation(nodeID, d, s.Now)
	s.citations = append(s.citations, c)
	s.nodes[i].Sources++
	return c, nil
}

func (s *Store) DashboardData(ctx context.Context) (service.GovernanceSnapshot, error) {
	if err := s.wait(ctx); err != nil {
		return service.GovernanceSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.GovernanceSnapshot{Executions: slices.Clone(s.executions), Policies: slices.Clone(s.policies)}, nil
}

func (s *Store) ApproveExecution(ctx context.Context, id string) (repository.Execution, error) {
	return s.setExecutionStatus(ctx, id, service.StatusCleared)
}

func (s *Store) FlagExecution(ctx context.Context, id string) (repository.Execution, error) {
	return s.setExecutionStatus(ctx, id, service.StatusFlagged)
}

func (s *Store) setExecutionStatus(ctx context.Context, id, status string) (repository.Execution, error) {
	if err := s.wait(ctx); err != nil {
		return repository.Execution{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.executions, func(e repository.Execution) bool { return e.ID == id })
	if i < 0 {
		return repository.Execution{}, fmt.Errorf("execution %s: %w", id, service.ErrNotFound)
	}
	s.executions[i].Status = status
	return s.executions[i], nil
}

func (s *Store) Entities(ctx context.Context) ([]repository.Entity, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entities), nil
}

func (s *Store) AddEntity(ctx context.Context, e repository.Entity) (repository.Entity, error) {
	if err := s.wait(ctx); err != nil {
		return repository.Entity{}, err
	}
	if strings.TrimSpace(e.Name) == "" {
		return repository.Entity{}, fmt.Errorf("add entity: name required")
	}
	e = service.NewEntity(e, s.Now)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = append(s.entities, e)
	return e, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) (repository.Entity, error) {
	if err := s.wait(ctx); err != nil {
		return repository.Entity{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.entities, func(e repository.Entity) bool { return e.ID == id })
	if i < 0 {
		return repository.Entity{}, fmt.Errorf("entity %s: %w", id, service.ErrNotFound)
	}
	s.entities[i].Status = status
	return s.entities[i], nil
}

func (s *Store) ComponentChanges(ctx context.Context) ([]repository.ComponentChange, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.changes), nil
}

func (s *Store) SOPVersions(ctx context.Context) ([]repository.SOPVersion, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.versions), nil
}
