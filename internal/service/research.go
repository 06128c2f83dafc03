package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

// ResearchService serves research nodes and their citations from SQLite.
type ResearchService struct {
	DB        *sql.DB
	Nodes     *repository.ResearchNodeRepo
	Citations *repository.CitationRepo
	Log       *zap.Logger
}

var _ Research = (*ResearchService)(nil)

func (s *ResearchService) ResearchData(ctx context.Context) (ResearchSnapshot, error) {
	nodes, err := s.Nodes.List(ctx)
	if err != nil {
		return ResearchSnapshot{}, fmt.Errorf("list nodes: %w", err)
	}
	cits, err := s.Citations.List(ctx)
	if err != nil {
		return ResearchSnapshot{}, fmt.Errorf("list citations: %w", err)
	}
	return ResearchSnapshot{Nodes: nodes, Citations: cits}, nil
}

func (s *ResearchService) CitationsForNode(ctx context.Context, nodeID string) ([]repository.Citation, error) {
	return s.Citations.ByNode(ctx, nodeID)
}

func (s *ResearchService) UpdateCitation(ctx context.Context, id string, u CitationUpdate) (repository.Citation, error) {
	c, err := s.Citations.Get(ctx, id)
	if err != nil {
		return repository.Citation{}, err
	}
	if c == nil {
		return repository.Citation{}, notFound("citation", id)
	}
	updated := ApplyCitationUpdate(*c, u)
	if err := s.Citations.Upsert(ctx, updated); err != nil {
		return repository.Citation{}, fmt.Errorf("update citation %s: %w", id, err)
	}
	orNop(s.Log).Debug("citation updated", zap.String("id", id))
	return updated, nil
}

func (s *ResearchService) AnalyzeURL(ctx context.Context, input string) (SourceDraft, error) {
	if strings.TrimSpace(input) == "" {
		return SourceDraft{}, fmt.Errorf("analyze: empty input")
	}
	return AnalyzeSource(input), nil
}

func (s *ResearchService) AskQuestion(ctx context.Context, nodeID, query string) (string, error) {
	n, err := s.Nodes.Get(ctx, nodeID)
	if err != nil {
		return "", err
	}
	if n == nil {
		return "", notFound("research node", nodeID)
	}
	return AnswerQuestion(query), nil
}

// AddSource stores a citation under nodeID and bumps the node's source count.
func (s *ResearchService) AddSource(ctx context.Context, nodeID string, d SourceDraft) (repository.Citation, error) {
	n, err := s.Nodes.Get(ctx, nodeID)
	if err != nil {
		return repository.Citation{}, err
	}
	if n == nil {
		return repository.Citation{}, notFound("research node", nodeID)
	}
	c := NewCitation(nodeID, d, database.Now)
	// the citation and the node's counter change together or not at all
	err = database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := s.Citations.WithTx(tx).Upsert(ctx, c); err != nil {
			return fmt.Errorf("add source: %w", err)
		}
		ok, err := s.Nodes.WithTx(tx).IncrementSources(ctx, nodeID)
		if err != nil {
			return fmt.Errorf("bump sources for %s: %w", nodeID, err)
		}
		if !ok {
			return notFound("research node", nodeID)
		}
		return nil
	})
	if err != nil {
		return repository.Citation{}, err
	}
	orNop(s.Log).Debug("source added", zap.String("node", nodeID), zap.String("citation", c.ID))
	return c, nil
}
