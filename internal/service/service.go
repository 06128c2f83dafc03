// Package service defines the data-access interfaces the console views consume
// and their SQLite-backed implementations. Implementations are constructed once
// in main and passed to consumers by reference.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

// ErrNotFound is returned when an operation names a record that does not exist.
var ErrNotFound = errors.New("not found")

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// Execution statuses.
const (
	StatusCleared = "CLEARED"
	StatusPending = "PENDING"
	StatusFlagged = "FLAGGED"
)

// Entity statuses.
const (
	EntityActive = "ACTIVE"
	EntityPaused = "PAUSED"
	EntityIdle   = "IDLE"
)

// ResearchSnapshot is everything the research view shows.
type ResearchSnapshot struct {
	Nodes     []repository.ResearchNode
	Citations []repository.Citation
}

// CitationUpdate merges into an existing citation; nil fields are left alone.
type CitationUpdate struct {
	Title     *string
	Type      *string
	Relevance *string
	Tags      []string
}

// SourceDraft is a citation before it is attached to a node.
type SourceDraft struct {
	Title     string
	Type      string
	Relevance string
	URL       string
	Tags      []string
}

// GovernanceSnapshot is everything the governance views show.
type GovernanceSnapshot struct {
	Executions []repository.Execution
	Policies   []repository.Policy
}

// Research is the Deep Research Engine data source.
type Research interface {
	ResearchData(ctx context.Context) (ResearchSnapshot, error)
	CitationsForNode(ctx context.Context, nodeID string) ([]repository.Citation, error)
	UpdateCitation(ctx context.Context, id string, u CitationUpdate) (repository.Citation, error)
	AnalyzeURL(ctx context.Context, input string) (SourceDraft, error)
	AskQuestion(ctx context.Context, nodeID, query string) (string, error)
	AddSource(ctx context.Context, nodeID string, d SourceDraft) (repository.Citation, error)
}

// Governance is the governance platform data source.
type Governance interface {
	DashboardData(ctx context.Context) (GovernanceSnapshot, error)
	ApproveExecution(ctx context.Context, id string) (repository.Execution, error)
	FlagExecution(ctx context.Context, id string) (repository.Execution, error)
}

// Identity is the identity management data source.
type Identity interface {
	Entities(ctx context.Context) ([]repository.Entity, error)
	AddEntity(ctx context.Context, e repository.Entity) (repository.Entity, error)
	UpdateStatus(ctx context.Context, id, status string) (repository.Entity, error)
}

// Audit serves audit trail and SOP history records.
type Audit interface {
	ComponentChanges(ctx context.Context) ([]repository.ComponentChange, error)
	SOPVersions(ctx context.Context) ([]repository.SOPVersion, error)
}

// Sources bundles every data source a view can read from.
type Sources struct {
	Research   Research
	Governance Governance
	Identity   Identity
	Audit      Audit
}

// NewID returns prefix-XXXXXXXX with a random upper-case suffix.
func NewID(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// ApplyCitationUpdate merges u into c.
func ApplyCitationUpdate(c repository.Citation, u CitationUpdate) repository.Citation {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Type != nil {
		c.Type = *u.Type
	}
	if u.Relevance != nil {
		c.Relevance = *u.Relevance
	}
	if u.Tags != nil {
		c.Tags = append([]string(nil), u.Tags...)
	}
	return c
}

// NewEntity fills the defaults for an entity being registered.
func NewEntity(e repository.Entity, now func() time.Time) repository.Entity {
	if e.ID == "" {
		e.ID = NewID("USR")
	}
	if e.Status == "" {
		e.Status = EntityActive
	}
	e.LastSeenAt = now()
	return e
}

// NewCitation builds the citation AddSource stores for d.
func NewCitation(nodeID string, d SourceDraft, now func() time.Time) repository.Citation {
	relevance := d.Relevance
	if relevance == "" {
		relevance = "MEDIUM"
	}
	return repository.Citation{
		ID:        NewID("CIT"),
		NodeID:    nodeID,
		Title:     d.Title,
		Type:      d.Type,
		Relevance: relevance,
		URL:       d.URL,
		Tags:      append([]string(nil), d.Tags...),
		CreatedAt: now(),
	}
}
