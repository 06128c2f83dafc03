package views

import (
	"context"
	"strings"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/table"
)

func ExecutionRow(e repository.Execution) table.Row {
	return table.NewRow(e.ID, map[string]any{
		"id":         e.ID,
		"type":       e.Type,
		"status":     e.Status,
		"executedAt": e.ExecutedAt,
		"initiator":  e.Initiator,
		"summary":    e.Summary,
	})
}

func PolicyRow(p repository.Policy) table.Row {
	return table.NewRow(p.ID, map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"level":       p.Level,
		"enforcement": p.Enforcement,
		"status":      p.Status,
	})
}

func EntityRow(e repository.Entity) table.Row {
	return table.NewRow(e.ID, map[string]any{
		"id":       e.ID,
		"name":     e.Name,
		"type":     e.Type,
		"role":     e.Role,
		"status":   e.Status,
		"lastSeen": e.LastSeenAt,
	})
}

func ResearchNodeRow(n repository.ResearchNode) table.Row {
	return table.NewRow(n.ID, map[string]any{
		"id":         n.ID,
		"title":      n.Title,
		"category":   n.Category,
		"confidence": n.Confidence,
		"sources":    n.Sources,
		"updatedAt":  n.UpdatedAt,
		"content":    n.Content,
	})
}

func CitationRow(c repository.Citation) table.Row {
	return table.NewRow(c.ID, map[string]any{
		"id":        c.ID,
		"nodeId":    c.NodeID,
		"title":     c.Title,
		"type":      c.Type,
		"relevance": c.Relevance,
		"url":       c.URL,
		"tags":      strings.Join(c.Tags, " "),
	})
}

func ComponentChangeRow(c repository.ComponentChange) table.Row {
	return table.NewRow(c.ID, map[string]any{
		"componentId":  c.ComponentID,
		"versions":     c.PreviousVersion + " → " + c.NewVersion,
		"changeType":   c.ChangeType,
		"materiality":  c.Materiality,
		"rationale":    c.Rationale,
		"triggerType":  c.TriggerType,
		"executorRole": c.ExecutorRole,
		"changedAt":    c.ChangedAt,
	})
}

func SOPVersionRow(v repository.SOPVersion) table.Row {
	return table.NewRow(v.ID, map[string]any{
		"sopId":          v.SOPID,
		"version":        v.Version,
		"executionId":    v.ExecutionID,
		"changeType":     v.ChangeType,
		"approvalStatus": v.ApprovalStatus,
		"publishedDate":  v.PublishedDate.Format("2006-01-02"),
		"notes":          v.Notes,
	})
}

func mapRows[T any](items []T, fn func(T) table.Row) []table.Row {
	out := make([]table.Row, len(items))
	for i, it := range items {
		out[i] = fn(it)
	}
	return out
}

func loadExecutions(ctx context.Context, src service.Sources) ([]table.Row, error) {
	snap, err := src.Governance.DashboardData(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(snap.Executions, ExecutionRow), nil
}

func loadPolicies(ctx context.Context, src service.Sources) ([]table.Row, error) {
	snap, err := src.Governance.DashboardData(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(snap.Policies, PolicyRow), nil
}

func loadEntities(ctx context.Context, src service.Sources) ([]table.Row, error) {
	list, err := src.Identity.Entities(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(list, EntityRow), nil
}

func loadResearch(ctx context.Context, src service.Sources) ([]table.Row, error) {
	snap, err := src.Research.ResearchData(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(snap.Nodes, ResearchNodeRow), nil
}

func loadCitations(ctx context.Context, src service.Sources) ([]table.Row, error) {
	snap, err := src.Research.ResearchData(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(snap.Citations, CitationRow), nil
}

func loadComponentChanges(ctx context.Context, src service.Sources) ([]table.Row, error) {
	list, err := src.Audit.ComponentChanges(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(list, ComponentChangeRow), nil
}

func loadSOPVersions(ctx context.Context, src service.Sources) ([]table.Row, error) {
	list, err := src.Audit.SOPVersions(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(list, SOPVersionRow), nil
}
