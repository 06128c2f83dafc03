// Package views is the catalogue of console views: which columns each view
// shows, how its rows are fetched, and how records become table rows.
package views

import (
	"context"
	"fmt"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/table"
)

// Loader fetches the rows of one view.
type Loader func(ctx context.Context, src service.Sources) ([]table.Row, error)

// Definition describes one view.
type Definition struct {
	ID       string
	Title    string
	Engine   string
	Columns  table.Columns
	PageSize int
	// FilterFields are the columns offered as exact-match filters.
	FilterFields []string
	Load         Loader
}

const defaultPageSize = 10

var catalogue = []Definition{
	{
		ID:     "executions",
		Title:  "Execution Stream",
		Engine: "GGP",
		Columns: table.Columns{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "type", Label: "Type", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true, Cell: table.CellBadge},
			{Key: "executedAt", Label: "Timestamp", Sortable: true},
			{Key: "initiator", Label: "Initiator", Sortable: true},
			{Key: "summary", Label: "Summary", Cell: table.CellDetail},
		},
		PageSize:     5,
		FilterFields: []string{"status", "type"},
		Load:         loadExecutions,
	},
	{
		ID:     "policies",
		Title:  "Policy Registry",
		Engine: "GGP",
		Columns: table.Columns{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "name", Label: "Name", Sortable: true},
			{Key: "level", Label: "Level", Sortable: true},
			{Key: "enforcement", Label: "Enforcement", Cell: table.CellBadge},
			{Key: "status", Label: "Status", Sortable: true, Cell: table.CellBadge},
		},
		FilterFields: []string{"level", "status"},
		Load:         loadPolicies,
	},
	{
		ID:     "entities",
		Title:  "Identity Registry",
		Engine: "IDN",
		Columns: table.Columns{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "name", Label: "Name", Sortable: true},
			{Key: "type", Label: "Type", Sortable: true},
			{Key: "role", Label: "Role", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true, Cell: table.CellBadge},
			{Key: "lastSeen", Label: "Last Seen", Sortable: true},
		},
		FilterFields: []string{"type", "status"},
		Load:         loadEntities,
	},
	{
		ID:     "research",
		Title:  "Research Nodes",
		Engine: "DRE",
		Columns: table.Columns{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "title", Label: "Title", Sortable: true},
			{Key: "category", Label: "Category", Sortable: true, Cell: table.CellBadge},
			{Key: "confidence", Label: "Confidence", Sortable: true},
			{Key: "sources", Label: "Sources", Sortable: true},
			{Key: "updatedAt", Label: "Updated", Sortable: true},
			{Key: "content", Label: "Abstract", Cell: table.CellDetail},
		},
		FilterFields: []string{"category"},
		Load:         loadResearch,
	},
	{
		ID:     "citations",
		Title:  "Citations",
		Engine: "DRE",
		Columns: table.Columns{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "nodeId", Label: "Node", Sortable: true},
			{Key: "title", Label: "Title", Sortable: true},
			{Key: "type", Label: "Type", Sortable: true, Cell: table.CellBadge},
			{Key: "relevance", Label: "Relevance", Sortable: true, Cell: table.CellBadge},
			{Key: "url", Label: "Link", Cell: table.CellLink},
		},
		FilterFields: []string{"nodeId", "type", "relevance"},
		Load:         loadCitations,
	},
	{
		ID:     "audit",
		Title:  "Execution Audit Trail",
		Engine: "GGP",
		Columns: table.Columns{
			{Key: "componentId", Label: "Component ID", Sortable: true},
			{Key: "versions", Label: "Version"},
			{Key: "changeType", Label: "Change Type"},
			{Key: "materiality", Label: "Materiality", Cell: table.CellBadge},
			{Key: "changedAt", Label: "Changed", Sortable: true},
			{Key: "rationale", Label: "Rationale", Cell: table.CellDetail},
		},
		PageSize:     5,
		FilterFields: []string{"triggerType", "executorRole", "materiality"},
		Load:         loadComponentChanges,
	},
	{
		ID:     "sop-history",
		Title:  "SOP Version History",
		Engine: "GGP",
		Columns: table.Columns{
			{Key: "version", Label: "Version", Sortable: true},
			{Key: "sopId", Label: "SOP", Sortable: true},
			{Key: "executionId", Label: "Execution ID"},
			{Key: "approvalStatus", Label: "Approval", Cell: table.CellBadge},
			{Key: "publishedDate", Label: "Published", Sortable: true},
			{Key: "notes", Label: "Notes", Cell: table.CellDetail},
		},
		PageSize:     6,
		FilterFields: []string{"approvalStatus", "changeType"},
		Load:         loadSOPVersions,
	},
}

// Catalogue returns every view in tab order.
func Catalogue() []Definition {
	out := make([]Definition, len(catalogue))
	copy(out, catalogue)
	for i := range out {
		if out[i].PageSize == 0 {
			out[i].PageSize = defaultPageSize
		}
	}
	return out
}

// Lookup finds a view by ID.
func Lookup(id string) (Definition, error) {
	for _, d := range Catalogue() {
		if d.ID == id {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown view %q", id)
}

// IDs lists the view IDs in tab order.
func IDs() []string {
	out := make([]string, len(catalogue))
	for i, d := range catalogue {
		out[i] = d.ID
	}
	return out
}
