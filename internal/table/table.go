package table

// ExpandedSet records which rows show their detail cells, keyed by row ID.
type ExpandedSet map[string]bool

// Has reports whether id is expanded. A nil set has nothing expanded.
func (e ExpandedSet) Has(id string) bool { return e[id] }

// Table pairs column descriptors with the rows to show, already ordered and
// paginated by the caller.
type Table struct {
	Columns Columns
	Rows    []Row
}

// Header is one projected header cell.
type Header struct {
	Key         string
	Label       string
	Interactive bool
	// Indicator is "▲" or "▼" on the active sort column.
	Indicator string
}

// Cell is one projected body cell.
type Cell struct {
	Kind     CellKind
	Text     string
	Detail   string
	Href     string
	Expanded bool
}

// ViewRow is one projected body row.
type ViewRow struct {
	ID    string
	Cells []Cell
}

// View is the display-ready projection of a Table.
type View struct {
	Headers []Header
	Rows    []ViewRow
}

// Project maps the table onto header and body cells. It keeps no state: the
// sort state only drives the header indicator and expanded only drives detail
// cells.
func (t Table) Project(sort SortState, expanded ExpandedSet) View {
	v := View{
		Headers: make([]Header, len(t.Columns)),
		Rows:    make([]ViewRow, len(t.Rows)),
	}
	for i, c := range t.Columns {
		h := Header{Key: c.Key, Label: c.Label, Interactive: c.Sortable}
		if sort.Active() && sort.Key == c.Key {
			h.Indicator = "▲"
			if sort.Direction == Descending {
				h.Indicator = "▼"
			}
		}
		v.Headers[i] = h
	}
	for i, r := range t.Rows {
		cells := make([]Cell, len(t.Columns))
		for j, c := range t.Columns {
			cells[j] = projectCell(c, r, expanded.Has(r.ID))
		}
		v.Rows[i] = ViewRow{ID: r.ID, Cells: cells}
	}
	return v
}

func projectCell(c Column, r Row, expanded bool) Cell {
	text := r.Text(c.Key)
	cell := Cell{Kind: c.Kind(), Text: text}
	switch cell.Kind {
	case CellDetail:
		cell.Detail = text
		cell.Expanded = expanded
		cell.Text = "Show"
		if expanded {
			cell.Text = "Hide"
		}
	case CellLink:
		if text != "" {
			cell.Href = c.Href + text
		}
	}
	return cell
}

// Click is header activation: sortable columns toggle the sort state,
// anything else returns s unchanged.
func Click(s SortState, c Column) SortState {
	if !c.Sortable {
		return s
	}
	return Toggle(s, c.Key)
}
