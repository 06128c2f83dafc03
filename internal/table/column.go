package table

import (
	"errors"
	"fmt"
)

// CellKind selects how a column's value is presented.
type CellKind string

const (
	CellText   CellKind = "text"
	CellBadge  CellKind = "badge"
	CellDetail CellKind = "detail" // collapsed until the row is expanded
	CellLink   CellKind = "link"
)

func (k CellKind) valid() bool {
	switch k {
	case "", CellText, CellBadge, CellDetail, CellLink:
		return true
	}
	return false
}

// Column describes one displayed field.
type Column struct {
	Key      string
	Label    string
	Sortable bool
	Cell     CellKind
	// Href is the link target prefix for CellLink; the row value is appended.
	Href string
}

// Kind returns the effective cell kind; the zero value renders as text.
func (c Column) Kind() CellKind {
	if c.Cell == "" {
		return CellText
	}
	return c.Cell
}

// Columns is an ordered column list.
type Columns []Column

// Validate reports malformed descriptors. The table itself never calls it;
// view catalogues do when they are assembled.
func (cs Columns) Validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(cs))
	for i, c := range cs {
		if c.Key == "" {
			errs = append(errs, fmt.Errorf("column %d: empty key", i))
			continue
		}
		if _, dup := seen[c.Key]; dup {
			errs = append(errs, fmt.Errorf("column %q: duplicate key", c.Key))
		}
		seen[c.Key] = struct{}{}
		if !c.Cell.valid() {
			errs = append(errs, fmt.Errorf("column %q: unknown cell kind %q", c.Key, c.Cell))
		}
	}
	return errors.Join(errs...)
}

// ByKey returns the column with the given key.
func (cs Columns) ByKey(key string) (Column, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
