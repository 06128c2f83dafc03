package table

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// AllValues is the filter value that disables a filter.
const AllValues = "All"

// Filter keeps rows whose Field renders exactly as Value.
type Filter struct {
	Field string
	Value string
}

func (f Filter) active() bool {
	return f.Field != "" && f.Value != "" && f.Value != AllValues
}

// Search matches rows containing Query in any field, case-insensitively. With
// MaxDistance > 0 a word within that edit distance of the query also matches.
type Search struct {
	Query       string
	MaxDistance int
}

// Apply returns the rows that satisfy every filter and the search. Order is
// preserved and the input is not modified.
func Apply(rows []Row, filters []Filter, search Search) []Row {
	query := strings.ToLower(strings.TrimSpace(search.Query))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if !matchFilters(r, filters) {
			continue
		}
		if query != "" && !matchSearch(r, query, search.MaxDistance) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchFilters(r Row, filters []Filter) bool {
	for _, f := range filters {
		if !f.active() {
			continue
		}
		if r.Text(f.Field) != f.Value {
			return false
		}
	}
	return true
}

func matchSearch(r Row, query string, maxDist int) bool {
	for _, v := range r.Fields {
		text := strings.ToLower(formatValue(v))
		if strings.Contains(text, query) {
			return true
		}
		if maxDist <= 0 {
			continue
		}
		for _, word := range strings.FieldsFunc(text, isWordBreak) {
			if levenshtein.ComputeDistance(word, query) <= maxDist {
				return true
			}
		}
	}
	return false
}

func isWordBreak(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ',', '.', ':', ';', '/', '(', ')':
		return true
	}
	return false
}

// DistinctValues lists the rendered values of field across rows, sorted.
func DistinctValues(rows []Row, field string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range rows {
		v := r.Text(field)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
