package table

// State is the per-view session state the calling view owns: sort, page,
// expanded rows, filters and search.
type State struct {
	Sort     SortState
	Page     int
	PageSize int
	Expanded ExpandedSet
	Filters  []Filter
	Search   Search
}

// NewState returns page 1 with no sort.
func NewState(pageSize int) State {
	return State{Page: 1, PageSize: pageSize, Expanded: ExpandedSet{}}
}

// SortBy applies a header click on c. A changed sort returns to page 1.
func (s *State) SortBy(c Column) bool {
	next := Click(s.Sort, c)
	if next == s.Sort {
		return false
	}
	s.Sort = next
	s.Page = 1
	return true
}

// NextPage advances when another page exists for total rows.
func (s *State) NextPage(total int) bool {
	if s.Page >= PageCount(total, s.PageSize) {
		return false
	}
	s.Page++
	return true
}

// PrevPage steps back, stopping at page 1.
func (s *State) PrevPage() bool {
	if s.Page <= 1 {
		return false
	}
	s.Page--
	return true
}

// ToggleExpanded flips the detail state of row id.
func (s *State) ToggleExpanded(id string) {
	if s.Expanded == nil {
		s.Expanded = ExpandedSet{}
	}
	if s.Expanded[id] {
		delete(s.Expanded, id)
		return
	}
	s.Expanded[id] = true
}

// SetFilter replaces the filter on field. value "" or AllValues clears it.
func (s *State) SetFilter(field, value string) {
	var out []Filter
	for _, f := range s.Filters {
		if f.Field != field {
			out = append(out, f)
		}
	}
	if value != "" && value != AllValues {
		out = append(out, Filter{Field: field, Value: value})
	}
	s.Filters = out
	s.Page = 1
}

// FilterValue returns the active value for field, or AllValues.
func (s State) FilterValue(field string) string {
	for _, f := range s.Filters {
		if f.Field == field && f.active() {
			return f.Value
		}
	}
	return AllValues
}

// SetSearch replaces the search query and returns to page 1.
func (s *State) SetSearch(query string) {
	s.Search.Query = query
	s.Page = 1
}

// Shape filters then orders rows without paginating.
func (s State) Shape(rows []Row) []Row {
	return Order(Apply(rows, s.Filters, s.Search), s.Sort)
}

// Window filters, orders and paginates rows. It also returns the filtered
// total so callers can render the pager.
func (s State) Window(rows []Row) ([]Row, int) {
	shaped := s.Shape(rows)
	return Paginate(shaped, s.PageSize, s.Page), len(shaped)
}
