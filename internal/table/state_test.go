package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateSortByResetsPage(t *testing.T) {
	t.Parallel()

	s := NewState(5)
	s.Page = 3
	require.True(t, s.SortBy(Column{Key: "id", Sortable: true}))
	require.Equal(t, 1, s.Page)
	require.Equal(t, SortState{Key: "id"}, s.Sort)

	s.Page = 2
	require.False(t, s.SortBy(Column{Key: "summary"}), "non-sortable header is a no-op")
	require.Equal(t, 2, s.Page)
	require.Equal(t, SortState{Key: "id"}, s.Sort)
}

func TestStatePaging(t *testing.T) {
	t.Parallel()

	s := NewState(5)
	require.False(t, s.PrevPage())
	require.True(t, s.NextPage(7))
	require.Equal(t, 2, s.Page)
	require.False(t, s.NextPage(7))
	require.True(t, s.PrevPage())
	require.Equal(t, 1, s.Page)
	require.False(t, s.NextPage(0))
}

func TestStateToggleExpanded(t *testing.T) {
	t.Parallel()

	var s State
	s.ToggleExpanded("a")
	require.True(t, s.Expanded.Has("a"))
	s.ToggleExpanded("a")
	require.False(t, s.Expanded.Has("a"))
}

func TestStateFilters(t *testing.T) {
	t.Parallel()

	s := NewState(5)
	require.Equal(t, AllValues, s.FilterValue("status"))
	s.Page = 2
	s.SetFilter("status", "CLEARED")
	require.Equal(t, 1, s.Page)
	require.Equal(t, "CLEARED", s.FilterValue("status"))
	s.SetFilter("status", "PENDING")
	require.Len(t, s.Filters, 1)
	s.SetFilter("status", AllValues)
	require.Empty(t, s.Filters)
}

func TestStateWindow(t *testing.T) {
	t.Parallel()

	rows := make([]Row, 7)
	for i := range rows {
		rows[i] = NewRow(fmt.Sprint(i), map[string]any{"n": i, "even": i%2 == 0})
	}
	s := NewState(5)
	s.SortBy(Column{Key: "n", Sortable: true})
	s.SortBy(Column{Key: "n", Sortable: true})

	page, total := s.Window(rows)
	require.Equal(t, 7, total)
	require.Equal(t, []string{"6", "5", "4", "3", "2"}, ids(page))

	s.NextPage(total)
	page, _ = s.Window(rows)
	require.Equal(t, []string{"1", "0"}, ids(page))

	s.SetFilter("even", "true")
	page, total = s.Window(rows)
	require.Equal(t, 4, total)
	require.Equal(t, []string{"6", "4", "2", "0"}, ids(page))
}
