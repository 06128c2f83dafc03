package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service/fake"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/table"
)

func TestCatalogueColumnsAreWellFormed(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, d := range Catalogue() {
		require.NoError(t, d.Columns.Validate(), d.ID)
		require.NotZero(t, d.PageSize, d.ID)
		require.NotNil(t, d.Load, d.ID)
		require.False(t, seen[d.ID], "duplicate view %s", d.ID)
		seen[d.ID] = true
	}
	require.Equal(t, len(Catalogue()), len(IDs()))
}

func TestEveryRowCarriesEveryColumnKey(t *testing.T) {
	t.Parallel()

	store, err := fake.NewFromFixtures()
	require.NoError(t, err)
	src := store.Sources()

	for _, d := range Catalogue() {
		rows, err := d.Load(context.Background(), src)
		require.NoError(t, err, d.ID)
		require.NotEmpty(t, rows, d.ID)
		for _, r := range rows {
			require.NotEmpty(t, r.ID, d.ID)
			for _, c := range d.Columns {
				_, ok := r.Value(c.Key)
				require.True(t, ok, "view %s row %s lacks %s", d.ID, r.ID, c.Key)
			}
			for _, f := range d.FilterFields {
				_, ok := r.Value(f)
				require.True(t, ok, "view %s row %s lacks filter field %s", d.ID, r.ID, f)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	d, err := Lookup("audit")
	require.NoError(t, err)
	require.Equal(t, 5, d.PageSize)

	d, err = Lookup("policies")
	require.NoError(t, err)
	require.Equal(t, defaultPageSize, d.PageSize)

	_, err = Lookup("nope")
	require.Error(t, err)
}

func TestAuditWindowPagesAndSorts(t *testing.T) {
	t.Parallel()

	store, err := fake.NewFromFixtures()
	require.NoError(t, err)
	d, err := Lookup("audit")
	require.NoError(t, err)
	rows, err := d.Load(context.Background(), store.Sources())
	require.NoError(t, err)

	st := d.NewState()
	p := d.Window(rows, st)
	require.Equal(t, 7, p.Total)
	require.Equal(t, 2, p.Pages)
	require.Len(t, p.Rows, 5)

	col, _ := d.Columns.ByKey("componentId")
	require.True(t, st.SortBy(col))
	p = d.Window(rows, st)
	require.Equal(t, "COMP-0456", p.View.Rows[0].Cells[0].Text)
	require.Equal(t, "▲", p.View.Headers[0].Indicator)

	st.NextPage(p.Total)
	p = d.Window(rows, st)
	require.Len(t, p.Rows, 2)
	require.Equal(t, "COMP-5002", p.View.Rows[1].Cells[0].Text)

	st.SetFilter("materiality", "High")
	p = d.Window(rows, st)
	require.Equal(t, 3, p.Total)
	require.Equal(t, 1, p.Page)

	opts := p.RenderOptions(table.DefaultRenderOptions())
	require.Equal(t, 1, opts.Pages)
	require.Contains(t, table.Render(p.View, opts), "Page 1 of 1")
}
