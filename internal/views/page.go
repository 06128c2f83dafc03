package views

import "github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/table"

// Page is the visible window of a view.
type Page struct {
	View  table.View
	Rows  []table.Row
	Page  int
	Pages int
	Total int
}

// NewState returns a fresh session state sized for d.
func (d Definition) NewState() table.State {
	return table.NewState(d.PageSize)
}

// Window shapes rows with st and projects the visible page.
func (d Definition) Window(rows []table.Row, st table.State) Page {
	visible, total := st.Window(rows)
	return Page{
		View:  table.Table{Columns: d.Columns, Rows: visible}.Project(st.Sort, st.Expanded),
		Rows:  visible,
		Page:  st.Page,
		Pages: table.PageCount(total, st.PageSize),
		Total: total,
	}
}

// RenderOptions fills the pager fields of opts from p.
func (p Page) RenderOptions(opts table.RenderOptions) table.RenderOptions {
	opts.Page, opts.Pages, opts.Total = p.Page, p.Pages, p.Total
	return opts
}
