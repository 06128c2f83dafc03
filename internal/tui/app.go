package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/config"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/prefs"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/table"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/views"
)

// App ties together views.
type App struct {
	ctx     context.Context
	sources service.Sources
	cfg     config.Config
	log     *zap.Logger
	prefs   prefs.ViewPrefs
	loc     *time.Location

	views  []views.Definition
	active int
	state  table.State
	rows   []table.Row
	// loadSeq discards results from loads superseded by a tab switch.
	loadSeq int

	cursor       int
	headerCursor int
	loading      bool
	searching    bool
	status       string

	spinner spinner.Model
	search  textinput.Model
	help    help.Model
	keys    keyMap

	// SavePrefs persists preferences on quit; nil skips saving.
	SavePrefs func(prefs.ViewPrefs) error
	// Copy writes to the system clipboard.
	Copy func(string) error
}

type rowsMsg struct {
	seq  int
	rows []table.Row
}

type statusMsg string

// errMsg carries the load sequence that failed; seq 0 marks an action error.
type errMsg struct {
	error
	seq int
}

// actionMsg reports a completed mutation and triggers a reload.
type actionMsg string

func New(ctx context.Context, cfg config.Config, sources service.Sources, p prefs.ViewPrefs, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	in := textinput.New()
	in.Placeholder = "search"
	in.Prompt = "/ "
	in.CharLimit = 64

	loc, err := cfg.UI.Location()
	if err != nil {
		log.Warn("falling back to UTC", zap.Error(err))
		loc = time.UTC
	}

	a := &App{
		ctx:     ctx,
		sources: sources,
		cfg:     cfg,
		log:     log,
		prefs:   p,
		loc:     loc,
		views:   views.Catalogue(),
		spinner: sp,
		search:  in,
		help:    help.New(),
		keys:    newKeyMap(),
		Copy:    clipboard.WriteAll,
	}
	for i, d := range a.views {
		if d.ID == p.LastView {
			a.active = i
		}
	}
	a.resetState()
	return a
}

func (a *App) current() views.Definition { return a.views[a.active] }

func (a *App) pageSize() int {
	d := a.current()
	if a.cfg.UI.PageSize > 0 {
		return a.cfg.UI.PageSize
	}
	return a.prefs.PageSize(d.ID, d.PageSize)
}

// resetState starts a fresh view session: no sort, page 1, nothing expanded.
func (a *App) resetState() {
	a.state = table.NewState(a.pageSize())
	a.state.Search.MaxDistance = a.cfg.UI.SearchDistance
	a.rows = nil
	a.cursor, a.headerCursor = 0, 0
	a.search.SetValue("")
}

func (a *App) Init() tea.Cmd {
	return a.reload()
}

func (a *App) reload() tea.Cmd {
	a.loadSeq++
	a.loading = true
	return tea.Batch(a.spinner.Tick, a.loadCmd(a.loadSeq, a.current()))
}

func (a *App) loadCmd(seq int, d views.Definition) tea.Cmd {
	return func() tea.Msg {
		rows, err := d.Load(a.ctx, a.sources)
		if err != nil {
			return errMsg{error: fmt.Errorf("load %s: %w", d.ID, err), seq: seq}
		}
		return rowsMsg{seq: seq, rows: table.InLocation(rows, a.loc)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleKey(m)
	case rowsMsg:
		if m.seq != a.loadSeq {
			return a, nil
		}
		a.loading = false
		a.rows = m.rows
		a.clampCursor()
		a.log.Debug("view loaded", zap.String("view", a.current().ID), zap.Int("rows", len(m.rows)))
	case actionMsg:
		a.status = string(m)
		return a, a.reload()
	case statusMsg:
		a.status = string(m)
	case errMsg:
		if m.seq != 0 {
			if m.seq != a.loadSeq {
				return a, nil
			}
			a.loading = false
		}
		a.status = "error: " + m.Error()
		a.log.Warn("console error", zap.Error(m.error))
	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.savePrefs()
		return a, tea.Quit
	case key.Matches(m, a.keys.ShowHelp):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.NextView):
		return a, a.switchView(1)
	case key.Matches(m, a.keys.PrevView):
		return a, a.switchView(-1)
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.page().Rows)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Left):
		if a.headerCursor > 0 {
			a.headerCursor--
		}
	case key.Matches(m, a.keys.Right):
		if a.headerCursor < len(a.current().Columns)-1 {
			a.headerCursor++
		}
	case key.Matches(m, a.keys.Sort):
		col := a.current().Columns[a.headerCursor]
		if !a.state.SortBy(col) {
			a.status = col.Label + " is not sortable"
			return a, nil
		}
		a.cursor = 0
		a.status = fmt.Sprintf("sorted by %s (%s)", col.Label, a.state.Sort.Direction)
	case key.Matches(m, a.keys.NextPage):
		if a.state.NextPage(a.page().Total) {
			a.cursor = 0
		}
	case key.Matches(m, a.keys.PrevPage):
		if a.state.PrevPage() {
			a.cursor = 0
		}
	case key.Matches(m, a.keys.Grow):
		a.resizePage(1)
	case key.Matches(m, a.keys.Shrink):
		a.resizePage(-1)
	case key.Matches(m, a.keys.Expand):
		if id, ok := a.cursorRowID(); ok {
			a.state.ToggleExpanded(id)
		}
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.search.Focus()
		return a, textinput.Blink
	case key.Matches(m, a.keys.Filter):
		a.cycleFilter()
	case key.Matches(m, a.keys.YankCell):
		a.yank(false)
	case key.Matches(m, a.keys.YankRow):
		a.yank(true)
	case key.Matches(m, a.keys.Reload):
		a.status = ""
		return a, a.reload()
	case key.Matches(m, a.keys.Approve):
		return a, a.executionCmd(true)
	case key.Matches(m, a.keys.Flag):
		return a, a.executionCmd(false)
	}
	return a, nil
}

// yank copies the focused cell, or the whole row tab-separated.
func (a *App) yank(row bool) {
	p := a.page()
	if a.cursor < 0 || a.cursor >= len(p.View.Rows) {
		return
	}
	cells := p.View.Rows[a.cursor].Cells
	var val string
	if row {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = copyText(c)
		}
		val = strings.Join(parts, "\t")
	} else {
		val = copyText(cells[a.headerCursor])
	}
	if err := a.Copy(val); err != nil {
		a.status = "clipboard error: " + err.Error()
		return
	}
	a.status = "copied: " + runewidth.Truncate(val, 40, "…")
}

func copyText(c table.Cell) string {
	if c.Kind == table.CellDetail {
		return c.Detail
	}
	return c.Text
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEnter:
		a.searching = false
		a.search.Blur()
		a.state.SetSearch(a.search.Value())
		a.cursor = 0
		return a, nil
	case tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.state.SetSearch("")
		a.cursor = 0
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	return a, cmd
}

func (a *App) switchView(step int) tea.Cmd {
	n := len(a.views)
	a.active = ((a.active+step)%n + n) % n
	a.status = ""
	a.resetState()
	return a.reload()
}

// cycleFilter steps the first filter field through All and its distinct values.
func (a *App) cycleFilter() {
	fields := a.current().FilterFields
	if len(fields) == 0 {
		a.status = "no filters for this view"
		return
	}
	field := fields[0]
	choices := append([]string{table.AllValues}, table.DistinctValues(a.rows, field)...)
	cur := a.state.FilterValue(field)
	next := choices[0]
	for i, c := range choices {
		if c == cur {
			next = choices[(i+1)%len(choices)]
			break
		}
	}
	a.state.SetFilter(field, next)
	a.cursor = 0
	a.status = fmt.Sprintf("filter %s: %s", field, next)
}

func (a *App) executionCmd(approve bool) tea.Cmd {
	if a.current().ID != "executions" {
		return nil
	}
	id, ok := a.cursorRowID()
	if !ok {
		return nil
	}
	gov := a.sources.Governance
	return func() tea.Msg {
		var err error
		verb := "approved"
		if approve {
			_, err = gov.ApproveExecution(a.ctx, id)
		} else {
			verb = "flagged"
			_, err = gov.FlagExecution(a.ctx, id)
		}
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return statusMsg(id + " no longer exists")
			}
			return errMsg{error: err}
		}
		return actionMsg(id + " " + verb)
	}
}

func (a *App) page() views.Page {
	return a.current().Window(a.rows, a.state)
}

func (a *App) cursorRowID() (string, bool) {
	rows := a.page().Rows
	if a.cursor < 0 || a.cursor >= len(rows) {
		return "", false
	}
	return rows[a.cursor].ID, true
}

func (a *App) clampCursor() {
	n := len(a.page().Rows)
	if a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
}

const maxPageSize = 100

// resizePage changes the active view's page size and remembers it for the
// next session.
func (a *App) resizePage(step int) {
	n := a.state.PageSize + step
	if n < 1 || n > maxPageSize {
		return
	}
	a.state.PageSize = n
	a.state.Page = 1
	a.cursor = 0
	if a.prefs.PageSizes == nil {
		a.prefs.PageSizes = map[string]int{}
	}
	a.prefs.PageSizes[a.current().ID] = n
	a.status = fmt.Sprintf("page size %d", n)
}

func (a *App) savePrefs() {
	if a.SavePrefs == nil {
		return
	}
	a.prefs.LastView = a.current().ID
	if err := a.SavePrefs(a.prefs); err != nil {
		a.log.Warn("save prefs", zap.Error(err))
	}
}

// LastView reports the active view ID.
func (a *App) LastView() string { return a.current().ID }

func (a *App) View() string {
	d := a.current()
	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(d.Engine + " · " + d.Title))
	b.WriteString("\n")
	if filters := a.renderFilters(); filters != "" {
		b.WriteString(filters)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if a.loading {
		b.WriteString(a.spinner.View() + " loading " + d.Title + "...")
	} else {
		p := a.page()
		opts := table.DefaultRenderOptions()
		opts.Cursor = a.cursor
		opts.HeaderCursor = a.headerCursor
		opts.MaxCellWidth = a.cfg.UI.MaxCellWidth
		b.WriteString(table.Render(p.View, p.RenderOptions(opts)))
	}
	b.WriteString("\n\n")
	if a.searching {
		b.WriteString(a.search.View())
		b.WriteString("\n")
	}
	b.WriteString(a.help.View(a.keys.forView(d.ID)))
	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(a.status))
	}
	return b.String()
}

func (a *App) renderTabs() string {
	parts := make([]string, len(a.views))
	for i, d := range a.views {
		if i == a.active {
			parts[i] = activeTabStyle.Render(d.Title)
			continue
		}
		parts[i] = tabStyle.Render(d.Title)
	}
	return strings.Join(parts, " ")
}

func (a *App) renderFilters() string {
	var parts []string
	for _, f := range a.state.Filters {
		parts = append(parts, f.Field+"="+f.Value)
	}
	if q := a.state.Search.Query; q != "" {
		parts = append(parts, "search="+q)
	}
	if len(parts) == 0 {
		return ""
	}
	return helpStyle.Render("filters: " + strings.Join(parts, "  "))
}
