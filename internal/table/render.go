package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorWarning lipgloss.Color = "#f9e2af"
	colorError   lipgloss.Color = "#f38ba8"
	colorMuted   lipgloss.Color = "#7f849c"
	colorFocus   lipgloss.Color = "#b4befe"
	colorLink    lipgloss.Color = "#89b4fa"
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	interactiveStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	headerFocusStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	detailStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	linkStyle        = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(colorMuted)

	badgeStyles = map[badgeClass]lipgloss.Style{
		badgeSuccess: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		badgeWarning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		badgeError:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		badgeNeutral: lipgloss.NewStyle().Bold(true),
	}
)

type badgeClass int

const (
	badgeNeutral badgeClass = iota
	badgeSuccess
	badgeWarning
	badgeError
)

func classifyBadge(v string) badgeClass {
	switch strings.ToUpper(v) {
	case "CLEARED", "ACTIVE", "APPROVED", "HARD", "LOW":
		return badgeSuccess
	case "PENDING", "PAUSED", "IDLE", "SOFT", "MEDIUM", "IN REVIEW":
		return badgeWarning
	case "FLAGGED", "DORMANT", "CRITICAL", "REJECTED", "HIGH":
		return badgeError
	}
	return badgeNeutral
}

// RenderOptions controls the terminal rendering of a View.
type RenderOptions struct {
	// Cursor is the highlighted body row; -1 disables highlighting.
	Cursor int
	// HeaderCursor is the focused header; -1 disables it.
	HeaderCursor int
	Page         int
	Pages        int
	Total        int
	// MaxCellWidth truncates long cell text; 0 means no limit.
	MaxCellWidth int
}

// DefaultRenderOptions renders without cursors or truncation.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Cursor: -1, HeaderCursor: -1}
}

// Render draws v as aligned terminal text.
func Render(v View, opts RenderOptions) string {
	if len(v.Headers) == 0 {
		return "No columns"
	}
	widths := make([]int, len(v.Headers))
	for i, h := range v.Headers {
		widths[i] = lipgloss.Width(headerText(h))
	}
	plain := make([][]string, len(v.Rows))
	for i, r := range v.Rows {
		plain[i] = make([]string, len(r.Cells))
		for j, c := range r.Cells {
			t := truncate(cellText(c), opts.MaxCellWidth)
			plain[i][j] = t
			if w := lipgloss.Width(t); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range v.Headers {
		style := headerStyle
		if h.Interactive {
			style = interactiveStyle
		}
		if i == opts.HeaderCursor {
			style = headerFocusStyle
		}
		b.WriteString(pad(style.Render(headerText(h)), headerText(h), widths[i]))
		if i < len(v.Headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	if len(v.Rows) == 0 {
		b.WriteString(detailStyle.Render("  (no rows)"))
		b.WriteString("\n")
	}
	for i, r := range v.Rows {
		marker := "  "
		if i == opts.Cursor {
			marker = cursorStyle.Render("▶ ")
		}
		b.WriteString(marker)
		var details []string
		for j, c := range r.Cells {
			b.WriteString(pad(styleCell(c, plain[i][j]), plain[i][j], widths[j]))
			if j < len(r.Cells)-1 {
				b.WriteString("  ")
			}
			if c.Kind == CellDetail && c.Expanded && c.Detail != "" {
				details = append(details, c.Detail)
			}
		}
		b.WriteString("\n")
		for _, d := range details {
			b.WriteString(detailStyle.Render("    " + d))
			b.WriteString("\n")
		}
	}

	if opts.Pages > 0 {
		b.WriteString(footerStyle.Render(fmt.Sprintf("Page %d of %d  (%d rows)", opts.Page, opts.Pages, opts.Total)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func headerText(h Header) string {
	if h.Indicator == "" {
		return h.Label
	}
	return h.Label + " " + h.Indicator
}

func cellText(c Cell) string {
	if c.Kind == CellLink && c.Href != "" && c.Href != c.Text {
		return c.Text + " <" + c.Href + ">"
	}
	return c.Text
}

func styleCell(c Cell, text string) string {
	switch c.Kind {
	case CellBadge:
		return badgeStyles[classifyBadge(c.Text)].Render(text)
	case CellLink:
		return linkStyle.Render(text)
	case CellDetail:
		return detailStyle.Render(text)
	}
	return text
}

// pad right-fills the styled string based on the width of its plain text,
// since escape codes do not occupy cells.
func pad(styled, plain string, width int) string {
	gap := width - lipgloss.Width(plain)
	if gap <= 0 {
		return styled
	}
	return styled + strings.Repeat(" ", gap)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}
