package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/table"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/views"
)

type viewOptions struct {
	sort     string
	desc     bool
	page     int
	pageSize int
	filters  []string
	search   string
	output   string
}

// pageOutput is the json/yaml shape of one rendered page.
type pageOutput struct {
	View  string           `json:"view" yaml:"view"`
	Page  int              `json:"page" yaml:"page"`
	Pages int              `json:"pages" yaml:"pages"`
	Total int              `json:"total" yaml:"total"`
	Rows  []map[string]any `json:"rows" yaml:"rows"`
}

func (a *app) newViewCmd() *cobra.Command {
	var opts viewOptions
	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "Print one page of a view",
		Long:  "Print one page of a view. Views: " + strings.Join(views.IDs(), ", "),
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return views.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := views.Lookup(args[0])
			if err != nil {
				return err
			}
			st, err := a.viewState(d, opts)
			if err != nil {
				return err
			}
			loc, err := a.cfg.UI.Location()
			if err != nil {
				return err
			}
			src, err := a.sources(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := d.Load(cmd.Context(), src)
			if err != nil {
				return fmt.Errorf("load %s: %w", d.ID, err)
			}
			rows = table.InLocation(rows, loc)
			return a.writePage(cmd.OutOrStdout(), d, d.Window(rows, st), opts.output)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.sort, "sort", "", "column key to sort by")
	f.BoolVar(&opts.desc, "desc", false, "sort descending")
	f.IntVar(&opts.page, "page", 1, "page number (1-based)")
	f.IntVar(&opts.pageSize, "page-size", 0, "rows per page (default: view or config setting)")
	f.StringArrayVar(&opts.filters, "filter", nil, "exact-match filter field=value (repeatable)")
	f.StringVar(&opts.search, "search", "", "fuzzy search across all fields")
	f.StringVarP(&opts.output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

// viewState turns flags into the session state a console user would reach
// by clicking headers and paging.
func (a *app) viewState(d views.Definition, opts viewOptions) (table.State, error) {
	size := d.PageSize
	if a.cfg.UI.PageSize > 0 {
		size = a.cfg.UI.PageSize
	}
	if opts.pageSize > 0 {
		size = opts.pageSize
	}
	st := table.NewState(size)
	st.Search = table.Search{Query: opts.search, MaxDistance: a.cfg.UI.SearchDistance}

	for _, raw := range opts.filters {
		field, value, ok := strings.Cut(raw, "=")
		if !ok || strings.TrimSpace(field) == "" {
			return st, fmt.Errorf("invalid --filter %q: want field=value", raw)
		}
		st.SetFilter(strings.TrimSpace(field), strings.TrimSpace(value))
	}

	if opts.sort != "" {
		col, ok := d.Columns.ByKey(opts.sort)
		if !ok {
			return st, fmt.Errorf("view %s has no column %q", d.ID, opts.sort)
		}
		if !st.SortBy(col) {
			return st, fmt.Errorf("column %q is not sortable", opts.sort)
		}
		if opts.desc {
			st.Sort.Direction = table.Descending
		}
	}
	if opts.page < 1 {
		return st, fmt.Errorf("invalid --page %d", opts.page)
	}
	st.Page = opts.page
	return st, nil
}

func (a *app) writePage(w io.Writer, d views.Definition, p views.Page, format string) error {
	switch strings.ToLower(format) {
	case "", "table":
		opts := table.DefaultRenderOptions()
		opts.MaxCellWidth = a.cfg.UI.MaxCellWidth
		_, err := fmt.Fprintln(w, table.Render(p.View, p.RenderOptions(opts)))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pageData(d, p))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pageData(d, p)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func pageData(d views.Definition, p views.Page) pageOutput {
	out := pageOutput{View: d.ID, Page: p.Page, Pages: p.Pages, Total: p.Total, Rows: []map[string]any{}}
	for _, r := range p.Rows {
		fields := make(map[string]any, len(r.Fields)+1)
		for k, v := range r.Fields {
			fields[k] = v
		}
		fields["id"] = r.ID
		out.Rows = append(out.Rows, fields)
	}
	return out
}
