package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service"
)

func (a *app) newExecutionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execution",
		Short: "Clear or flag governance executions",
	}
	for _, approve := range []bool{true, false} {
		use, short := "approve <id>", "Mark an execution CLEARED"
		if !approve {
			use, short = "flag <id>", "Mark an execution FLAGGED"
		}
		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				src, err := a.sources(cmd.Context())
				if err != nil {
					return err
				}
				var e repository.Execution
				if approve {
					e, err = src.Governance.ApproveExecution(cmd.Context(), args[0])
				} else {
					e, err = src.Governance.FlagExecution(cmd.Context(), args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.ID, e.Status)
				return nil
			},
		})
	}
	return cmd
}

func (a *app) newEntityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity",
		Short: "Register identities and change their status",
	}

	var e repository.Entity
	add := &cobra.Command{
		Use:   "add",
		Short: "Register an identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.sources(cmd.Context())
			if err != nil {
				return err
			}
			out, err := src.Identity.AddEntity(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", out.ID, out.Name, out.Status)
			return nil
		},
	}
	add.Flags().StringVar(&e.ID, "id", "", "identity ID (generated when empty)")
	add.Flags().StringVar(&e.Name, "name", "", "display name")
	add.Flags().StringVar(&e.Type, "type", "HUMAN", "HUMAN, SERVICE or BOT")
	add.Flags().StringVar(&e.Role, "role", "READ_ONLY", "granted role")

	status := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set an identity's status (ACTIVE, PAUSED, IDLE)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.sources(cmd.Context())
			if err != nil {
				return err
			}
			out, err := src.Identity.UpdateStatus(cmd.Context(), args[0], strings.ToUpper(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", out.ID, out.Status)
			return nil
		},
	}
	cmd.AddCommand(add, status)
	return cmd
}

func (a *app) newSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Attach and curate research citations",
	}

	add := &cobra.Command{
		Use:   "add <node-id> <url>",
		Short: "Classify a URL and attach it to a research node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.sources(cmd.Context())
			if err != nil {
				return err
			}
			draft, err := src.Research.AnalyzeURL(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			c, err := src.Research.AddSource(cmd.Context(), args[0], draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", c.ID, c.Type, c.Relevance, c.Title)
			return nil
		},
	}

	var (
		title, typ, relevance string
		tags                  []string
	)
	edit := &cobra.Command{
		Use:   "edit <citation-id>",
		Short: "Change a citation's title, type, relevance or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u service.CitationUpdate
			f := cmd.Flags()
			if f.Changed("title") {
				u.Title = &title
			}
			if f.Changed("type") {
				u.Type = &typ
			}
			if f.Changed("relevance") {
				u.Relevance = &relevance
			}
			if f.Changed("tags") {
				u.Tags = tags
			}
			src, err := a.sources(cmd.Context())
			if err != nil {
				return err
			}
			c, err := src.Research.UpdateCitation(cmd.Context(), args[0], u)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s [%s]\n", c.ID, c.Type, c.Relevance, c.Title, strings.Join(c.Tags, " "))
			return nil
		},
	}
	edit.Flags().StringVar(&title, "title", "", "new title")
	edit.Flags().StringVar(&typ, "type", "", "new type")
	edit.Flags().StringVar(&relevance, "relevance", "", "new relevance")
	edit.Flags().StringSliceVar(&tags, "tags", nil, "replace tags (comma separated)")

	cmd.AddCommand(add, edit)
	return cmd
}

func (a *app) newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <node-id> <question>",
		Short: "Ask the research corpus of a node a question",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.sources(cmd.Context())
			if err != nil {
				return err
			}
			answer, err := src.Research.AskQuestion(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
