package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/synthetic"
)

func (a *app) newSeedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample records into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.demo {
				return fmt.Errorf("seed: %w", errDemoMode)
			}
			ctx := cmd.Context()
			if err := a.openDB(ctx); err != nil {
				return err
			}
			f, err := database.LoadFixtures()
			if err != nil {
				return err
			}
			if err := database.Seed(ctx, a.repos, f); err != nil {
				return err
			}
			if count > 0 {
				if err := synthetic.SeedExecutions(ctx, a.repos.Executions, count, time.Now().UnixNano()); err != nil {
					return err
				}
			}
			a.log.Info("seeded", zap.Int("synthetic", count))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded fixtures and %d synthetic executions\n", count)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "synthetic", 0, "also generate n random executions")
	return cmd
}

func (a *app) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every record, keeping the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.demo {
				return fmt.Errorf("reset: %w", errDemoMode)
			}
			ctx := cmd.Context()
			if err := a.openDB(ctx); err != nil {
				return err
			}
			m := &service.MaintenanceService{DB: a.db}
			if err := m.Reset(ctx); err != nil {
				return err
			}
			a.log.Info("reset database", zap.String("path", a.cfg.Database.Path))
			fmt.Fprintln(cmd.OutOrStdout(), "database cleared")
			return nil
		},
	}
}
