package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/config"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/logging"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/prefs"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/service/fake"
	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/tui"
)

var errDemoMode = errors.New("not available with --demo")

// app carries the process-wide state shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	demo       bool

	cfg   config.Config
	log   *zap.Logger
	db    *sql.DB
	repos database.Repos
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
}

func (a *app) execute(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	defer a.close()
	return root.ExecuteContext(ctx)
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "northfield",
		Short: "Operator console for the DRE, GGP and IDN engines",
		Long: `northfield browses research nodes, governance executions, identities and
audit history as sortable, paginated tables.

Run without arguments to start the interactive console.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd == cmd.Root())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $HOME/.config/northfield/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.demo, "demo", false, "use in-memory sample data instead of the database")

	root.AddCommand(
		a.newViewCmd(),
		a.newExecutionCmd(),
		a.newEntityCmd(),
		a.newSourceCmd(),
		a.newAskCmd(),
		a.newSeedCmd(),
		a.newResetCmd(),
		a.newConfigCmd(),
	)
	return root
}

// setup loads config and builds the logger. The interactive console logs to
// a file so output never lands on the alternate screen.
func (a *app) setup(interactive bool) error {
	if a.configPath != "" {
		if err := os.Setenv("NORTHFIELD_CONFIG", a.configPath); err != nil {
			return fmt.Errorf("set config path: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	opts := logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON}
	if interactive {
		opts.File = cfg.Log.File
	}
	if a.verbose {
		opts.Level = "debug"
	}
	log, err := logging.New(opts)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// openDB migrates, opens and seeds the configured database once per process.
func (a *app) openDB(ctx context.Context) error {
	if a.db != nil {
		return nil
	}
	path := a.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	migrate := func() error { return database.RunMigrations(path) }
	if dir := a.cfg.Database.Migrations; dir != "" {
		migrate = func() error { return database.RunMigrationsFromDir(path, dir) }
	}
	if err := migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	a.db = db
	a.repos = database.NewRepos(db)
	if err := database.SeedDefaults(ctx, a.repos); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	a.log.Debug("database ready", zap.String("path", path))
	return nil
}

// sources returns the data sources for the current mode.
func (a *app) sources(ctx context.Context) (service.Sources, error) {
	if a.demo {
		store, err := fake.NewFromFixtures()
		if err != nil {
			return service.Sources{}, err
		}
		store.Latency = a.cfg.Demo.Latency
		a.log.Debug("demo mode", zap.Duration("latency", store.Latency))
		return store.Sources(), nil
	}
	if err := a.openDB(ctx); err != nil {
		return service.Sources{}, err
	}
	return service.New(a.repos, a.log), nil
}

func (a *app) runTUI(ctx context.Context) error {
	src, err := a.sources(ctx)
	if err != nil {
		return err
	}
	p, err := prefs.LoadViews()
	if err != nil {
		a.log.Warn("load view prefs", zap.Error(err))
	}
	model := tui.New(ctx, a.cfg, src, p, a.log)
	model.SavePrefs = prefs.SaveViews
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	_ = a.log.Sync()
}
