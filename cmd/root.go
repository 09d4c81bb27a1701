package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/config"
	"github.com/abhisek/tototime/internal/logging"
	"github.com/abhisek/tototime/internal/progress"
	"github.com/abhisek/tototime/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tototime",
	Short: "Learn to tell time with a furry friend",
	Long:  "TotoTime: a terminal app that teaches children to read clocks through short lessons and quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TOTOTIME_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/tototime/config.yaml)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(buddyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// configPath returns --config, falling back to the default location.
func configPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultPath()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(configPath(cmd))
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TOTOTIME_DB or the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// env is what every command that touches learner data needs.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *store.Store
	progress *progress.Store
}

func (e *env) Close() {
	_ = e.logger.Sync()
	e.db.Close()
}

// openEnv loads config, starts the file logger and opens the database.
// On failure the error is logged and the logger flushed before returning.
func openEnv(ctx context.Context, cmd *cobra.Command) (_ *env, err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			logger.Error("open environment", zap.Error(err))
			_ = logger.Sync()
		}
	}()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	ps, err := progress.Open(ctx, db.Records(), progress.WithLogger(logger))
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("environment ready", zap.String("db", dbPath), zap.Bool("user", !ps.IsNewUser()))
	return &env{cfg: cfg, logger: logger, db: db, progress: ps}, nil
}
