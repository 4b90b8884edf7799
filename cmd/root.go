package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/config"
	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/logging"
	"github.com/abhisek/sahayak/internal/store"
	"github.com/abhisek/sahayak/internal/userdata"
)

var rootCmd = &cobra.Command{
	Use:   "sahayak",
	Short: "AI teaching companion for classroom teachers",
	Long: `Sahayak: a terminal companion for teachers in Indian government schools.

It suggests a daily lesson plan, curates teacher-training resources, tracks
your activity, and hosts an AI assistant that answers pedagogy questions,
illustrates concepts and edits classroom photos.

The assistant needs an API key. Set SAHAYAK_LLM_GEMINI_API_KEY (or
GEMINI_API_KEY), or pick another provider with SAHAYAK_LLM_PROVIDER.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SAHAYAK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/sahayak/config.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(editImageCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs: settings, a logger and the database.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	store  *store.Store
	dbPath string
}

// openEnv loads configuration and opens the database.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewOrNop(cfg.Log)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger.Debug("environment ready",
		zap.String("db", dbPath),
		zap.String("provider", cfg.LLM.Provider),
	)
	return &env{cfg: cfg, logger: logger, store: st, dbPath: dbPath}, nil
}

func (e *env) Close() {
	e.store.Close()
	e.logger.Sync()
}

// userData returns the profile and stats records.
func (e *env) userData() *userdata.Store {
	return userdata.New(e.store.KV(), e.logger)
}

// controller returns a controller over the stored records, already loaded.
func (e *env) controller(ctx context.Context) *controller.Controller {
	c := controller.New(e.userData(), e.logger)
	c.Init(ctx)
	return c
}

// provider builds the configured LLM provider. The error is kept so the
// coach can report it on first use.
func (e *env) provider(ctx context.Context) (*llm.LoggingProvider, error) {
	p, err := llm.NewProvider(ctx, e.cfg.LLM, e.store.EventRepo(), e.logger)
	if err != nil {
		e.logger.Warn("LLM provider not configured", zap.Error(err))
	}
	return p, err
}

func (e *env) coach(ctx context.Context) *assistant.Coach {
	p, err := e.provider(ctx)
	if err != nil {
		return assistant.NewCoach(nil, err, e.logger)
	}
	return assistant.NewCoach(p, nil, e.logger)
}

// pruneEvents drops recorded assistant calls older than the configured
// retention. Failures only cost disk space, so they are logged.
func (e *env) pruneEvents(ctx context.Context) {
	if e.cfg.EventRetention <= 0 {
		return
	}
	n, err := e.store.EventRepo().PruneLLMEvents(ctx, time.Now().Add(-e.cfg.EventRetention))
	if err != nil {
		e.logger.Warn("prune LLM events", zap.Error(err))
		return
	}
	if n > 0 {
		e.logger.Info("pruned LLM events", zap.Int64("count", n), zap.Duration("retention", e.cfg.EventRetention))
	}
}

// imageDir is where generated and edited images are written.
func (e *env) imageDir() string {
	dir := filepath.Join(filepath.Dir(e.dbPath), "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		e.logger.Warn("image directory unavailable", zap.String("dir", dir), zap.Error(err))
		return ""
	}
	return dir
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then SAHAYAK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
