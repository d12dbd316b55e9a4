package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/config"
	"github.com/pable/go-pitch-metrics/internal/logger"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

var (
	dbPath     string
	configPath string
	logLevel   string

	cfg = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "pitchmetrics",
	Short: "Football match event analytics",
	Long: `Import per-match event sheets (CSV) and compute player statistics,
pass networks, zone distributions and leaderboards.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (default from config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file (default $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(shellCmd)
}

// setup loads configuration and initializes logging. Flags win over config.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	logger.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger.WithCommand(cmd.Name()).WithField("db", dbPath).Debug("starting")
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.MetricsFile), 0755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		return err
	}
	logger.WithCommand(cmd.Name()).WithField("file", cfg.MetricsFile).Debug("metrics written")
	return nil
}
