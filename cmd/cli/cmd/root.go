// Package cmd provides the CLI commands for roas.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roas-calculator/core/catalog"
	"roas-calculator/core/engine"
	"roas-calculator/core/output"
	"roas-calculator/internal/config"
	"roas-calculator/internal/logging"
)

// version is overridden at build time with -ldflags
var version = "0.1.0"

var (
	cfgFile     string
	catalogFile string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roas",
	Short: "Model ad-spend profitability across subscription tiers",
	Long: `roas estimates single-month profitability for a subscription tier
from ad spend, target ROAS and gross margin, and compares every tier at a
suggested spend level.

Examples:
  roas calculate --tier silver --spend 2500 --roas 3 --margin 60
  roas compare --roas 3 --margin 60 --format markdown
  roas tiers --catalog ./tiers.hcl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.roas-calculator.json)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "tier catalog file (.hcl, .yaml, .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog prefers --catalog, then the configured path, then built-ins
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogFile
	if path == "" {
		path = config.Get().Catalog.Path
	}
	if path == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	logging.Debug("loaded tier catalog",
		zap.String("path", path),
		zap.Int("tiers", cat.Len()),
	)
	return cat, nil
}

// newEngine wires the engine from config and catalog
func newEngine() (*engine.Engine, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	cfg := config.Get()
	return engine.New(cat,
		engine.WithLogger(logging.Named("engine")),
		engine.WithCurrency(cfg.Output.Currency),
	), nil
}

// formatterFor resolves --format, falling back to the configured default
func formatterFor(format string) (output.Formatter, error) {
	cfg := config.Get()
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	registry := output.NewRegistry(output.Options{
		Currency: cfg.Output.Currency,
		Language: output.ParseLocale(cfg.Output.Locale),
	})
	return registry.Get(output.Format(format))
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "roas version %s\n", version)
	},
}
