package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"findbar/internal/catalog"
	"findbar/internal/config"
	"findbar/internal/debuglog"
	"findbar/internal/storage"
	"findbar/internal/tui"
)

// Version is set at build time.
var Version = "dev"

func main() {
	var (
		configPath     string
		zone           string
		generateConfig bool
		quiet          bool
		debugLevel     string
	)

	rootCmd := &cobra.Command{
		Use:     "findbar",
		Short:   "Search-as-you-type catalog finder",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generateConfig {
				home, _ := os.UserHomeDir()
				configFile := filepath.Join(home, ".config", "findbar", "config.toml")
				if err := config.GenerateDefaultConfig(configFile); err != nil {
					return fmt.Errorf("generating config: %w", err)
				}
				fmt.Printf("Generated default configuration at: %s\n", configFile)
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if zone != "" {
				cfg.Catalog.Zone = zone
			}

			if err := debuglog.Setup(debugLevel); err != nil {
				return err
			}
			defer debuglog.Close()

			if !quiet {
				tui.ShowBanner(Version)
			}

			// The cache is best-effort: a broken cache file only costs
			// the offline fallback.
			var store *storage.Store
			if cfg.Catalog.CachePath != "" {
				store, err = storage.NewStore(cfg.Catalog.CachePath)
				if err != nil {
					debuglog.Warnf("opening catalog cache: %v", err)
					store = nil
				} else {
					defer store.Close()
				}
			}

			app := tui.NewApp(store, catalog.NewFetcher(cfg), cfg)
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&zone, "zone", "", "Zone identifier (overrides config)")
	rootCmd.Flags().BoolVar(&generateConfig, "generate-config", false, "Generate default config file")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Skip startup banner")
	rootCmd.Flags().StringVar(&debugLevel, "debug", "", "Debug log level (debug|info|warn|error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
