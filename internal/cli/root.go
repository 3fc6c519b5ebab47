// Package cli holds the cobra commands of the folio binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/folio/internal/config"
	"github.com/vcrobe/folio/internal/logging"
)

// app is the state shared by every command, filled in before a command runs.
type app struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *zap.Logger
}

// NewRootCmd creates the folio command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "Serve and export the portfolio site",
		Long: `folio serves a single-page portfolio whose client runs as Go WebAssembly.

Every route is pre-rendered on the server so the page is readable before the
wasm bundle starts.

Examples:
  # Serve on the default address (0.0.0.0:8080)
  folio serve

  # Serve a local build without caching
  folio serve --port 3000 --static-dir ./web/static --dev

  # Export every route as static HTML
  folio render --out dist`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./folio.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (default from config: info)")

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(config.Options{ConfigFile: a.cfgFile})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}
