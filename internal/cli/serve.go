package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/folio/internal/config"
	"github.com/vcrobe/folio/internal/server"
)

// serveFlags override config values when set.
type serveFlags struct {
	host      string
	port      int
	staticDir string
	dev       bool
}

func (f serveFlags) apply(cfg config.Server) config.Server {
	if f.host != "" {
		cfg.Host = f.host
	}
	if f.port != 0 {
		cfg.Port = f.port
	}
	if f.staticDir != "" {
		cfg.StaticDir = f.staticDir
	}
	if f.dev {
		cfg.Dev = true
	}
	return cfg
}

// newServeCmd creates the serve command for starting the HTTP server
func newServeCmd(a *app) *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the folio web server.

The server provides:
  • Pre-rendered pages for /, /about, /projects, /skills and /contact
  • The wasm client and static assets from the static directory
  • A health check at /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a, flags)
		},
	}

	cmd.Flags().StringVar(&flags.host, "host", "", "HTTP server host (default from config: 0.0.0.0)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&flags.staticDir, "static-dir", "", "Static files directory (default from config: web/static)")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "Development mode: disable static asset caching")

	return cmd
}

func runServe(ctx context.Context, a *app, flags serveFlags) error {
	cfg := flags.apply(a.cfg.Server)
	if err := (&config.Config{Server: cfg}).Validate(); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.StaticDir); err != nil {
		a.log.Warn("static directory is not readable; only pages will be served",
			zap.String("static_dir", cfg.StaticDir), zap.Error(err))
	}

	srv, err := server.New(cfg, a.log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}
