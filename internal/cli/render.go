package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/folio/internal/portfolio/site"
	"github.com/vcrobe/folio/internal/server"
)

// newRenderCmd creates the render command, which exports every route as HTML.
func newRenderCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Pre-render every route to static HTML",
		Long: `Write index.html for every route, plus 404.html, into the output directory.

Copy the static directory next to the output to host the site on any static
file server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = a.cfg.Render.OutDir
			}
			files, err := Export(outDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				a.log.Info("rendered", zap.String("file", f))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d files into %s\n", len(files), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config: dist)")

	return cmd
}

// Export writes every route and the 404 page under dir and returns the files written.
func Export(dir string) ([]string, error) {
	var written []string

	write := func(rel string, doc []byte) error {
		file := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(file), err)
		}
		if err := os.WriteFile(file, doc, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
		written = append(written, file)
		return nil
	}

	for _, p := range site.Paths() {
		doc, err := server.RenderPage(p)
		if err != nil {
			return written, err
		}
		rel := filepath.Join(filepath.FromSlash(strings.TrimPrefix(p, "/")), "index.html")
		if err := write(rel, doc); err != nil {
			return written, err
		}
	}

	notFound, err := server.RenderNotFound()
	if err != nil {
		return written, err
	}
	if err := write("404.html", notFound); err != nil {
		return written, err
	}
	return written, nil
}
