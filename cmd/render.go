package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/page"
)

var (
	renderOut       string
	renderRevealAll bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the page as static files",
	Long: `Writes index.html, motion.css and static/site.js to the output directory so
the page can be hosted without the server. Images are not copied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		written, err := renderer.Export(renderOut, page.Request{RevealAll: renderRevealAll})
		if err != nil {
			return fmt.Errorf("exporting page: %w", err)
		}
		for _, path := range written {
			slog.Debug("wrote file", "path", path)
		}
		slog.Info("page exported", "dir", renderOut, "files", len(written))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "dist", "output directory")
	renderCmd.Flags().BoolVar(&renderRevealAll, "reveal-all", false, "render every section in its revealed state")
	rootCmd.AddCommand(renderCmd)
}
