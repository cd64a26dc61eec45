// Package cli is the insights command line: the HTTP service plus read-only
// views of the catalog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/insights/internal/app"
	"github.com/MrSnakeDoc/insights/internal/catalog"
	"github.com/MrSnakeDoc/insights/internal/config"
	"github.com/MrSnakeDoc/insights/internal/logger"
)

// runtime is shared by subcommands once the root pre-run has resolved it.
type runtime struct {
	cfg    *config.Config
	logger logger.Logger

	catalogFile string
	contentDir  string
	verbose     bool
}

// catalog loads the configured catalog.
func (rt *runtime) catalog() (*catalog.Catalog, error) {
	if err := rt.cfg.Validate(); err != nil {
		return nil, err
	}
	return app.LoadCatalog(rt.cfg, rt.logger)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:           "insights",
		Short:         "A server-rendered blog catalog",
		Long:          "Insights serves a fixed catalog of articles as HTML pages and a JSON API,\nand lets you browse the same catalog from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rt.cfg = config.Load()
			if rt.catalogFile != "" {
				rt.cfg.CatalogFile = rt.catalogFile
			}
			if rt.contentDir != "" {
				rt.cfg.ContentDir = rt.contentDir
			}

			// Browsing commands stay quiet; serve logs as configured.
			switch {
			case cmd.Name() == "serve":
				rt.logger = logger.New(rt.cfg.LogLevel, rt.cfg.PrettyLog)
			case rt.verbose:
				rt.logger = logger.New("debug", true)
			default:
				rt.logger = logger.NewNop()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&rt.catalogFile, "catalog-file", "", "YAML catalog to load (overrides INSIGHTS_CATALOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&rt.contentDir, "content-dir", "", "markdown directory to load (overrides INSIGHTS_CONTENT_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		serveCommand(rt),
		listCommand(rt),
		showCommand(rt),
		categoriesCommand(rt),
		validateCommand(rt),
		versionCommand(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
