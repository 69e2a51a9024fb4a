package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gabryel85/peopletable/internal/infra/logger"
	"github.com/gabryel85/peopletable/internal/infra/workspacefinder"
	"github.com/gabryel85/peopletable/internal/ports"
	"github.com/gabryel85/peopletable/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	workspace string
	seed      string
	debug     bool

	locator ports.WorkspaceLocator
}

func newRootCmd() *cobra.Command {
	g := globalFlags{locator: workspacefinder.NewFinder()}

	cmd := &cobra.Command{
		Use:          "peopletable",
		Short:        "Select, delete and reorder people in a terminal table",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.locator, g.workspace, g.seed)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot(ws),
				Debug: g.debug || ws.cfg.Debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Source:       ws.source,
				SeedPath:     ws.cfg.Seed.Path,
				TableOptions: ws.tableOptions(),
				Logger:       logger.L(),
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().StringVarP(&g.seed, "seed", "s", "", "Seed file (JSON or YAML); overrides peopletable.yaml")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .peopletable/logs/peopletable.log")

	cmd.AddCommand(
		listCmd(&g),
		validateCmd(&g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
