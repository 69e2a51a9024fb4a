package cli

import (
	"fmt"

	"github.com/gabryel85/peopletable/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate the seed file (unique slugs, known sex values)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.locator, g.workspace, g.seed)
			if err != nil {
				return err
			}

			n, err := usecase.NewValidateSeed(ws.source).Execute(cmd.Context(), ws.cfg.Seed.Path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d people in %s\n", n, ws.seedName())
			return nil
		},
	}

	return c
}
