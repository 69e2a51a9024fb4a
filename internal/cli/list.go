package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/ui/render"
	"github.com/gabryel85/peopletable/internal/usecase"
)

func listCmd(g *globalFlags) *cobra.Command {
	var selected []string
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "Print the people table once (no interaction)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.locator, g.workspace, g.seed)
			if err != nil {
				return err
			}

			state, err := usecase.NewOpenTable(ws.source, ws.tableOptions()...).Execute(cmd.Context(), ws.cfg.Seed.Path)
			if err != nil {
				return err
			}

			state, unknown := usecase.Select(state, selected)
			if len(unknown) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "ignoring unknown slugs: %s\n", strings.Join(unknown, ", "))
			}

			return printTable(cmd.OutOrStdout(), state, format)
		},
	}

	c.Flags().StringSliceVar(&selected, "select", nil, "Slugs to select (repeatable or comma-separated)")
	c.Flags().StringVarP(&format, "format", "f", "pretty", "Output format: pretty|json")
	return c
}

type listedPerson struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Sex      string `json:"sex"`
	Born     int    `json:"born"`
	Selected bool   `json:"selected"`
}

type listedTable struct {
	Caption string         `json:"caption"`
	People  []listedPerson `json:"people"`
}

func printTable(w io.Writer, state domain.TableState, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "pretty":
		_, err := fmt.Fprintln(w, render.Table(state, render.DefaultTheme(), render.Options{Cursor: -1}))
		return err

	case "json":
		out := listedTable{Caption: state.Caption(), People: []listedPerson{}}
		for _, r := range state.Rows() {
			out.People = append(out.People, listedPerson{
				Slug:     r.Person.Slug,
				Name:     r.Person.Name,
				Sex:      string(r.Person.Sex),
				Born:     r.Person.Born,
				Selected: r.Selected,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}
}
