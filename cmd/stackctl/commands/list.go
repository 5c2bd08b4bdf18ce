package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"stackpad/internal/workspace"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List declared workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tPATH\tPORT\tDEPENDS ON")
			for _, ws := range m.Workspaces {
				port := "-"
				if ws.Kind == workspace.KindApp {
					port = fmt.Sprint(ws.Port)
				}
				deps := "-"
				if len(ws.DependsOn) > 0 {
					deps = strings.Join(ws.DependsOn, ",")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ws.Name, ws.Kind, ws.Path, port, deps)
			}
			return tw.Flush()
		},
	}
}
