// Package commands implements the stackctl developer CLI: inspect and
// validate the workspace manifest without running any app.
package commands

import (
	"github.com/spf13/cobra"

	"stackpad/internal/workspace"
)

var manifestPath string

func Execute() error {
	root := &cobra.Command{
		Use:           "stackctl",
		Short:         "Workspace manifest tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "workspace.yaml", "path to the workspace manifest")

	root.AddCommand(validateCmd(), listCmd())
	return root.Execute()
}

func loadManifest() (*workspace.Manifest, error) {
	return workspace.Load(manifestPath)
}
