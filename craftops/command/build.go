package command

import (
	"github.com/spf13/cobra"

	"github.com/dj-forge/craftops/craftops"
)

// NewBuild creates the build command. The pack manifest is refreshed
// first so the image picks up current mod hashes.
func NewBuild(ops *craftops.CraftOps) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the server container image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ops.BuildImage(cmd.Context())
		},
	}
}
