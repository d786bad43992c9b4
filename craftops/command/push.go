package command

import (
	"github.com/spf13/cobra"

	"github.com/dj-forge/craftops/craftops"
)

// NewPush creates the push command.
func NewPush(ops *craftops.CraftOps) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push the server container image to the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ops.PushImage(cmd.Context())
		},
	}
}
