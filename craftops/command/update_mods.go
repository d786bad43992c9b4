package command

import (
	"github.com/spf13/cobra"

	"github.com/dj-forge/craftops/craftops"
)

// NewUpdateMods creates the update-mods command.
func NewUpdateMods(ops *craftops.CraftOps) *cobra.Command {
	var yes, dryRun bool

	cmd := &cobra.Command{
		Use:   "update-mods",
		Short: "Update Modrinth-tracked mods to the newest matching version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ops.UpdateMods(cmd.Context(), yes, dryRun)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "apply updates without prompting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only report available updates")
	return cmd
}
