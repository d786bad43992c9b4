// Package command provides the craftops command tree.
package command

import (
	"github.com/spf13/cobra"

	"github.com/dj-forge/craftops/craftops"
)

// New builds the root command with every subcommand attached.
func New(ops *craftops.CraftOps) *cobra.Command {
	root := &cobra.Command{
		Use:   "craftops",
		Short: "Deployment tooling for a packwiz-managed Minecraft server",
		Long: `craftops manages the deployment workflow of a packwiz-managed
modded Minecraft server: it encodes the client multiplayer server
list (servers.dat), keeps mods current against Modrinth, builds and
pushes the server container image and reports fleet reachability.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewEncodeServers(ops),
		NewUpdateMods(ops),
		NewBuild(ops),
		NewPush(ops),
		NewStatus(ops),
	)
	return root
}
