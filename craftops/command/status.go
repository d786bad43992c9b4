package command

import (
	"fmt"
	"sort"

	"github.com/sandertv/gophertunnel/minecraft/text"
	"github.com/spf13/cobra"

	"github.com/dj-forge/craftops/craftops"
	"github.com/dj-forge/craftops/craftops/srv"
)

// NewStatus creates the status command. Without flags it probes the
// fleet once and prints a coloured report; with --serve it keeps
// running and exposes the status over HTTP.
func NewStatus(ops *craftops.CraftOps) *cobra.Command {
	var serve bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check reachability of the deployed server fleet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if serve {
				return ops.ServeStatus(cmd.Context())
			}

			ops.CheckServers()
			printStatus(cmd)
			return nil
		},
	}
	cmd.Flags().BoolVar(&serve, "serve", false, "serve the fleet status over HTTP")
	return cmd
}

// printStatus ...
func printStatus(cmd *cobra.Command) {
	all := srv.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		server := all[name]
		st := server.Status()

		line := text.Colourf("<red>offline</red> %s (%s)", name, server.Address())
		if st.Online {
			line = text.Colourf("<green>online</green>  %s (%s) %dms", name, server.Address(), st.LatencyMs)
			if st.BedrockOnline {
				line += text.Colourf(" <aqua>geyser %d/%d</aqua>", st.PlayerCount, st.MaxPlayerCount)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), text.ANSI(line))
	}
}
