package command

import (
	"github.com/spf13/cobra"

	"github.com/dj-forge/craftops/craftops"
	"github.com/dj-forge/craftops/craftops/serverlist"
)

// NewEncodeServers creates the encode-servers command. It writes a
// servers.dat multiplayer list either from name/address pairs given
// on the command line or, when none are given, from the configured
// fleet.
func NewEncodeServers(ops *craftops.CraftOps) *cobra.Command {
	return &cobra.Command{
		Use:   "encode-servers <output-path> [name address]...",
		Short: "Write a servers.dat multiplayer server list",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return &UsageError{Message: "missing output path"}
			}
			if (len(args)-1)%2 != 0 {
				return &UsageError{Message: "server entries must be name/address pairs"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			output := args[0]

			var entries serverlist.List
			pairs := args[1:]
			for i := 0; i < len(pairs); i += 2 {
				entries = append(entries, serverlist.Entry{Name: pairs[i], Address: pairs[i+1]})
			}
			if len(pairs) == 0 {
				entries = ops.ConfiguredServers()
			}

			if err := serverlist.Write(output, entries); err != nil {
				return err
			}
			ops.Log().Info("wrote server list", "path", output, "entries", len(entries))
			return nil
		},
	}
}
