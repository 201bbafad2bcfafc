package main

import (
	"github.com/darkit/deviceid"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <identifier>...",
		Short: "Translate hardware identifiers into model names",
		Example: `  deviceinfo resolve iPhone13,2
  deviceinfo resolve iPad8,4 Watch5,10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range args {
				name, known := deviceid.KnownModel(id)
				if !known {
					name = deviceid.ResolveModelName(id)
					logDebug("resolve", "no table entry for "+id)
				}
				renderResolved(cmd.OutOrStdout(), id, name, known)
			}
			return nil
		},
	}
}
