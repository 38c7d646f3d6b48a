package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agility/pkg/agility"
)

const modulePath = "github.com/mesh-intelligence/agility"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the agility version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "agility v%s\nmodule: %s\n", agility.Version, modulePath)
			return nil
		},
	}
}
