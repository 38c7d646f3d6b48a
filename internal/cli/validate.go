package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the manifest defines every type exactly once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "manifest ok: %d types\n", len(reg.Types()))
			return nil
		},
	}
}
