package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agility/pkg/types"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <type>",
		Short: "Print whether a type is agile or confined",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	name := args[0]
	agile, err := reg.IsAgileType(name)
	if err != nil {
		return err
	}

	trait := types.TraitConfined
	if agile {
		trait = types.TraitAgile
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		data, err := json.MarshalIndent(typeView{Name: name, Trait: trait.String(), Agile: agile}, "", "  ")
		if err != nil {
			return withCode(exitSysError, fmt.Errorf("marshal JSON: %w", err))
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, trait)
	return nil
}
