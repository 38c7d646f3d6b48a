package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agility/pkg/types"
)

// queryView is the JSON shape of query output.
type queryView struct {
	Type       string `json:"type"`
	Instance   string `json:"instance"`
	Capability string `json:"capability"`
	Present    bool   `json:"present"`
}

func newQueryCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "query <type>",
		Short: "Query the agile marker capability on a new instance of a type",
		Long: `Query creates a handle to a new instance of the type and asks for the
agile marker capability. By default the result is printed as present or
absent. With --strict an absent capability is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0], strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the capability is not supported")
	return cmd
}

func runQuery(cmd *cobra.Command, typeName string, strict bool) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	h, err := reg.NewHandle(typeName)
	if err != nil {
		return err
	}

	var present bool
	if strict {
		if _, err := reg.QueryCapability(h, types.MarkerAgile); err != nil {
			return err
		}
		present = true
	} else {
		present = reg.TryQueryCapability(h, types.MarkerAgile).Present()
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		data, err := json.MarshalIndent(queryView{
			Type:       h.TypeName(),
			Instance:   h.ID(),
			Capability: string(types.MarkerAgile),
			Present:    present,
		}, "", "  ")
		if err != nil {
			return withCode(exitSysError, fmt.Errorf("marshal JSON: %w", err))
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if present {
		fmt.Fprintln(out, "present")
	} else {
		fmt.Fprintln(out, "absent")
	}
	return nil
}
