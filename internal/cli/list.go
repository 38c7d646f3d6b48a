package cli

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// typeView is the JSON shape of one type in list and check output.
type typeView struct {
	Name  string `json:"name"`
	Trait string `json:"trait"`
	Agile bool   `json:"agile"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the types in the manifest with their traits",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	descs := reg.Types()
	out := cmd.OutOrStdout()

	if flags.jsonMode {
		views := make([]typeView, 0, len(descs))
		for _, d := range descs {
			views = append(views, typeView{Name: d.Name(), Trait: d.Trait().String(), Agile: d.IsAgile()})
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return withCode(exitSysError, fmt.Errorf("marshal JSON: %w", err))
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(descs) == 0 {
		fmt.Fprintln(out, "No types defined")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("Name", "Trait", "Agile")
	for _, d := range descs {
		agile := "no"
		if d.IsAgile() {
			agile = "yes"
		}
		if err := table.Append(d.Name(), d.Trait().String(), agile); err != nil {
			return withCode(exitSysError, fmt.Errorf("render table: %w", err))
		}
	}
	if err := table.Render(); err != nil {
		return withCode(exitSysError, fmt.Errorf("render table: %w", err))
	}
	fmt.Fprintf(out, "\nTotal types: %d\n", len(descs))
	return nil
}
