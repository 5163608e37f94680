package commands

import (
	"strconv"
	"strings"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var vInspectAlias string

// Inspect contains `inspect` command definition.
var Inspect = &cobra.Command{
	Use:   "inspect",
	Short: "Low-level filenode table information",
	Long: `Dump the filenode table slot by slot, free slots included.
With --alias, report the block placement of a single stored file instead.`,
	Args: cobra.NoArgs,
	RunE: inspectFunc,
}

func init() {
	Inspect.Flags().StringVarP(&vInspectAlias, aliasFlag, "a", "", "Inspect a single stored file")
}

func inspectFunc(cmd *cobra.Command, _ []string) error {
	a, err := openContainer(false)
	if err != nil {
		return err
	}

	defer a.Close()

	if vInspectAlias != "" {
		return inspectAlias(cmd, a)
	}

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"Slot", "State", "Alias", "Size (bytes)", "First block"})
	out.SetAlignment(tablewriter.ALIGN_LEFT)
	out.SetAutoWrapText(false)

	for i, n := range a.Slots() {
		row := []string{strconv.Itoa(i), "free", "", "", ""}

		if n.Used {
			row[1] = "used"
			row[2] = n.AliasString()
			row[3] = strconv.FormatUint(n.Size, 10)
			row[4] = strconv.FormatUint(n.FirstBlock, 10)
		}

		out.Append(row)
	}

	out.Render()

	return nil
}

func inspectAlias(cmd *cobra.Command, a *amphora.Amphora) error {
	res, err := a.Inspect(amphora.InspectPrm{Alias: vInspectAlias})
	if err != nil {
		return err
	}

	chain := make([]string, len(res.Chain))
	for i := range res.Chain {
		chain[i] = strconv.FormatUint(res.Chain[i], 10)
	}

	cmd.Printf("Slot: %d\n", res.Slot)
	cmd.Printf("Alias: %s\n", res.Node.AliasString())
	cmd.Printf("Size: %d bytes\n", res.Node.Size)
	cmd.Printf("Chain: %s\n", strings.Join(chain, " -> "))

	if !res.Complete {
		cmd.Println("Chain is incomplete: a pointer leaves the data region.")
	}

	return nil
}
