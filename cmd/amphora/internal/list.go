package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// List contains `list` command definition.
var List = &cobra.Command{
	Use:   "list",
	Short: "List stored files",
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

func listFunc(cmd *cobra.Command, _ []string) error {
	a, err := openContainer(false)
	if err != nil {
		return err
	}

	defer a.Close()

	entries := a.List()
	if len(entries) == 0 {
		cmd.Println("Container is empty.")

		return nil
	}

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"Alias", "Size (bytes)"})
	out.SetAlignment(tablewriter.ALIGN_LEFT)
	out.SetAutoWrapText(false)

	for _, e := range entries {
		out.Append([]string{e.Alias, strconv.FormatUint(e.Size, 10)})
	}

	out.Render()

	return nil
}
