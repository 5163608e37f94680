package commands

import (
	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/spf13/cobra"
)

var vDeleteAlias string

// Delete contains `delete` command definition.
var Delete = &cobra.Command{
	Use:   "delete",
	Short: "Remove a stored file",
	Args:  cobra.NoArgs,
	RunE:  deleteFunc,
}

func init() {
	addAliasFlag(Delete, &vDeleteAlias)
}

func deleteFunc(cmd *cobra.Command, _ []string) error {
	a, err := openContainer(false)
	if err != nil {
		return err
	}

	defer a.Close()

	res, err := a.Delete(amphora.DeletePrm{Alias: vDeleteAlias})
	if err != nil {
		return err
	}

	cmd.Printf("File '%s' deleted successfully.\n", vDeleteAlias)

	if vVerbose {
		cmd.Printf("Freed %d data blocks.\n", res.FreedBlocks)
	}

	return nil
}
