package commands

import (
	"github.com/spf13/cobra"
)

// Status contains `status` command definition.
var Status = &cobra.Command{
	Use:   "status",
	Short: "Container geometry and usage summary",
	Args:  cobra.NoArgs,
	RunE:  statusFunc,
}

func statusFunc(cmd *cobra.Command, _ []string) error {
	a, err := openContainer(false)
	if err != nil {
		return err
	}

	defer a.Close()

	st := a.Status()

	cmd.Printf("Container: %s\n", st.Path)
	cmd.Printf("Format version: %d\n", st.Header.Version)
	cmd.Printf("Total size: %d bytes\n", st.Header.TotalSize)
	cmd.Printf("Block size: %d bytes (%d usable)\n", st.Header.BlockSize, st.Header.UsableBlockSize())
	cmd.Printf("Data blocks: %d (%d free)\n", st.Header.BlockCount, st.FreeBlocks)
	cmd.Printf("Filenode slots: %d (%d used)\n", st.Header.TableCapacity, st.Files)
	cmd.Printf("Stored content: %d of %d bytes\n", st.StoredBytes, st.Capacity)

	return nil
}
