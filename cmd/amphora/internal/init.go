package commands

import (
	"github.com/spf13/cobra"
)

// Init contains `init` command definition.
var Init = &cobra.Command{
	Use:   "init",
	Short: "Initialize the container",
	Long: `Format the container file with the configured geometry.
All previously stored files are discarded.`,
	Args: cobra.NoArgs,
	RunE: initFunc,
}

func initFunc(cmd *cobra.Command, _ []string) error {
	a, err := openContainer(true)
	if err != nil {
		return err
	}

	defer a.Close()

	st := a.Status()

	cmd.Printf("Container initialised successfully at '%s'.\n", st.Path)
	cmd.Printf("%d data blocks of %d bytes, %d filenode slots.\n",
		st.Header.BlockCount, st.Header.BlockSize, st.Header.TableCapacity)

	return nil
}
