package main

import (
	"fmt"
	"os"

	commands "github.com/amphora-fs/amphora/cmd/amphora/internal"
	"github.com/amphora-fs/amphora/misc"
	"github.com/spf13/cobra"
)

var command = &cobra.Command{
	Use:   "amphora",
	Short: "Amphora container file system",
	Long: `Amphora stores named files inside one fixed-size container file.
It provides commands to initialize the container and to store, fetch,
list and delete files by alias.`,
	RunE:          entryPoint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func entryPoint(cmd *cobra.Command, _ []string) error {
	printVersion, _ := cmd.Flags().GetBool("version")
	if printVersion {
		cmd.Print(misc.BuildInfo("Amphora"))

		return nil
	}

	return cmd.Usage()
}

func init() {
	// use stdout as default output for cmd.Print()
	command.SetOut(os.Stdout)
	command.Flags().Bool("version", false, "Application version")

	commands.BindRootFlags(command.PersistentFlags())

	command.AddCommand(
		commands.Init,
		commands.Upload,
		commands.Download,
		commands.List,
		commands.Delete,
		commands.Status,
		commands.Inspect,
		commands.Console,
		commands.Config,
	)
}

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
