package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/cheggaaa/pb"
	"github.com/spf13/cobra"
)

var (
	vDownloadPath  string
	vDownloadAlias string
)

// Download contains `download` command definition.
var Download = &cobra.Command{
	Use:   "download",
	Short: "Fetch a stored file into a local one",
	Args:  cobra.NoArgs,
	RunE:  downloadFunc,
}

func init() {
	addAliasFlag(Download, &vDownloadAlias)
	addFileFlag(Download, &vDownloadPath, "Local file to write the content to")
	Download.Flags().Bool(noProgressFlag, false, "Do not show progress bar")
}

func downloadFunc(cmd *cobra.Command, _ []string) error {
	a, err := openContainer(false)
	if err != nil {
		return err
	}

	defer a.Close()

	f, err := os.Create(vDownloadPath)
	if err != nil {
		return fmt.Errorf("could not create destination file: %w", err)
	}

	defer f.Close()

	var dst io.Writer = f
	var p *pb.ProgressBar

	noProgress, _ := cmd.Flags().GetBool(noProgressFlag)
	if !noProgress {
		ins, err := a.Inspect(amphora.InspectPrm{Alias: vDownloadAlias})
		if err == nil {
			p = pb.New64(int64(ins.Node.Size))
			p.Output = cmd.OutOrStdout()
			dst = io.MultiWriter(f, p)
			p.Start()
		}
	}

	_, err = a.Download(amphora.DownloadPrm{
		Alias: vDownloadAlias,
		To:    dst,
	})
	if p != nil {
		p.Finish()
	}
	if err != nil {
		return err
	}

	cmd.Printf("File '%s' downloaded successfully to '%s'.\n", vDownloadAlias, vDownloadPath)

	return nil
}
