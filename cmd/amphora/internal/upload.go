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
	vUploadPath  string
	vUploadAlias string
)

// Upload contains `upload` command definition.
var Upload = &cobra.Command{
	Use:   "upload",
	Short: "Store a local file in the container",
	Args:  cobra.NoArgs,
	RunE:  uploadFunc,
}

func init() {
	addFileFlag(Upload, &vUploadPath, "Local file to store")
	addAliasFlag(Upload, &vUploadAlias)
	Upload.Flags().Bool(noProgressFlag, false, "Do not show progress bar")
}

func uploadFunc(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(vUploadPath)
	if err != nil {
		return fmt.Errorf("could not open source file: %w", err)
	}

	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("could not read source file stat: %w", err)
	}

	a, err := openContainer(false)
	if err != nil {
		return err
	}

	defer a.Close()

	var src io.Reader = f
	var p *pb.ProgressBar

	noProgress, _ := cmd.Flags().GetBool(noProgressFlag)
	if !noProgress {
		p = pb.New64(fi.Size())
		p.Output = cmd.OutOrStdout()
		src = p.NewProxyReader(f)
		p.Start()
	}

	res, err := a.Upload(amphora.UploadPrm{
		Alias: vUploadAlias,
		Size:  uint64(fi.Size()),
		From:  src,
	})
	if p != nil {
		p.Finish()
	}
	if err != nil {
		return err
	}

	cmd.Printf("File '%s' uploaded successfully as '%s'.\n", vUploadPath, vUploadAlias)

	if vVerbose {
		cmd.Printf("Stored in %d blocks starting at block %d.\n", res.Blocks, res.FirstBlock)
	}

	return nil
}
