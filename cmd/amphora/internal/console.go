package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/amphora-fs/amphora/cmd/amphora/config"
	"github.com/amphora-fs/amphora/pkg/metrics"
	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	httputil "github.com/amphora-fs/amphora/pkg/util/http"
	"github.com/chzyer/readline"
	shlex "github.com/flynn-archive/go-shlex"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Console contains `console` command definition.
var Console = &cobra.Command{
	Use:   "console",
	Short: "Interactive container session",
	Long: `Open the container once and run commands against it interactively.
If metrics.address is configured, a Prometheus endpoint is served for
the duration of the session.`,
	Args: cobra.NoArgs,
	RunE: consoleFunc,
}

func consoleFunc(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("console requires an interactive terminal")
	}

	var extra []amphora.Option

	if addr := config.StringSafe(appConfig().Sub("metrics"), "address"); addr != "" {
		extra = append(extra, amphora.WithMetrics(metrics.NewContainerMetrics()))

		srv := httputil.New(httputil.Prm{
			Address: addr,
			Handler: promhttp.Handler(),
		})

		go func() {
			if err := srv.Serve(); err != nil {
				cmd.PrintErrln("metrics server:", err)
			}
		}()

		defer func() {
			_ = srv.Shutdown()
		}()

		cmd.Printf("Serving metrics on %s.\n", addr)
	}

	a, err := openContainer(false, extra...)
	if err != nil {
		return err
	}

	defer a.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "amphora> ",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("upload"),
			readline.PcItem("download"),
			readline.PcItem("list"),
			readline.PcItem("delete"),
			readline.PcItem("inspect"),
			readline.PcItem("status"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("could not start console: %w", err)
	}

	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			break
		}

		args, err := shlex.Split(line)
		if err != nil {
			cmd.PrintErrln("Error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			break
		}

		if err := consoleDispatch(cmd, a, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	}

	return nil
}

func consoleDispatch(cmd *cobra.Command, a *amphora.Amphora, args []string) error {
	switch args[0] {
	case "upload":
		if len(args) != 3 {
			return errors.New("usage: upload <path> <alias>")
		}

		return consoleUpload(cmd, a, args[1], args[2])
	case "download":
		if len(args) != 3 {
			return errors.New("usage: download <alias> <path>")
		}

		return consoleDownload(cmd, a, args[1], args[2])
	case "list":
		entries := a.List()
		if len(entries) == 0 {
			cmd.Println("Container is empty.")

			return nil
		}

		for _, e := range entries {
			cmd.Printf("- %s (%d bytes)\n", e.Alias, e.Size)
		}

		return nil
	case "delete":
		if len(args) != 2 {
			return errors.New("usage: delete <alias>")
		}

		if _, err := a.Delete(amphora.DeletePrm{Alias: args[1]}); err != nil {
			return err
		}

		cmd.Printf("File '%s' deleted successfully.\n", args[1])

		return nil
	case "inspect":
		if len(args) != 2 {
			return errors.New("usage: inspect <alias>")
		}

		res, err := a.Inspect(amphora.InspectPrm{Alias: args[1]})
		if err != nil {
			return err
		}

		cmd.Printf("Slot %d, %d bytes, blocks %v.\n", res.Slot, res.Node.Size, res.Chain)

		return nil
	case "status":
		st := a.Status()

		cmd.Printf("%d files, %d of %d blocks free, %d bytes stored.\n",
			st.Files, st.FreeBlocks, st.Header.BlockCount, st.StoredBytes)

		return nil
	case "help":
		cmd.Println("Commands: upload <path> <alias>, download <alias> <path>,",
			"list, delete <alias>, inspect <alias>, status, exit")

		return nil
	default:
		return fmt.Errorf("unknown command %q, try 'help'", args[0])
	}
}

func consoleUpload(cmd *cobra.Command, a *amphora.Amphora, path, alias string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open source file: %w", err)
	}

	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("could not read source file stat: %w", err)
	}

	_, err = a.Upload(amphora.UploadPrm{
		Alias: alias,
		Size:  uint64(fi.Size()),
		From:  f,
	})
	if err != nil {
		return err
	}

	cmd.Printf("File '%s' uploaded successfully as '%s'.\n", path, alias)

	return nil
}

func consoleDownload(cmd *cobra.Command, a *amphora.Amphora, alias, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create destination file: %w", err)
	}

	defer f.Close()

	if _, err := a.Download(amphora.DownloadPrm{Alias: alias, To: f}); err != nil {
		return err
	}

	cmd.Printf("File '%s' downloaded successfully to '%s'.\n", alias, path)

	return nil
}
