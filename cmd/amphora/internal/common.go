package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amphora-fs/amphora/cmd/amphora/config"
	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/amphora-fs/amphora/pkg/util/logger"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Flag names shared by the commands.
const (
	aliasFlag      = "alias"
	fileFlag       = "path"
	noProgressFlag = "no-progress"
)

// Global scope flags.
var (
	vConfig    string
	vContainer string
	vVerbose   bool
)

// defaultContainerName is the container file used when neither the
// --container flag nor the configuration specify one.
const defaultContainerName = "amphora.dat"

// BindRootFlags attaches the global flags of the application to fs.
func BindRootFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&vConfig, "config", "c", "", "Config file (default is $HOME/.config/amphora/config.yaml)")
	fs.StringVar(&vContainer, "container", "", "Path to the container file")
	fs.BoolVarP(&vVerbose, "verbose", "v", false, "Verbose output")
}

func addAliasFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVarP(v, aliasFlag, "a", "", "Alias the file is stored under")
	_ = cmd.MarkFlagRequired(aliasFlag)
}

func addFileFlag(cmd *cobra.Command, v *string, usage string) {
	cmd.Flags().StringVarP(v, fileFlag, "p", "", usage)
	_ = cmd.MarkFlagFilename(fileFlag)
	_ = cmd.MarkFlagRequired(fileFlag)
}

// defaultConfigPath returns the path of the configuration file
// searched when the --config flag is not set.
func defaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "amphora", "config.yaml"), nil
}

// appConfig reads the application configuration from the file set by
// the --config flag, from the default location if there is a file
// there, or from the environment alone otherwise.
func appConfig() *config.Config {
	path := vConfig

	if path == "" {
		if def, err := defaultConfigPath(); err == nil {
			if _, err := os.Stat(def); err == nil {
				path = def
			}
		}
	}

	var opts []config.Option
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	return config.New(config.Prm{}, opts...)
}

func newLogger(appCfg *config.Config) (*logger.Logger, error) {
	level := config.StringSafe(appCfg.Sub("logger"), "level")
	if level == "" {
		level = "warn"
	}

	if vVerbose {
		level = "debug"
	}

	// an interactive run reads better without per-record timestamps
	timestamps := !term.IsTerminal(int(os.Stdout.Fd()))

	return logger.New(level, timestamps)
}

// openContainer constructs the container described by the application
// configuration and the global flags, opens it and loads or formats
// its metadata.
//
// The caller is responsible for closing the returned container.
func openContainer(format bool, extra ...amphora.Option) (*amphora.Amphora, error) {
	appCfg := appConfig()

	log, err := newLogger(appCfg)
	if err != nil {
		return nil, err
	}

	storageCfg := appCfg.Sub("storage")

	path := vContainer
	if path == "" {
		path = config.StringSafe(storageCfg, "path")
	}
	if path == "" {
		path = defaultContainerName
	}

	opts := []amphora.Option{
		amphora.WithPath(path),
		amphora.WithLogger(log),
	}

	if sz := config.SizeInBytesSafe(storageCfg, "total_size"); sz > 0 {
		opts = append(opts, amphora.WithContainerSize(sz))
	}

	if sz := config.SizeInBytesSafe(storageCfg, "block_size"); sz > 0 {
		opts = append(opts, amphora.WithBlockSize(sz))
	}

	if capacity := config.Uint64Safe(storageCfg, "capacity"); capacity > 0 {
		opts = append(opts, amphora.WithTableCapacity(capacity))
	}

	a := amphora.New(append(opts, extra...)...)

	if err := a.Open(); err != nil {
		return nil, err
	}

	if format {
		err = a.Reset()
	} else {
		err = a.Init()
	}
	if err != nil {
		_ = a.Close()

		return nil, err
	}

	return a, nil
}
