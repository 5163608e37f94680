package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config contains `config` command definition.
var Config = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  configInitFunc,
}

var vConfigForce bool

func init() {
	configInitCmd.Flags().BoolVar(&vConfigForce, "force", false, "Overwrite an existing configuration file")

	Config.AddCommand(configInitCmd)
}

type configTemplate struct {
	Storage struct {
		Path      string `yaml:"path"`
		TotalSize string `yaml:"total_size"`
		BlockSize string `yaml:"block_size"`
		Capacity  uint64 `yaml:"capacity"`
	} `yaml:"storage"`
	Logger struct {
		Level string `yaml:"level"`
	} `yaml:"logger"`
	Metrics struct {
		Address string `yaml:"address"`
	} `yaml:"metrics"`
}

func configInitFunc(cmd *cobra.Command, _ []string) error {
	path := vConfig
	if path == "" {
		var err error

		path, err = defaultConfigPath()
		if err != nil {
			return err
		}
	}

	if !vConfigForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists at '%s', use --force to overwrite", path)
		}
	}

	var t configTemplate
	t.Storage.Path = defaultContainerName
	t.Storage.TotalSize = "1MB"
	t.Storage.BlockSize = "4KB"
	t.Storage.Capacity = amphora.DefaultTableCapacity
	t.Logger.Level = "warn"

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("could not encode configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create configuration directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("could not write configuration file: %w", err)
	}

	cmd.Printf("Default configuration written to '%s'.\n", path)

	return nil
}
