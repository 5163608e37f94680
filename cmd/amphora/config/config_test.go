package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amphora-fs/amphora/cmd/amphora/config"
	"github.com/stretchr/testify/require"
)

func fileConfig(t *testing.T, content string) *config.Config {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))

	return config.New(config.Prm{}, config.WithConfigFile(path))
}

func TestConfigFile(t *testing.T) {
	c := fileConfig(t, `
storage:
  path: /srv/amphora.dat
  total_size: 1MB
  block_size: 4kb
  capacity: 100
logger:
  level: debug
`)

	storage := c.Sub("storage")

	require.Equal(t, "/srv/amphora.dat", config.String(storage, "path"))
	require.EqualValues(t, 1<<20, config.SizeInBytesSafe(storage, "total_size"))
	require.EqualValues(t, 4<<10, config.SizeInBytesSafe(storage, "block_size"))
	require.EqualValues(t, 100, config.Uint64(storage, "capacity"))

	require.Equal(t, "debug", config.StringSafe(c.Sub("logger"), "level"))

	// missing values fall through to zero values
	require.Equal(t, "", config.StringSafe(c.Sub("metrics"), "address"))
	require.EqualValues(t, 0, config.Uint64Safe(storage, "unknown"))
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("AMPHORA_LOGGER_LEVEL", "warn")
	t.Setenv("AMPHORA_STORAGE_BLOCK_SIZE", "8KB")

	c := config.New(config.Prm{})

	require.Equal(t, "warn", config.StringSafe(c.Sub("logger"), "level"))
	require.EqualValues(t, 8<<10, config.SizeInBytesSafe(c.Sub("storage"), "block_size"))
}

func TestSizeSuffixes(t *testing.T) {
	c := fileConfig(t, `
sizes:
  plain: 4096
  kilo: 4k
  mega: "2m"
  giga: 1GB
  invalid: many
`)

	sizes := c.Sub("sizes")

	require.EqualValues(t, 4096, config.SizeInBytesSafe(sizes, "plain"))
	require.EqualValues(t, 4<<10, config.SizeInBytesSafe(sizes, "kilo"))
	require.EqualValues(t, 2<<20, config.SizeInBytesSafe(sizes, "mega"))
	require.EqualValues(t, 1<<30, config.SizeInBytesSafe(sizes, "giga"))
	require.EqualValues(t, 0, config.SizeInBytesSafe(sizes, "invalid"))
}
