package config

import (
	"github.com/amphora-fs/amphora/cmd/amphora/config/internal"
	"github.com/spf13/cast"
)

func panicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}

// String reads configuration value
// from c by name and casts it to string.
//
// Panics if value can not be casted.
func String(c *Config, name string) string {
	x, err := cast.ToStringE(c.Value(name))
	panicOnErr(err)

	return x
}

// StringSafe reads configuration value
// from c by name and casts it to string.
//
// Returns "" if value can not be casted.
func StringSafe(c *Config, name string) string {
	return cast.ToString(c.Value(name))
}

// Uint64 reads configuration value
// from c by name and casts it to uint64.
//
// Panics if value can not be casted.
func Uint64(c *Config, name string) uint64 {
	x, err := cast.ToUint64E(c.Value(name))
	panicOnErr(err)

	return x
}

// Uint64Safe reads configuration value
// from c by name and casts it to uint64.
//
// Returns 0 if value can not be casted.
func Uint64Safe(c *Config, name string) uint64 {
	return cast.ToUint64(c.Value(name))
}

// BoolSafe reads configuration value
// from c by name and casts it to bool.
//
// Returns false if value can not be casted.
func BoolSafe(c *Config, name string) bool {
	return cast.ToBool(c.Value(name))
}

// SizeInBytesSafe reads configuration value
// from c by name and casts it to size in bytes
// (uint64).
//
// The value can be a plain number or carry a
// suffix like "4kb", "1M" or "2GB".
//
// Returns 0 if value can not be casted.
func SizeInBytesSafe(c *Config, name string) uint64 {
	return internal.ParseSizeInBytes(StringSafe(c, name))
}
