//go:build linux

package amphora

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// preallocate grows the backing file to the given size with the
// blocks actually reserved, so that container operations do not fail
// later with ENOSPC. Filesystems without fallocate support get a
// plain truncate.
func preallocate(f *os.File, size int64) error {
	err := unix.Fallocate(int(f.Fd()), 0, 0, size)
	if errors.Is(err, unix.EOPNOTSUPP) {
		return f.Truncate(size)
	}

	return err
}
