package amphora_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/stretchr/testify/require"
)

func TestInitFresh(t *testing.T) {
	p := filepath.Join(t.TempDir(), "amphora.dat")

	a := openContainer(t, p)
	defer a.Close()

	st, err := os.Stat(p)
	require.NoError(t, err)
	require.EqualValues(t, amphora.DefaultContainerSize, st.Size())

	status := a.Status()
	require.EqualValues(t, 0, status.Files)
	require.EqualValues(t, 0, status.StoredBytes)
	require.Equal(t, status.Header.BlockCount, status.FreeBlocks)
}

func TestInitInvalidGeometry(t *testing.T) {
	p := filepath.Join(t.TempDir(), "amphora.dat")

	a := amphora.New(
		amphora.WithPath(p),
		amphora.WithContainerSize(1<<10),
	)

	require.NoError(t, a.Open())
	require.ErrorIs(t, a.Init(), amphora.ErrInvalidLayout)
	require.NoError(t, a.Close())
}

func TestInitPersistence(t *testing.T) {
	p := filepath.Join(t.TempDir(), "amphora.dat")
	data := testData(10000)

	a := openContainer(t, p)
	uploadBytes(t, a, "keep.bin", data)
	require.NoError(t, a.Close())

	a = openContainer(t, p)
	defer a.Close()

	require.Equal(t, data, downloadBytes(t, a, "keep.bin"))

	status := a.Status()
	require.EqualValues(t, 1, status.Files)
	require.EqualValues(t, 10000, status.StoredBytes)
	require.Equal(t, status.Header.BlockCount-3, status.FreeBlocks)
}

func TestInitGeometryMismatch(t *testing.T) {
	p := filepath.Join(t.TempDir(), "amphora.dat")

	a := openContainer(t, p)
	uploadBytes(t, a, "gone.bin", testData(100))
	require.NoError(t, a.Close())

	// different block size formats the container from scratch
	a = openContainer(t, p, amphora.WithBlockSize(8<<10))
	defer a.Close()

	require.Empty(t, a.List())

	status := a.Status()
	require.EqualValues(t, 8<<10, status.Header.BlockSize)
	require.EqualValues(t, 0, status.StoredBytes)
}

func TestInitCorruptTable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "amphora.dat")

	a := openContainer(t, p)
	hdr := a.Status().Header
	require.NoError(t, a.Close())

	// break the record count prefix of the filenode table
	f, err := os.OpenFile(p, os.O_WRONLY, 0)
	require.NoError(t, err)

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, hdr.TableCapacity+1)

	_, err = f.WriteAt(buf, int64(hdr.TableOffset))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	a = amphora.New(amphora.WithPath(p))
	require.NoError(t, a.Open())
	require.ErrorIs(t, a.Init(), amphora.ErrCorruptTable)
	require.NoError(t, a.Close())
}

func TestReset(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "one.bin", testData(100))
	uploadBytes(t, a, "two.bin", testData(100))

	require.NoError(t, a.Reset())

	require.Empty(t, a.List())

	status := a.Status()
	require.EqualValues(t, 0, status.Files)
	require.Equal(t, status.Header.BlockCount, status.FreeBlocks)
}
