package amphora_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/stretchr/testify/require"
)

func TestUploadChaining(t *testing.T) {
	a := newTestContainer(t)
	data := testData(10000)

	res := uploadBytes(t, a, "chained.bin", data)

	// 10000 bytes over 4088-byte payloads make three blocks,
	// allocated from the lowest free indices
	require.EqualValues(t, 3, res.Blocks)
	require.EqualValues(t, 0, res.FirstBlock)

	insp, err := a.Inspect(amphora.InspectPrm{Alias: "chained.bin"})
	require.NoError(t, err)
	require.True(t, insp.Complete)
	require.Equal(t, []uint64{0, 1, 2}, insp.Chain)

	require.Equal(t, data, downloadBytes(t, a, "chained.bin"))

	status := a.Status()
	require.EqualValues(t, 1, status.Files)
	require.EqualValues(t, 10000, status.StoredBytes)
	require.Equal(t, status.Header.BlockCount-3, status.FreeBlocks)
}

func TestUploadSingleBlock(t *testing.T) {
	a := newTestContainer(t)

	usable := int(a.Status().Header.UsableBlockSize())

	res := uploadBytes(t, a, "exact.bin", testData(usable))
	require.EqualValues(t, 1, res.Blocks)

	res = uploadBytes(t, a, "spill.bin", testData(usable+1))
	require.EqualValues(t, 2, res.Blocks)

	res = uploadBytes(t, a, "tiny.bin", testData(1))
	require.EqualValues(t, 1, res.Blocks)
}

func TestUploadValidation(t *testing.T) {
	a := newTestContainer(t)

	before := a.Status()

	_, err := a.Upload(amphora.UploadPrm{
		Alias: "",
		Size:  1,
		From:  bytes.NewReader([]byte{1}),
	})
	require.ErrorIs(t, err, amphora.ErrInvalidAlias)

	_, err = a.Upload(amphora.UploadPrm{
		Alias: strings.Repeat("n", amphora.MaxAliasLen+1),
		Size:  1,
		From:  bytes.NewReader([]byte{1}),
	})
	require.ErrorIs(t, err, amphora.ErrInvalidAlias)

	_, err = a.Upload(amphora.UploadPrm{
		Alias: "empty.bin",
		Size:  0,
	})
	require.ErrorIs(t, err, amphora.ErrEmptyContent)

	require.Equal(t, before, a.Status())
	require.Empty(t, a.List())

	// the longest allowed alias is fine
	uploadBytes(t, a, strings.Repeat("n", amphora.MaxAliasLen), testData(10))
}

func TestUploadAliasExists(t *testing.T) {
	a := newTestContainer(t)

	data := testData(100)
	uploadBytes(t, a, "taken.bin", data)

	before := a.Status()

	_, err := a.Upload(amphora.UploadPrm{
		Alias: "taken.bin",
		Size:  50,
		From:  bytes.NewReader(testData(50)),
	})
	require.ErrorIs(t, err, amphora.ErrAliasExists)

	// the stored file and the container state are untouched
	require.Equal(t, before, a.Status())
	require.Equal(t, data, downloadBytes(t, a, "taken.bin"))
}

func TestUploadTableFull(t *testing.T) {
	a := newTestContainer(t, amphora.WithTableCapacity(2))

	uploadBytes(t, a, "one.bin", testData(10))
	uploadBytes(t, a, "two.bin", testData(10))

	before := a.Status()

	_, err := a.Upload(amphora.UploadPrm{
		Alias: "three.bin",
		Size:  10,
		From:  bytes.NewReader(testData(10)),
	})
	require.ErrorIs(t, err, amphora.ErrTableFull)
	require.Equal(t, before, a.Status())
}

func TestUploadNoSpace(t *testing.T) {
	a := newTestContainer(t)

	status := a.Status()
	usable := status.Header.UsableBlockSize()

	// leave a single free block
	uploadBytes(t, a, "bulk.bin", testData(int((status.Header.BlockCount-1)*usable)))

	before := a.Status()
	require.EqualValues(t, 1, before.FreeBlocks)

	_, err := a.Upload(amphora.UploadPrm{
		Alias: "excess.bin",
		Size:  usable + 1,
		From:  bytes.NewReader(testData(int(usable) + 1)),
	})
	require.ErrorIs(t, err, amphora.ErrNoSpace)
	require.Equal(t, before, a.Status())

	// the last block is still allocatable
	uploadBytes(t, a, "fit.bin", testData(int(usable)))
	require.EqualValues(t, 0, a.Status().FreeBlocks)
}
