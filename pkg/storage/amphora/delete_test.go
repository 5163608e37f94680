package amphora_test

import (
	"testing"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/stretchr/testify/require"
)

func TestDeleteMissing(t *testing.T) {
	a := newTestContainer(t)

	_, err := a.Delete(amphora.DeletePrm{Alias: "nope.bin"})
	require.ErrorIs(t, err, amphora.ErrFileNotFound)

	uploadBytes(t, a, "once.bin", testData(10))

	_, err = a.Delete(amphora.DeletePrm{Alias: "once.bin"})
	require.NoError(t, err)

	// repeated deletion does not find the alias anymore
	_, err = a.Delete(amphora.DeletePrm{Alias: "once.bin"})
	require.ErrorIs(t, err, amphora.ErrFileNotFound)
}

func TestDeleteFreesBlocks(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "doomed.bin", testData(10000))

	before := a.Status()

	res, err := a.Delete(amphora.DeletePrm{Alias: "doomed.bin"})
	require.NoError(t, err)
	require.EqualValues(t, 3, res.FreedBlocks)

	status := a.Status()
	require.EqualValues(t, 0, status.Files)
	require.EqualValues(t, 0, status.StoredBytes)
	require.Equal(t, before.FreeBlocks+3, status.FreeBlocks)

	// the alias is free to take again
	uploadBytes(t, a, "doomed.bin", testData(10))
}

func TestDeleteBlockReuse(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "first.bin", testData(10000)) // blocks 0-2
	uploadBytes(t, a, "second.bin", testData(100))  // block 3

	_, err := a.Delete(amphora.DeletePrm{Alias: "first.bin"})
	require.NoError(t, err)

	// the freed blocks are the lowest ones and get taken first
	res := uploadBytes(t, a, "third.bin", testData(5000))
	require.EqualValues(t, 0, res.FirstBlock)

	insp, err := a.Inspect(amphora.InspectPrm{Alias: "third.bin"})
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, insp.Chain)
}

func TestDeleteCorruptChain(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "victim.bin", testData(10000)) // blocks 0-2

	before := a.Status()

	// the second block now points outside of the data region; the
	// walk stops there and only the reachable blocks are freed
	corruptPointer(t, a, 1, before.Header.BlockCount+7)

	res, err := a.Delete(amphora.DeletePrm{Alias: "victim.bin"})
	require.NoError(t, err)
	require.EqualValues(t, 2, res.FreedBlocks)

	status := a.Status()
	require.EqualValues(t, 0, status.Files)
	require.Equal(t, before.FreeBlocks+2, status.FreeBlocks)

	// block 2 stays leaked, the next chain goes around it
	resUp := uploadBytes(t, a, "around.bin", testData(10000))
	require.EqualValues(t, 3, resUp.Blocks)

	insp, err := a.Inspect(amphora.InspectPrm{Alias: "around.bin"})
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 3}, insp.Chain)
}
