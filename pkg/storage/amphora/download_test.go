package amphora_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/stretchr/testify/require"
)

func TestDownloadMissing(t *testing.T) {
	a := newTestContainer(t)

	var buf bytes.Buffer

	_, err := a.Download(amphora.DownloadPrm{
		Alias: "nope.bin",
		To:    &buf,
	})
	require.ErrorIs(t, err, amphora.ErrFileNotFound)
	require.Zero(t, buf.Len())

	uploadBytes(t, a, "here.bin", testData(10))
	_, err = a.Download(amphora.DownloadPrm{
		Alias: "here",
		To:    &buf,
	})
	require.ErrorIs(t, err, amphora.ErrFileNotFound)
}

func TestDownloadRoundTrip(t *testing.T) {
	a := newTestContainer(t)

	for _, sz := range []int{1, 100, 4088, 4089, 10000, 50000} {
		data := testData(sz)
		alias := fmt.Sprintf("size-%d.bin", sz)

		uploadBytes(t, a, alias, data)
		require.Equal(t, data, downloadBytes(t, a, alias))
	}
}

func TestDownloadCorruptChain(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "victim.bin", testData(10000))

	// the second block now points outside of the data region
	corruptPointer(t, a, 1, a.Status().Header.BlockCount)

	var buf bytes.Buffer

	_, err := a.Download(amphora.DownloadPrm{
		Alias: "victim.bin",
		To:    &buf,
	})
	require.ErrorIs(t, err, amphora.ErrCorruptChain)
}

func TestDownloadPrematureChainEnd(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "victim.bin", testData(10000))

	// cut the chain after the second block
	corruptPointer(t, a, 1, amphora.NoBlock)

	var buf bytes.Buffer

	_, err := a.Download(amphora.DownloadPrm{
		Alias: "victim.bin",
		To:    &buf,
	})
	require.ErrorIs(t, err, amphora.ErrCorruptChain)
}
