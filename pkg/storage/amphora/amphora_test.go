package amphora_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testData(sz int) []byte {
	data := make([]byte, sz)
	rand.Read(data)

	return data
}

// openContainer opens and initializes a container at the given path.
// Closing it is up to the caller.
func openContainer(t *testing.T, path string, opts ...amphora.Option) *amphora.Amphora {
	a := amphora.New(append([]amphora.Option{
		amphora.WithPath(path),
		amphora.WithLogger(zaptest.NewLogger(t)),
	}, opts...)...)

	require.NoError(t, a.Open())
	require.NoError(t, a.Init())

	return a
}

func newTestContainer(t *testing.T, opts ...amphora.Option) *amphora.Amphora {
	a := openContainer(t, filepath.Join(t.TempDir(), "amphora.dat"), opts...)

	t.Cleanup(func() {
		require.NoError(t, a.Close())
	})

	return a
}

func uploadBytes(t *testing.T, a *amphora.Amphora, alias string, data []byte) amphora.UploadRes {
	res, err := a.Upload(amphora.UploadPrm{
		Alias: alias,
		Size:  uint64(len(data)),
		From:  bytes.NewReader(data),
	})
	require.NoError(t, err)

	return res
}

func downloadBytes(t *testing.T, a *amphora.Amphora, alias string) []byte {
	var buf bytes.Buffer

	res, err := a.Download(amphora.DownloadPrm{
		Alias: alias,
		To:    &buf,
	})
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), res.Size)

	return buf.Bytes()
}

// corruptPointer overwrites the chain pointer of the given data block
// directly in the backing file.
func corruptPointer(t *testing.T, a *amphora.Amphora, block, value uint64) {
	st := a.Status()

	f, err := os.OpenFile(st.Path, os.O_WRONLY, 0)
	require.NoError(t, err)

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, value)

	off := int64(st.Header.DataOffset + (block+1)*st.Header.BlockSize - 8)

	_, err = f.WriteAt(buf, off)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
