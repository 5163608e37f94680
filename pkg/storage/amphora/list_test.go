package amphora_test

import (
	"testing"

	"github.com/amphora-fs/amphora/pkg/storage/amphora"
	"github.com/stretchr/testify/require"
)

func TestListEmpty(t *testing.T) {
	a := newTestContainer(t)

	require.Empty(t, a.List())
}

func TestListSlotOrder(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "alpha.bin", testData(10))
	uploadBytes(t, a, "beta.bin", testData(20))
	uploadBytes(t, a, "gamma.bin", testData(30))

	require.Equal(t, []amphora.Entry{
		{Alias: "alpha.bin", Size: 10},
		{Alias: "beta.bin", Size: 20},
		{Alias: "gamma.bin", Size: 30},
	}, a.List())

	// a deleted slot is reused by the next upload, so the newcomer
	// shows up in the middle
	_, err := a.Delete(amphora.DeletePrm{Alias: "beta.bin"})
	require.NoError(t, err)

	uploadBytes(t, a, "delta.bin", testData(40))

	require.Equal(t, []amphora.Entry{
		{Alias: "alpha.bin", Size: 10},
		{Alias: "delta.bin", Size: 40},
		{Alias: "gamma.bin", Size: 30},
	}, a.List())
}

func TestListReadOnly(t *testing.T) {
	a := newTestContainer(t)

	uploadBytes(t, a, "stable.bin", testData(10))

	before := a.Status()

	require.Equal(t, a.List(), a.List())
	require.Equal(t, before, a.Status())
}
