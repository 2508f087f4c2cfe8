package monoclock_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensvc/motd/util/monoclock"
)

func TestNow(t *testing.T) {
	clock := monoclock.New()
	first, err := clock.Now()
	switch runtime.GOOS {
	case "linux":
		require.NoError(t, err)
		require.NotZero(t, first, "unexpected zero monotonic time")
		second, err := clock.Now()
		require.NoError(t, err)
		require.GreaterOrEqual(t, second, first, "monotonic clock went backward")
	default:
		require.ErrorIs(t, err, monoclock.ErrNotSupported)
	}
}
