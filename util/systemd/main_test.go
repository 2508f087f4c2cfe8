//go:build linux

package systemd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, comm string, running bool) {
	t.Helper()
	savedComm, savedRunning := procOneComm, isRunningSystemd
	t.Cleanup(func() {
		procOneComm, isRunningSystemd = savedComm, savedRunning
	})
	procOneComm = filepath.Join(t.TempDir(), "comm")
	if comm != "" {
		require.NoError(t, os.WriteFile(procOneComm, []byte(comm), 0644))
	}
	isRunningSystemd = func() bool { return running }
}

func TestHasSystemd(t *testing.T) {
	t.Run("returns true when pid 1 is systemd", func(t *testing.T) {
		setup(t, "systemd\n", false)
		require.True(t, HasSystemd())
	})
	t.Run("returns false when pid 1 is another init", func(t *testing.T) {
		setup(t, "init\n", false)
		require.False(t, HasSystemd())
	})
	t.Run("falls back to the runtime directory check", func(t *testing.T) {
		setup(t, "", true)
		require.True(t, HasSystemd())
	})
	t.Run("returns false when nothing is detected", func(t *testing.T) {
		setup(t, "", false)
		require.False(t, HasSystemd())
	})
}
