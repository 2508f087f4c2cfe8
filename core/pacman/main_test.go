package pacman

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastInstall(t *testing.T) {
	t.Run("latest install date among packages", func(t *testing.T) {
		ts, err := New("testdata/db").LastInstall()
		require.NoError(t, err)
		assert.Equal(t, int64(1729000000), ts.Unix())
	})

	t.Run("no package", func(t *testing.T) {
		_, err := New("testdata/empty").LastInstall()
		require.ErrorIs(t, err, ErrNoPackage)
	})

	t.Run("missing database", func(t *testing.T) {
		_, err := New("testdata/nonexistent").LastInstall()
		require.Error(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestSinceLastUpdate(t *testing.T) {
	db := New("testdata/db")

	db.now = func() time.Time { return time.Unix(1729000000, 0).Add(50 * time.Hour) }
	d, err := db.SinceLastUpdate()
	require.NoError(t, err)
	assert.Equal(t, 50*time.Hour, d)

	db.now = func() time.Time { return time.Unix(1728000000, 0) }
	_, err = db.SinceLastUpdate()
	require.Error(t, err, "an install date in the future should be an error")
}

func TestInstallDate(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "desc")

	require.NoError(t, os.WriteFile(p, []byte("%NAME%\nfoo\n\n%INSTALLDATE%\nnotanumber\n"), 0644))
	_, err := installDate(p)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(p, []byte("%NAME%\nfoo\n\n%INSTALLDATE%\n"), 0644))
	_, err = installDate(p)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(p, []byte("%INSTALLDATE%\n 42 \n"), 0644))
	ts, err := installDate(p)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ts)
}

func TestNewDefault(t *testing.T) {
	assert.Equal(t, filepath.Join(DefaultDBPath, "local"), New("").LocalDir())
}
