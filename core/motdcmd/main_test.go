package motdcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensvc/motd/core/boottime"
	"github.com/opensvc/motd/core/greeting"
	"github.com/opensvc/motd/util/nullable"
)

type (
	fakeBoot struct {
		d   boottime.Durations
		err error
	}

	fakeUpdate struct {
		d   time.Duration
		err error
	}
)

func (f fakeBoot) Get(context.Context) (boottime.Durations, error) { return f.d, f.err }

func (f fakeUpdate) SinceLastUpdate() (time.Duration, error) { return f.d, f.err }

func setup(t *testing.T, boot fakeBoot, update fakeUpdate) {
	t.Helper()
	savedBoot, savedUpdate, savedNoColor := newBootGetter, newUpdateGetter, color.NoColor
	savedBootTime, savedUptime := hostBootTime, hostUptime
	t.Cleanup(func() {
		newBootGetter, newUpdateGetter, color.NoColor = savedBoot, savedUpdate, savedNoColor
		hostBootTime, hostUptime = savedBootTime, savedUptime
	})
	newBootGetter = func(CmdBoot) bootGetter { return boot }
	newUpdateGetter = func(CmdUpdate) updateGetter { return update }
	color.NoColor = true
}

func sampleDurations() boottime.Durations {
	ms := func(n int64) nullable.Duration { return nullable.NewDuration(time.Duration(n) * time.Millisecond) }
	return boottime.Durations{
		Firmware:  ms(50),
		Loader:    ms(150),
		Kernel:    ms(300),
		Userspace: ms(600),
		Total:     ms(1100),
	}
}

func newOpts(stdout, stderr *bytes.Buffer) OptsGlobal {
	return OptsGlobal{Color: "no", Output: "human", Stdout: stdout, Stderr: stderr}
}

func TestWelcome(t *testing.T) {
	t.Run("all features", func(t *testing.T) {
		setup(t, fakeBoot{d: sampleDurations()}, fakeUpdate{d: 50 * time.Hour})
		var stdout, stderr bytes.Buffer
		opts := newOpts(&stdout, &stderr)
		cmd := CmdWelcome{
			OptsGlobal: opts,
			Greet:      CmdGreet{OptsGlobal: opts, Sentences: []string{"The loop continues."}},
			Update:     CmdUpdate{OptsGlobal: opts},
			Boot:       CmdBoot{OptsGlobal: opts},
		}
		require.NoError(t, cmd.Run(context.Background()))
		assert.Equal(t, "Welcome back. The loop continues.\n\n"+
			"Last system update: 2d ago.\n"+
			"boot time: 50ms (firmware) + 150ms (loader) + 300ms (kernel) + ? (initrd) + 600ms (userspace) = 1100ms.\n",
			stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("boot time connection failure", func(t *testing.T) {
		cause := fmt.Errorf("%w: %w", boottime.ErrRetrieve, errors.New("connect system bus: permission denied"))
		setup(t, fakeBoot{err: cause}, fakeUpdate{d: 3 * time.Minute})
		var stdout, stderr bytes.Buffer
		opts := newOpts(&stdout, &stderr)
		cmd := CmdWelcome{
			OptsGlobal: opts,
			Greet:      CmdGreet{OptsGlobal: opts},
			Update:     CmdUpdate{OptsGlobal: opts},
			Boot:       CmdBoot{OptsGlobal: opts},
		}
		require.NoError(t, cmd.Run(context.Background()))
		assert.Equal(t, 1, strings.Count(stderr.String(), "\n"), "exactly one error line expected")
		assert.Equal(t,
			"retrieving boot time: could not retrieve boot time: connect system bus: permission denied\n",
			stderr.String())
		assert.Contains(t, stdout.String(), "Last system update: 3m ago.\n")
		assert.NotContains(t, stdout.String(), "boot time")
	})

	t.Run("update failure", func(t *testing.T) {
		setup(t, fakeBoot{d: boottime.Durations{}}, fakeUpdate{err: errors.New("no installed packages found")})
		var stdout, stderr bytes.Buffer
		opts := newOpts(&stdout, &stderr)
		cmd := CmdWelcome{
			OptsGlobal: opts,
			Greet:      CmdGreet{OptsGlobal: opts},
			Update:     CmdUpdate{OptsGlobal: opts},
			Boot:       CmdBoot{OptsGlobal: opts},
		}
		require.NoError(t, cmd.Run(context.Background()))
		assert.Equal(t, "checking system updates: no installed packages found\n", stderr.String())
		assert.Contains(t, stdout.String(),
			"boot time: ? (firmware) + ? (loader) + ? (kernel) + ? (initrd) + ? (userspace) = ?.\n")
	})
}

func TestBootRun(t *testing.T) {
	t.Run("unfinished boot is flagged", func(t *testing.T) {
		d := sampleDurations()
		d.Unfinished = true
		setup(t, fakeBoot{d: d}, fakeUpdate{})
		var stdout, stderr bytes.Buffer
		require.NoError(t, CmdBoot{OptsGlobal: newOpts(&stdout, &stderr)}.Run(context.Background()))
		assert.True(t, strings.HasSuffix(stdout.String(), "= 1100ms. (boot in progress)\n"), stdout.String())
	})

	t.Run("json", func(t *testing.T) {
		setup(t, fakeBoot{d: sampleDurations()}, fakeUpdate{})
		var stdout, stderr bytes.Buffer
		opts := newOpts(&stdout, &stderr)
		opts.Output = "json"
		require.NoError(t, CmdBoot{OptsGlobal: opts}.Run(context.Background()))
		assert.JSONEq(t, `{
			"firmware": 50,
			"loader": 150,
			"kernel": 300,
			"initrd": null,
			"userspace": 600,
			"total": 1100,
			"unfinished": false
		}`, stdout.String())
	})

	t.Run("verbose", func(t *testing.T) {
		setup(t, fakeBoot{d: sampleDurations()}, fakeUpdate{})
		hostBootTime = func(context.Context) (uint64, error) { return 1760861234, nil }
		hostUptime = func(context.Context) (uint64, error) { return 7200, nil }
		var stdout, stderr bytes.Buffer
		require.NoError(t, CmdBoot{OptsGlobal: newOpts(&stdout, &stderr), Verbose: true}.Run(context.Background()))
		bootedAt := time.Unix(1760861234, 0).Format(time.RFC3339)
		assert.Contains(t, stdout.String(), "booted at "+bootedAt+" (up 2h)\n")
	})

	t.Run("error", func(t *testing.T) {
		setup(t, fakeBoot{err: boottime.ErrRetrieve}, fakeUpdate{})
		var stdout, stderr bytes.Buffer
		err := CmdBoot{OptsGlobal: newOpts(&stdout, &stderr)}.Run(context.Background())
		require.ErrorIs(t, err, boottime.ErrRetrieve)
		assert.Empty(t, stdout.String())
	})
}

func TestUpdateRun(t *testing.T) {
	setup(t, fakeBoot{}, fakeUpdate{d: 26 * time.Hour})
	var stdout, stderr bytes.Buffer
	require.NoError(t, CmdUpdate{OptsGlobal: newOpts(&stdout, &stderr)}.Run())
	assert.Equal(t, "Last system update: 1d ago.\n", stdout.String())

	setup(t, fakeBoot{}, fakeUpdate{err: errors.New("no db")})
	err := CmdUpdate{OptsGlobal: newOpts(&stdout, &stderr)}.Run()
	require.EqualError(t, err, "checking system updates: no db")
}

func TestGreetRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, CmdGreet{OptsGlobal: newOpts(&stdout, &stderr)}.Run())
	line := strings.TrimSuffix(stdout.String(), "\n")
	require.True(t, strings.HasPrefix(line, "Welcome back. "))
	assert.Contains(t, greeting.Sentences, strings.TrimPrefix(line, "Welcome back. "))
}
