package proc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setClockTicks(t *testing.T, tps int64, err error) {
	t.Helper()
	saved := clockTicks
	clockTicks = func() (int64, error) { return tps, err }
	t.Cleanup(func() { clockTicks = saved })
}

func TestTicksToMicroseconds(t *testing.T) {
	tests := []struct {
		ticks, tps, expected uint64
	}{
		{ticks: 0, tps: 100, expected: 0},
		{ticks: 1234, tps: 100, expected: 12_340_000},
		{ticks: 1, tps: 3, expected: 333_333},
		{ticks: 7, tps: 1000, expected: 7_000},
		{ticks: 123_456_789, tps: 250, expected: 493_827_156_000},
		{ticks: 5, tps: 0, expected: 0},
	}
	for _, test := range tests {
		t.Logf("%d ticks at %d/s", test.ticks, test.tps)
		assert.Equal(t, test.expected, TicksToMicroseconds(test.ticks, test.tps))
	}
}

func TestStartTime(t *testing.T) {
	t.Run("reads pid 1 start ticks", func(t *testing.T) {
		ticks, err := NewWithMount("testdata/proc", 1).StartTicks()
		require.NoError(t, err)
		assert.Equal(t, uint64(1234), ticks)
	})

	t.Run("converts with the system tick rate", func(t *testing.T) {
		setClockTicks(t, 100, nil)
		us, err := NewWithMount("testdata/proc", 1).StartTime()
		require.NoError(t, err)
		assert.Equal(t, uint64(12_340_000), us)
	})

	t.Run("zero tick rate disables the conversion", func(t *testing.T) {
		setClockTicks(t, 0, nil)
		_, err := NewWithMount("testdata/proc", 1).StartTime()
		require.ErrorIs(t, err, ErrNoClockTick)
	})

	t.Run("tick rate query failure", func(t *testing.T) {
		setClockTicks(t, 0, errors.New("sysconf failed"))
		_, err := NewWithMount("testdata/proc", 1).StartTime()
		require.ErrorIs(t, err, ErrNoClockTick)
	})

	t.Run("missing process", func(t *testing.T) {
		setClockTicks(t, 100, nil)
		_, err := NewWithMount("testdata/proc", 2).StartTime()
		require.Error(t, err)
	})

	t.Run("missing mount", func(t *testing.T) {
		_, err := NewWithMount("testdata/nonexistent", 1).StartTicks()
		require.Error(t, err)
	})
}
