// Package proc reads process accounting data from a procfs mount.
package proc

import (
	"errors"
	"fmt"

	"github.com/prometheus/procfs"
	"github.com/tklauser/go-sysconf"
)

type (
	T struct {
		pid   int
		mount string
	}
)

var (
	// ErrNoClockTick is returned when the clock ticks per second can not be
	// determined, making tick counts unconvertible.
	ErrNoClockTick = errors.New("clock ticks per second unavailable")

	clockTicks = func() (int64, error) {
		return sysconf.Sysconf(sysconf.SC_CLK_TCK)
	}
)

// New returns the process pid as seen through the default /proc mount.
func New(pid int) T {
	return NewWithMount(procfs.DefaultMountPoint, pid)
}

// NewWithMount returns the process pid as seen through the procfs mounted at
// mount.
func NewWithMount(mount string, pid int) T {
	return T{pid: pid, mount: mount}
}

// StartTicks returns the process start time in clock ticks since boot, as
// published in the 22nd field of /proc/<pid>/stat.
func (t T) StartTicks() (uint64, error) {
	fs, err := procfs.NewFS(t.mount)
	if err != nil {
		return 0, err
	}
	p, err := fs.Proc(t.pid)
	if err != nil {
		return 0, err
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Starttime, nil
}

// StartTime returns the process start time in microseconds since boot, on
// the same clock as CLOCK_MONOTONIC.
func (t T) StartTime() (uint64, error) {
	tps, err := clockTicks()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNoClockTick, err)
	}
	if tps <= 0 {
		return 0, ErrNoClockTick
	}
	ticks, err := t.StartTicks()
	if err != nil {
		return 0, fmt.Errorf("pid %d start time: %w", t.pid, err)
	}
	return TicksToMicroseconds(ticks, uint64(tps)), nil
}

// TicksToMicroseconds converts a clock tick count to microseconds without
// overflowing the intermediate product for large tick counts.
func TicksToMicroseconds(ticks, tps uint64) uint64 {
	if tps == 0 {
		return 0
	}
	seconds := ticks / tps
	micros := ((ticks % tps) * 1_000_000) / tps
	return seconds*1_000_000 + micros
}
