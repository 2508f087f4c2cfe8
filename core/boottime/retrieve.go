package boottime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/opensvc/motd/util/bootid"
	"github.com/opensvc/motd/util/monoclock"
	"github.com/opensvc/motd/util/nullable"
	"github.com/opensvc/motd/util/proc"
	"github.com/opensvc/motd/util/sdmanager"
	"github.com/opensvc/motd/util/systemd"
)

type (
	// TimestampSource reads unsigned properties of the init manager.
	TimestampSource interface {
		Uint64Property(ctx context.Context, name string) (uint64, error)
	}

	// TimestampSourceCloser is a TimestampSource holding a connection.
	TimestampSourceCloser interface {
		TimestampSource
		Close() error
	}

	// ProcessStartFallback returns the init process start time in
	// microseconds on the monotonic clock.
	ProcessStartFallback interface {
		StartTime() (uint64, error)
	}

	// ClockFallback returns the current monotonic time in microseconds.
	ClockFallback interface {
		Now() (uint64, error)
	}

	// DialFunc opens a connection to the init manager.
	DialFunc func(ctx context.Context) (TimestampSourceCloser, error)

	// T retrieves the boot durations of the running system.
	T struct {
		dial         DialFunc
		processStart ProcessStartFallback
		clock        ClockFallback
		log          zerolog.Logger
	}

	// Option configures a T.
	Option func(*T)
)

// The systemd manager properties holding the stage timestamps.
const (
	PropFirmware  = "FirmwareTimestampMonotonic"
	PropLoader    = "LoaderTimestampMonotonic"
	PropInitRD    = "InitRDTimestampMonotonic"
	PropUserspace = "UserspaceTimestampMonotonic"
	PropFinish    = "FinishTimestampMonotonic"
)

var (
	// ErrRetrieve wraps the errors making the whole boot time unavailable.
	ErrRetrieve = errors.New("could not retrieve boot time")

	// ErrNoSystemd is returned when the init process is not systemd.
	ErrNoSystemd = errors.New("systemd is not the init manager")
)

// WithDial sets the function opening the init manager connection.
func WithDial(f DialFunc) Option {
	return func(t *T) { t.dial = f }
}

// WithProcessStart sets the fallback used when the userspace timestamp is
// not published.
func WithProcessStart(f ProcessStartFallback) Option {
	return func(t *T) { t.processStart = f }
}

// WithClock sets the fallback used when the finish timestamp is not
// published.
func WithClock(f ClockFallback) Option {
	return func(t *T) { t.clock = f }
}

// WithLogger sets the logger of the retriever.
func WithLogger(l zerolog.Logger) Option {
	return func(t *T) { t.log = l }
}

// SystemDial returns a DialFunc connecting to the systemd manager on the
// system bus, each property read bounded by timeout.
func SystemDial(timeout time.Duration) DialFunc {
	return func(ctx context.Context) (TimestampSourceCloser, error) {
		if !systemd.HasSystemd() {
			return nil, ErrNoSystemd
		}
		return sdmanager.New(ctx, timeout)
	}
}

// New returns a retriever reading the running system. The defaults are the
// systemd manager on the system bus, pid 1 of /proc and CLOCK_MONOTONIC.
func New(opts ...Option) *T {
	t := &T{
		dial:         SystemDial(sdmanager.DefaultTimeout),
		processStart: proc.New(1),
		clock:        monoclock.New(),
		log:          log.Logger.With().Str("pkg", "boottime").Logger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get opens the init manager connection, reads the stage timestamps,
// applies the unfinished boot fallbacks and derives the durations.
func (t *T) Get(ctx context.Context) (Durations, error) {
	src, err := t.dial(ctx)
	if err != nil {
		return Durations{}, fmt.Errorf("%w: %w", ErrRetrieve, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			t.log.Debug().Err(err).Msg("close init manager connection")
		}
	}()
	raw := ReadTimestamps(ctx, src, t.log)
	raw, unfinished, err := t.Resolve(raw)
	if err != nil {
		return Durations{}, fmt.Errorf("%w: %w", ErrRetrieve, err)
	}
	d := Derive(raw)
	d.Unfinished = unfinished
	d.BootID = bootid.Get()
	return d, nil
}

// ReadTimestamps reads the five stage timestamps concurrently. A failed
// read, or a zero value meaning "not yet published", leaves the field
// invalid.
func ReadTimestamps(ctx context.Context, src TimestampSource, l zerolog.Logger) RawTimestamps {
	var raw RawTimestamps
	fields := map[string]*nullable.Uint64{
		PropFirmware:  &raw.Firmware,
		PropLoader:    &raw.Loader,
		PropInitRD:    &raw.InitRD,
		PropUserspace: &raw.Userspace,
		PropFinish:    &raw.Finish,
	}
	var g errgroup.Group
	for name, field := range fields {
		g.Go(func() error {
			v, err := src.Uint64Property(ctx, name)
			if err != nil {
				l.Debug().Err(err).Str("property", name).Msg("read failed, stage timestamp unknown")
				return nil
			}
			*field = nullable.NonZeroUint64(v)
			return nil
		})
	}
	_ = g.Wait()
	l.Debug().
		Str("firmware", raw.Firmware.String()).
		Str("loader", raw.Loader.String()).
		Str("initrd", raw.InitRD.String()).
		Str("userspace", raw.Userspace.String()).
		Str("finish", raw.Finish.String()).
		Msg("stage timestamps")
	return raw
}

// Resolve substitutes the fallback readings for the timestamps an
// unfinished boot has not published yet. It reports whether a fallback was
// used. Only a monotonic clock failure is an error.
func (t *T) Resolve(raw RawTimestamps) (RawTimestamps, bool, error) {
	var unfinished bool
	if !raw.Userspace.Valid && t.processStart != nil {
		if v, err := t.processStart.StartTime(); err != nil {
			t.log.Debug().Err(err).Msg("init process start time fallback")
		} else {
			raw.Userspace = nullable.NewUint64(v)
			unfinished = true
		}
	}
	if !raw.Finish.Valid {
		if t.clock == nil {
			return raw, unfinished, monoclock.ErrNotSupported
		}
		v, err := t.clock.Now()
		if err != nil {
			return raw, unfinished, fmt.Errorf("monotonic clock: %w", err)
		}
		raw.Finish = nullable.NewUint64(v)
		unfinished = true
	}
	return raw, unfinished, nil
}
