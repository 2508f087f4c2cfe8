package motdcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/opensvc/motd/core/boottime"
	"github.com/opensvc/motd/core/output"
	"github.com/opensvc/motd/util/duration"
	"github.com/opensvc/motd/util/proc"
)

type (
	// CmdBoot reports the boot duration of the host, stage by stage.
	CmdBoot struct {
		OptsGlobal

		// Timeout bounds each init manager property read.
		Timeout time.Duration

		// ProcFS is the procfs mount point used by the unfinished boot
		// fallback.
		ProcFS string

		// Verbose adds the wall clock boot time and the uptime.
		Verbose bool
	}

	bootGetter interface {
		Get(ctx context.Context) (boottime.Durations, error)
	}

	bootReport struct {
		boottime.Durations `yaml:",inline"`
		BootedAt           *time.Time         `json:"booted_at,omitempty" yaml:"booted_at,omitempty"`
		Uptime             *duration.Duration `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	}
)

var (
	newBootGetter = func(t CmdBoot) bootGetter {
		return boottime.New(
			boottime.WithDial(boottime.SystemDial(t.Timeout)),
			boottime.WithProcessStart(proc.NewWithMount(t.ProcFS, 1)),
		)
	}

	hostBootTime = host.BootTimeWithContext
	hostUptime   = host.UptimeWithContext
)

// Get returns the boot durations of the host.
func (t CmdBoot) Get(ctx context.Context) (boottime.Durations, error) {
	return newBootGetter(t).Get(ctx)
}

// Line returns the human "boot time: ..." line of d.
func (t CmdBoot) Line(d boottime.Durations) string {
	s := "boot time: " + d.Render(t.palette()) + "."
	if d.Unfinished {
		s += " " + t.palette().Warning("(boot in progress)")
	}
	return s
}

func (t CmdBoot) report(ctx context.Context, d boottime.Durations) bootReport {
	r := bootReport{Durations: d}
	if !t.Verbose {
		return r
	}
	if secs, err := hostBootTime(ctx); err != nil {
		log.Debug().Err(err).Msg("host boot time")
	} else {
		bootedAt := time.Unix(int64(secs), 0)
		r.BootedAt = &bootedAt
	}
	if secs, err := hostUptime(ctx); err != nil {
		log.Debug().Err(err).Msg("host uptime")
	} else {
		r.Uptime = duration.New(time.Duration(secs) * time.Second)
	}
	return r
}

func (t CmdBoot) human(r bootReport) string {
	s := t.Line(r.Durations) + "\n"
	if r.BootedAt != nil {
		s += "booted at " + r.BootedAt.Format(time.RFC3339)
		if r.Uptime != nil {
			s += " (up " + r.Uptime.Human() + ")"
		}
		s += "\n"
	}
	return s
}

// Run prints the boot durations in the requested output format.
func (t CmdBoot) Run(ctx context.Context) error {
	d, err := t.Get(ctx)
	if err != nil {
		return err
	}
	r := t.report(ctx, d)
	renderer := output.Renderer{
		Format:        t.Output,
		Color:         t.Color,
		Data:          r,
		Colorize:      t.palette(),
		HumanRenderer: func() string { return t.human(r) },
	}
	if err := renderer.Fprint(t.stdout()); err != nil {
		return fmt.Errorf("render boot time: %w", err)
	}
	return nil
}
