package motdcmd

import (
	"fmt"
	"time"

	"github.com/opensvc/motd/core/output"
	"github.com/opensvc/motd/core/pacman"
	"github.com/opensvc/motd/util/duration"
)

type (
	// CmdUpdate reports the time elapsed since the last package install.
	CmdUpdate struct {
		OptsGlobal

		// DBPath is the pacman database path.
		DBPath string
	}

	updateGetter interface {
		SinceLastUpdate() (time.Duration, error)
	}

	updateReport struct {
		Since *duration.Duration `json:"since" yaml:"since"`
	}
)

var (
	newUpdateGetter = func(t CmdUpdate) updateGetter {
		return pacman.New(t.DBPath)
	}
)

// Get returns the time elapsed since the last package install.
func (t CmdUpdate) Get() (time.Duration, error) {
	return newUpdateGetter(t).SinceLastUpdate()
}

// Line returns the human "Last system update: ..." line.
func (t CmdUpdate) Line(d time.Duration) string {
	return fmt.Sprintf("Last system update: %s ago.", t.palette().Primary(duration.Human(d)))
}

// Run prints the time elapsed since the last package install.
func (t CmdUpdate) Run() error {
	d, err := t.Get()
	if err != nil {
		return fmt.Errorf("checking system updates: %w", err)
	}
	renderer := output.Renderer{
		Format:        t.Output,
		Color:         t.Color,
		Data:          updateReport{Since: duration.New(d)},
		Colorize:      t.palette(),
		HumanRenderer: func() string { return t.Line(d) + "\n" },
	}
	return renderer.Fprint(t.stdout())
}
