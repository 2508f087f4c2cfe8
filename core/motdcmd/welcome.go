package motdcmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type (
	// CmdWelcome prints the full login greeting: the welcome sentence, the
	// last system update and the boot time. A failing feature is reported
	// on stderr and does not prevent the others.
	CmdWelcome struct {
		OptsGlobal
		Greet  CmdGreet
		Update CmdUpdate
		Boot   CmdBoot
	}
)

// Run prints the login greeting. It only returns an error if the standard
// output is unwritable.
func (t CmdWelcome) Run(ctx context.Context) error {
	stdout, stderr := t.stdout(), t.stderr()

	if _, err := fmt.Fprintf(stdout, "%s\n\n", t.Greet.Line()); err != nil {
		return err
	}

	if d, err := t.Update.Get(); err != nil {
		log.Debug().Err(err).Msg("last system update")
		fmt.Fprintf(stderr, "checking system updates: %s\n", err)
	} else if _, err := fmt.Fprintln(stdout, t.Update.Line(d)); err != nil {
		return err
	}

	if d, err := t.Boot.Get(ctx); err != nil {
		log.Debug().Err(err).Msg("boot time")
		fmt.Fprintf(stderr, "retrieving boot time: %s\n", err)
	} else if _, err := fmt.Fprintln(stdout, t.Boot.Line(d)); err != nil {
		return err
	}
	return nil
}
