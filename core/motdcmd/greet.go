package motdcmd

import (
	"fmt"

	"github.com/opensvc/motd/core/greeting"
)

type (
	// CmdGreet prints a random welcome sentence.
	CmdGreet struct {
		OptsGlobal

		// Sentences overrides the default sentence list.
		Sentences []string
	}
)

// Line returns the human "Welcome back. ..." line.
func (t CmdGreet) Line() string {
	return "Welcome back. " + greeting.Welcome(t.Sentences)
}

// Run prints the welcome line.
func (t CmdGreet) Run() error {
	_, err := fmt.Fprintln(t.stdout(), t.Line())
	return err
}
