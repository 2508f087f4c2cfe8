//go:build linux

package systemd

import (
	"os"

	sdutil "github.com/coreos/go-systemd/v22/util"
)

var (
	procOneComm = "/proc/1/comm"

	isRunningSystemd = sdutil.IsRunningSystemd
)

// HasSystemd return true if systemd is detected on current os
func HasSystemd() bool {
	var (
		b   []byte
		err error
	)
	if b, err = os.ReadFile(procOneComm); err != nil {
		return isRunningSystemd()
	}
	return string(b) == "systemd\n" || isRunningSystemd()
}
