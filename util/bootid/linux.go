//go:build linux

package bootid

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/procfs"
)

var (
	bootIDFile = "/proc/sys/kernel/random/boot_id"
	procMount  = procfs.DefaultMountPoint
)

func scan() (string, error) {
	b, err := os.ReadFile(bootIDFile)
	if err == nil {
		s := string(b)
		s = strings.TrimRight(s, "\n\r")
		return s, nil
	}
	fs, err := procfs.NewFS(procMount)
	if err != nil {
		return "", err
	}
	stat, err := fs.Stat()
	if err != nil || stat.BootTime == 0 {
		return "", fmt.Errorf("unable to format a boot id from %s nor %s/stat", bootIDFile, procMount)
	}
	return strconv.FormatUint(stat.BootTime, 10), nil
}
