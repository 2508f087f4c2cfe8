//go:build !linux

package systemd

// HasSystemd return true if systemd is detected on current os
func HasSystemd() bool {
	return false
}
