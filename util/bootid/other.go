//go:build !linux

package bootid

import "errors"

func scan() (string, error) {
	return "", errors.New("boot id is not supported on this platform")
}
