//go:build !linux

package monoclock

func now() (uint64, error) {
	return 0, ErrNotSupported
}
