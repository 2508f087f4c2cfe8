// Package bootid identifies the current boot of the host.
package bootid

import "sync"

var (
	mu    sync.RWMutex
	value string
	once  sync.Once
)

// Get returns the cached boot id, scanning it on first use. It returns an
// empty string if the boot id can not be determined.
func Get() string {
	once.Do(func() {
		_, _ = Scan()
	})
	mu.RLock()
	defer mu.RUnlock()
	return value
}

// Scan reads the boot id from the system and caches it.
func Scan() (string, error) {
	s, err := scan()
	mu.Lock()
	defer mu.Unlock()
	value = s
	return s, err
}
