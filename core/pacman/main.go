// Package pacman reads the pacman local package database.
package pacman

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	// T is a pacman database rooted at a dbpath.
	T struct {
		dbPath string
		now    func() time.Time
		log    zerolog.Logger
	}
)

const (
	// DefaultDBPath is the pacman database path of a standard install.
	DefaultDBPath = "/var/lib/pacman/"

	installDateKey = "%INSTALLDATE%"
)

var (
	// ErrNoPackage is returned when the local database lists no installed
	// package with an install date.
	ErrNoPackage = errors.New("no installed packages found")
)

// New returns the pacman database at dbPath. An empty dbPath selects
// DefaultDBPath.
func New(dbPath string) *T {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	return &T{
		dbPath: dbPath,
		now:    time.Now,
		log:    log.Logger.With().Str("pkg", "pacman").Logger(),
	}
}

// LocalDir returns the path of the local (installed packages) database.
func (t *T) LocalDir() string {
	return filepath.Join(t.dbPath, "local")
}

// LastInstall returns the most recent install date of the installed packages.
func (t *T) LastInstall() (time.Time, error) {
	matches, err := filepath.Glob(filepath.Join(t.LocalDir(), "*", "desc"))
	if err != nil {
		return time.Time{}, err
	}
	if len(matches) == 0 {
		if _, err := os.Stat(t.LocalDir()); err != nil {
			return time.Time{}, fmt.Errorf("local database: %w", err)
		}
	}
	var latest int64
	for _, p := range matches {
		ts, err := installDate(p)
		if err != nil {
			t.log.Debug().Err(err).Str("file", p).Msg("skip package")
			continue
		}
		if ts > latest {
			latest = ts
		}
	}
	if latest == 0 {
		return time.Time{}, ErrNoPackage
	}
	return time.Unix(latest, 0), nil
}

// SinceLastUpdate returns the time elapsed since the most recent package
// install.
func (t *T) SinceLastUpdate() (time.Duration, error) {
	latest, err := t.LastInstall()
	if err != nil {
		return 0, err
	}
	now := t.now()
	if latest.After(now) {
		return 0, fmt.Errorf("last install date %s is in the future", latest.Format(time.RFC3339))
	}
	return now.Sub(latest), nil
}

// installDate returns the %INSTALLDATE% value of a package desc file.
func installDate(p string) (int64, error) {
	f, err := os.Open(p)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		if strings.TrimSpace(s.Text()) != installDateKey {
			continue
		}
		if !s.Scan() {
			break
		}
		return strconv.ParseInt(strings.TrimSpace(s.Text()), 10, 64)
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("%s: missing %s", p, installDateKey)
}
