// Package duration formats time.Duration for humans and structured output.
package duration

import (
	"encoding/json"
	"strconv"
	"time"
)

type (
	// Duration relays time.Duration with json marshaling as a Go duration
	// string ("1h2m3s").
	Duration struct {
		time.Duration
	}
)

func New(d time.Duration) *Duration {
	return &Duration{Duration: d}
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		dur, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		d.Duration = dur
		return nil
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// Human returns the largest whole unit representation of d: "3d", "2h",
// "5m" or "12s". Values are truncated, not rounded.
func (d Duration) Human() string {
	return Human(d.Duration)
}

// Human returns the largest whole unit representation of d: "3d", "2h",
// "5m" or "12s". Negative durations render as "0s".
func Human(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs >= 86400:
		return strconv.FormatInt(secs/86400, 10) + "d"
	case secs >= 3600:
		return strconv.FormatInt(secs/3600, 10) + "h"
	case secs >= 60:
		return strconv.FormatInt(secs/60, 10) + "m"
	default:
		return strconv.FormatInt(secs, 10) + "s"
	}
}
