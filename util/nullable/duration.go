package nullable

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// maxMicroseconds is the largest microsecond count a time.Duration holds.
const maxMicroseconds = uint64(math.MaxInt64 / int64(time.Microsecond))

// Duration is a time.Duration that may be unknown. A valid zero Duration is
// a measured instant, distinct from an unknown one.
type Duration struct {
	Valid bool
	Value time.Duration
}

// NewDuration returns a valid Duration holding d.
func NewDuration(d time.Duration) Duration {
	return Duration{Valid: true, Value: d}
}

// Microseconds converts a Uint64 holding a microsecond count to a Duration,
// keeping its validity. Counts beyond the time.Duration range are clamped
// to the largest representable duration.
func Microseconds(u Uint64) Duration {
	if !u.Valid {
		return Duration{}
	}
	v := u.Value
	if v > maxMicroseconds {
		v = maxMicroseconds
	}
	return NewDuration(time.Duration(v) * time.Microsecond)
}

// Milliseconds returns the "<n>ms" representation, or "?" if unknown.
func (d Duration) Milliseconds() string {
	if !d.Valid {
		return "?"
	}
	return strconv.FormatInt(d.Value.Milliseconds(), 10) + "ms"
}

func (d Duration) String() string {
	return d.Milliseconds()
}

// MarshalJSON renders the duration as an integer count of milliseconds, or
// null if unknown.
func (d Duration) MarshalJSON() ([]byte, error) {
	if d.Valid {
		return json.Marshal(d.Value.Milliseconds())
	}
	return json.Marshal(nil)
}

// UnmarshalJSON is the interface method to load a json into this type.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var ms *int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	if ms != nil {
		d.Valid = true
		d.Value = time.Duration(*ms) * time.Millisecond
	} else {
		d.Valid = false
		d.Value = 0
	}
	return nil
}

// MarshalYAML renders the duration as milliseconds, or null if unknown.
func (d Duration) MarshalYAML() (interface{}, error) {
	if d.Valid {
		return d.Value.Milliseconds(), nil
	}
	return nil, nil
}
