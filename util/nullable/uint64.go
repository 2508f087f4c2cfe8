package nullable

import (
	"math"
	"strconv"
)

// Uint64 is an unsigned value that may be absent.
type Uint64 struct {
	Valid bool
	Value uint64
}

// NewUint64 returns a valid Uint64 holding v.
func NewUint64(v uint64) Uint64 {
	return Uint64{Valid: true, Value: v}
}

// NonZeroUint64 returns a valid Uint64 holding v, or an invalid one if v is 0.
// Use it at the boundary with producers using 0 as a "not set" sentinel.
func NonZeroUint64(v uint64) Uint64 {
	if v == 0 {
		return Uint64{}
	}
	return NewUint64(v)
}

// Or returns the held value, or deflt if u is not valid.
func (u Uint64) Or(deflt uint64) uint64 {
	if u.Valid {
		return u.Value
	}
	return deflt
}

// SaturatingSub returns u-o, floored at zero. The result is invalid if
// either operand is invalid.
func (u Uint64) SaturatingSub(o Uint64) Uint64 {
	if !u.Valid || !o.Valid {
		return Uint64{}
	}
	if o.Value >= u.Value {
		return NewUint64(0)
	}
	return NewUint64(u.Value - o.Value)
}

// SaturatingAdd returns u+o, capped at math.MaxUint64. The result is invalid
// if either operand is invalid.
func (u Uint64) SaturatingAdd(o Uint64) Uint64 {
	if !u.Valid || !o.Valid {
		return Uint64{}
	}
	if u.Value > math.MaxUint64-o.Value {
		return NewUint64(math.MaxUint64)
	}
	return NewUint64(u.Value + o.Value)
}

func (u Uint64) String() string {
	if u.Valid {
		return strconv.FormatUint(u.Value, 10)
	}
	return "N/A"
}
