package sdmanager

import (
	"time"

	"github.com/godbus/dbus/v5"
)

// NewWithObject returns a manager reading the properties of obj.
func NewWithObject(obj dbus.BusObject, timeout time.Duration) *T {
	return &T{obj: obj, timeout: timeout}
}
