// Package sdmanager reads the properties of the systemd manager object over
// the D-Bus system bus.
package sdmanager

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

type (
	// T handle a system bus connection to the systemd manager
	T struct {
		conn    *dbus.Conn
		obj     dbus.BusObject
		timeout time.Duration
	}
)

const (
	// Destination is the well-known bus name of systemd.
	Destination = "org.freedesktop.systemd1"

	// Path is the object path of the systemd manager.
	Path = dbus.ObjectPath("/org/freedesktop/systemd1")

	// Interface is the interface hosting the manager properties.
	Interface = "org.freedesktop.systemd1.Manager"

	// DefaultTimeout bounds a single property read.
	DefaultTimeout = 5 * time.Second

	propertiesGet = "org.freedesktop.DBus.Properties.Get"
)

var (
	connectSystemBus = func(ctx context.Context) (*dbus.Conn, error) {
		return dbus.ConnectSystemBus(dbus.WithContext(ctx))
	}
)

// New opens a system bus connection to the systemd manager. The connection
// setup and each property read are bounded by timeout. A zero timeout
// selects DefaultTimeout.
func New(ctx context.Context, timeout time.Duration) (*T, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	conn, err := dial(ctx, timeout)
	if err != nil {
		return nil, fmt.Errorf("connect system bus: %w", err)
	}
	return &T{
		conn:    conn,
		obj:     conn.Object(Destination, Path),
		timeout: timeout,
	}, nil
}

// dial runs the bus authentication and hello under timeout. The connection
// itself lives under ctx, and is closed if it completes after the deadline.
func dial(ctx context.Context, timeout time.Duration) (*dbus.Conn, error) {
	type result struct {
		conn *dbus.Conn
		err  error
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	connect := connectSystemBus
	c := make(chan result, 1)
	go func() {
		conn, err := connect(ctx)
		c <- result{conn: conn, err: err}
	}()
	select {
	case r := <-c:
		return r.conn, r.err
	case <-dialCtx.Done():
		go func() {
			if r := <-c; r.conn != nil {
				_ = r.conn.Close()
			}
		}()
		return nil, dialCtx.Err()
	}
}

// Close closes the system bus connection
func (t *T) Close() error {
	if t.conn != nil {
		return t.conn.Close()
	}
	return nil
}

// Uint64Property returns the value of the manager property name, which must
// be of the D-Bus type "t". The read is bounded by the connection timeout.
func (t *T) Uint64Property(ctx context.Context, name string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	var v dbus.Variant
	if err := t.obj.CallWithContext(ctx, propertiesGet, 0, Interface, name).Store(&v); err != nil {
		return 0, fmt.Errorf("get %s.%s: %w", Interface, name, err)
	}
	return uint64Value(name, v)
}

func uint64Value(name string, v dbus.Variant) (uint64, error) {
	i, ok := v.Value().(uint64)
	if !ok {
		return 0, fmt.Errorf("property %s: unexpected signature %s", name, v.Signature())
	}
	return i, nil
}
