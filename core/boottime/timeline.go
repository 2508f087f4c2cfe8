// Package boottime reconstructs how long the host took to boot, stage by
// stage, from the monotonic timestamps published by systemd.
//
// All timestamps share systemd's reference frame: the kernel start. Firmware
// and Loader are offsets counted backward from the kernel start, InitRD,
// Userspace and Finish are counted forward from it. A stage duration is the
// distance between the two timestamps bounding it, floored at zero.
package boottime

import (
	"github.com/opensvc/motd/util/nullable"
)

type (
	// RawTimestamps are the monotonic stage timestamps, in microseconds.
	// An invalid field means the stage was not reached, or its timestamp
	// could not be read.
	RawTimestamps struct {
		Firmware  nullable.Uint64
		Loader    nullable.Uint64
		InitRD    nullable.Uint64
		Userspace nullable.Uint64
		Finish    nullable.Uint64
	}

	// Durations is the per-stage boot duration record. An invalid field is
	// unknown, a valid zero field is an instantaneous stage.
	Durations struct {
		Firmware  nullable.Duration `json:"firmware" yaml:"firmware"`
		Loader    nullable.Duration `json:"loader" yaml:"loader"`
		Kernel    nullable.Duration `json:"kernel" yaml:"kernel"`
		InitRD    nullable.Duration `json:"initrd" yaml:"initrd"`
		Userspace nullable.Duration `json:"userspace" yaml:"userspace"`
		Total     nullable.Duration `json:"total" yaml:"total"`

		// Unfinished is true when the userspace or finish timestamp was
		// substituted by a fallback reading, meaning the boot was still in
		// progress.
		Unfinished bool `json:"unfinished" yaml:"unfinished"`

		// BootID identifies the boot the record describes.
		BootID string `json:"boot_id,omitempty" yaml:"boot_id,omitempty"`
	}
)

// KernelDone returns the timestamp ending the kernel stage: the initrd
// timestamp when an initrd ran, the userspace timestamp otherwise.
func (t RawTimestamps) KernelDone() nullable.Uint64 {
	if t.InitRD.Valid {
		return t.InitRD
	}
	return t.Userspace
}

// preKernel returns the time spent before the kernel start, or an invalid
// value if neither the firmware nor the loader published a timestamp.
func (t RawTimestamps) preKernel() nullable.Uint64 {
	if t.Firmware.Valid {
		return t.Firmware
	}
	return t.Loader
}

// Derive computes the stage durations from raw timestamps. Each field is
// derived independently: an unknown field never forces another to unknown.
func Derive(raw RawTimestamps) Durations {
	var d Durations
	if raw.Firmware.Valid && raw.Loader.Valid {
		d.Firmware = nullable.Microseconds(raw.Firmware.SaturatingSub(raw.Loader))
	}
	d.Loader = nullable.Microseconds(raw.Loader)
	d.Kernel = nullable.Microseconds(raw.KernelDone())
	d.InitRD = nullable.Microseconds(raw.Userspace.SaturatingSub(raw.InitRD))
	d.Userspace = nullable.Microseconds(raw.Finish.SaturatingSub(raw.Userspace))
	if raw.Finish.Valid {
		pre := nullable.NewUint64(raw.preKernel().Or(0))
		d.Total = nullable.Microseconds(raw.Finish.SaturatingAdd(pre))
	}
	return d
}
