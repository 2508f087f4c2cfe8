package boottime

import (
	"fmt"

	"github.com/opensvc/motd/util/nullable"
	"github.com/opensvc/motd/util/render/palette"
)

// Stage associates a stage name with its duration.
type Stage struct {
	Name     string
	Duration nullable.Duration
}

// Stages returns the stage durations in boot order.
func (t Durations) Stages() []Stage {
	return []Stage{
		{Name: "firmware", Duration: t.Firmware},
		{Name: "loader", Duration: t.Loader},
		{Name: "kernel", Duration: t.Kernel},
		{Name: "initrd", Duration: t.InitRD},
		{Name: "userspace", Duration: t.Userspace},
	}
}

// String returns the one line human representation of the record:
//
//	50ms (firmware) + 150ms (loader) + 300ms (kernel) + ? (initrd) + 600ms (userspace) = 1100ms
func (t Durations) String() string {
	return t.render(nil)
}

// Render returns the one line human representation of the record, with the
// values colorized by p.
func (t Durations) Render(p *palette.ColorPaletteFunc) string {
	return t.render(p)
}

func (t Durations) render(p *palette.ColorPaletteFunc) string {
	value := func(d nullable.Duration) string {
		s := d.Milliseconds()
		switch {
		case p == nil:
			return s
		case d.Valid:
			return p.Primary(s)
		default:
			return p.Secondary(s)
		}
	}
	var s string
	for i, stage := range t.Stages() {
		if i > 0 {
			s += " + "
		}
		s += fmt.Sprintf("%s (%s)", value(stage.Duration), stage.Name)
	}
	total := value(t.Total)
	if p != nil && t.Total.Valid {
		total = p.Bold(t.Total.Milliseconds())
	}
	return s + " = " + total
}

// TableHeader implements output.Tabler.
func (t Durations) TableHeader() []string {
	return []string{"stage", "duration"}
}

// TableRows implements output.Tabler.
func (t Durations) TableRows() [][]string {
	rows := make([][]string, 0, 6)
	for _, stage := range t.Stages() {
		rows = append(rows, []string{stage.Name, stage.Duration.Milliseconds()})
	}
	return append(rows, []string{"total", t.Total.Milliseconds()})
}
