package hours

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, 0, 0, time.Local)
}

func TestOpenAt(t *testing.T) {
	g := Default()

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"before opening", at(9, 59), false},
		{"at opening", at(10, 0), true},
		{"late evening", at(22, 59), true},
		{"at closing", at(23, 0), false},
		{"midnight", at(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.OpenAt(tt.t); got != tt.want {
				t.Errorf("OpenAt(%s) = %v, want %v", tt.t.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestIsOpenUsesClock(t *testing.T) {
	g := Default()

	g.Now = func() time.Time { return at(12, 0) }
	if !g.IsOpen() {
		t.Error("expected open at noon")
	}
	if got := g.Status(); got != "OPEN NOW (Closes 23:00)" {
		t.Errorf("Status() = %q", got)
	}

	g.Now = func() time.Time { return at(8, 30) }
	if g.IsOpen() {
		t.Error("expected closed at 08:30")
	}
	if got := g.Status(); got != "CLOSED (Opens 10:00)" {
		t.Errorf("Status() = %q", got)
	}
}
