// Package hours decides whether the kitchen is taking new items.
package hours

import (
	"fmt"
	"time"
)

const (
	DefaultOpeningHour = 10
	DefaultClosingHour = 23
)

// Clock returns the current local time.
type Clock func() time.Time

// Gate is the opening-hours check. Only the local hour of day matters.
type Gate struct {
	OpeningHour int
	ClosingHour int
	Now         Clock
}

// NewGate returns a gate for the given hours reading the system clock.
func NewGate(opening, closing int) *Gate {
	return &Gate{OpeningHour: opening, ClosingHour: closing, Now: time.Now}
}

// Default returns a gate with the standard 10:00 to 23:00 window.
func Default() *Gate {
	return NewGate(DefaultOpeningHour, DefaultClosingHour)
}

// OpenAt reports whether the store is open at t: opening <= hour < closing.
func (g *Gate) OpenAt(t time.Time) bool {
	h := t.Hour()
	return h >= g.OpeningHour && h < g.ClosingHour
}

// IsOpen reports whether the store is open right now.
func (g *Gate) IsOpen() bool {
	return g.OpenAt(g.now())
}

// Status is the banner text shown above the menu.
func (g *Gate) Status() string {
	if g.IsOpen() {
		return fmt.Sprintf("OPEN NOW (Closes %02d:00)", g.ClosingHour)
	}
	return fmt.Sprintf("CLOSED (Opens %02d:00)", g.OpeningHour)
}

func (g *Gate) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}
