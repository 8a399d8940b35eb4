// Package gametime tracks the in-game clock and nighttime events. The
// clock only moves when the player fishes; there are no background timers.
package gametime

import (
	"fmt"

	"github.com/saltlinegames/deepcast/internal/rng"
)

// HoursPerDay is the length of the game day.
const HoursPerDay = 24

// Event is a world event affecting fishing.
type Event string

const (
	EventNone     Event = "Nothing"
	EventFullMoon Event = "Full Moon"
)

// Clock is the game clock. Hour is 0-23.
type Clock struct {
	Hour  int
	Event Event
}

// NewClock starts a clock at midnight with no event.
func NewClock() *Clock {
	return &Clock{Event: EventNone}
}

// Advance moves the clock forward one hour, wrapping at HoursPerDay.
// Before eventStartHour any event ends; from eventStartHour onward a Full
// Moon may begin with the given percent chance per advance.
func (c *Clock) Advance(r *rng.RNG, eventStartHour, fullMoonChance int) {
	c.Hour = (c.Hour + 1) % HoursPerDay
	if c.Hour < eventStartHour {
		c.Event = EventNone
		return
	}
	if c.Event == EventNone && r.Chance(fullMoonChance) {
		c.Event = EventFullMoon
	}
}

// TimeString returns the clock formatted as "HH:00".
func (c *Clock) TimeString() string {
	return fmt.Sprintf("%02d:00", c.Hour)
}

// IsFullMoon reports whether the Full Moon event is active.
func (c *Clock) IsFullMoon() bool {
	return c.Event == EventFullMoon
}
