// Package engine runs a game: it owns the game clock, maps parsed
// commands onto handlers, and drives the read-eval-print loop.
package engine

import (
	"fmt"
	"time"
)

// TimePeriod is a named phase of the game day.
type TimePeriod string

const (
	PeriodMidnight  TimePeriod = "Midnight"
	PeriodLateNight TimePeriod = "Late Night"
	PeriodDawn      TimePeriod = "Dawn"
	PeriodMorning   TimePeriod = "Morning"
	PeriodAfternoon TimePeriod = "Afternoon"
	PeriodDusk      TimePeriod = "Dusk"
	PeriodEvening   TimePeriod = "Evening"
	PeriodNight     TimePeriod = "Night"
)

// GameHour is a game-clock hour in [0, 23].
type GameHour int

// Period returns the named time period for this hour.
//
// Precondition: h is in [0, 23].
// Postcondition: Returns one of the eight TimePeriod constants.
func (h GameHour) Period() TimePeriod {
	switch {
	case h == 0:
		return PeriodMidnight
	case h >= 1 && h <= 4:
		return PeriodLateNight
	case h >= 5 && h <= 6:
		return PeriodDawn
	case h >= 7 && h <= 11:
		return PeriodMorning
	case h >= 12 && h <= 16:
		return PeriodAfternoon
	case h >= 17 && h <= 18:
		return PeriodDusk
	case h >= 19 && h <= 21:
		return PeriodEvening
	default: // 22-23
		return PeriodNight
	}
}

// Clock supplies real time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// GameClock maps real time elapsed between commands onto game time.
// Every real second becomes scale game seconds.
type GameClock struct {
	clock    Clock
	deadline time.Time
	scale    float64
	lastReal time.Time
	current  time.Time
}

// NewGameClock creates a GameClock reading game time start at the
// current real time.
//
// Precondition: clock must be non-nil; limit > 0; scale > 0.
// Postcondition: Now() == start and Expired() is false.
func NewGameClock(clock Clock, start time.Time, limit time.Duration, scale float64) *GameClock {
	return &GameClock{
		clock:    clock,
		deadline: start.Add(limit),
		scale:    scale,
		lastReal: clock.Now(),
		current:  start,
	}
}

// Advance adds the scaled real time elapsed since the previous call.
// A real clock that moved backwards adds nothing.
//
// Postcondition: Returns the new game time.
func (c *GameClock) Advance() time.Time {
	now := c.clock.Now()
	elapsed := now.Sub(c.lastReal)
	c.lastReal = now
	if elapsed > 0 {
		c.current = c.current.Add(time.Duration(float64(elapsed) * c.scale))
	}
	return c.current
}

// Now returns the current game time without advancing it.
func (c *GameClock) Now() time.Time { return c.current }

// Deadline returns the game time at which the game is lost.
func (c *GameClock) Deadline() time.Time { return c.deadline }

// Remaining returns the game time left before the deadline, never negative.
func (c *GameClock) Remaining() time.Duration {
	if d := c.deadline.Sub(c.current); d > 0 {
		return d
	}
	return 0
}

// Expired reports whether game time has reached the deadline.
func (c *GameClock) Expired() bool {
	return !c.current.Before(c.deadline)
}

// Hour returns the current game hour.
func (c *GameClock) Hour() GameHour {
	return GameHour(c.current.Hour())
}

// Format renders the current game time as a status line.
func (c *GameClock) Format() string {
	return FormatTime(c.current)
}

// FormatTime renders t as "The time is H:MM:SS A.M." on a 12-hour dial.
func FormatTime(t time.Time) string {
	h := t.Hour()
	meridiem := "A.M."
	if h >= 12 {
		meridiem = "P.M."
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("The time is %d:%02d:%02d %s", h, t.Minute(), t.Second(), meridiem)
}
