// Package world provides the game world model: rooms, exits, directions, and the room registry.
package world

import (
	"strings"

	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
)

// Direction is one of the four compass directions an exit may take.
type Direction string

// Compass directions.
const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// Directions lists the compass directions in display order.
var Directions = []Direction{North, East, South, West}

// ParseDirection converts a full or single-letter direction name.
//
// Postcondition: Returns (dir, true) for a compass direction, or ("", false).
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "east", "e":
		return East, true
	case "south", "s":
		return South, true
	case "west", "w":
		return West, true
	default:
		return "", false
	}
}

// IsCompass reports whether d is one of the four compass directions.
func (d Direction) IsCompass() bool {
	return d.index() >= 0
}

// Opposite returns the opposite compass direction, or "" for anything else.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

func (d Direction) index() int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	default:
		return -1
	}
}

// Lock states, named for readability at construction sites.
const (
	Unlocked = false
	Locked   = true
)

// Lockable is anything that toggles between locked and unlocked.
type Lockable interface {
	IsLocked() bool
	Lock()
	Unlock()
}

// EntryHook runs after a player enters a room. A non-empty return is
// shown to the player.
type EntryHook func(r *Room) string

// Room is a location in the game world. It holds items and links to at
// most four neighbours.
type Room struct {
	*inventory.Container

	// ID is the registry key, e.g. "bedroom".
	ID string
	// Name is the capitalized title shown to the player, e.g. "YOUR BEDROOM".
	Name string
	// Description is the prose shown under the title.
	Description string
	// Properties holds content tags (e.g. "window": "true").
	Properties map[string]string

	exits   [4]*Room
	locked  bool
	onEnter EntryHook
}

// NewRoom creates a room with no exits and no items.
//
// Postcondition: Returns a Room whose lock state equals locked.
func NewRoom(id, name, description string, locked bool) *Room {
	return &Room{
		Container:   inventory.NewContainer(),
		ID:          id,
		Name:        name,
		Description: description,
		Properties:  make(map[string]string),
		locked:      locked,
	}
}

// SetExits defines all four exits at once. A nil argument means no exit
// that way; every direction is overwritten.
func (r *Room) SetExits(north, east, south, west *Room) {
	r.exits = [4]*Room{north, east, south, west}
}

// SetExit defines or clears (target == nil) a single exit.
//
// Precondition: dir must be a compass direction.
func (r *Room) SetExit(dir Direction, target *Room) {
	if i := dir.index(); i >= 0 {
		r.exits[i] = target
	}
}

// NextRoom returns the neighbour in the given direction. A missing exit
// or a non-compass direction is a normal outcome, reported as false.
func (r *Room) NextRoom(dir Direction) (*Room, bool) {
	i := dir.index()
	if i < 0 || r.exits[i] == nil {
		return nil, false
	}
	return r.exits[i], true
}

// Exits returns the directions that have an exit, in compass order.
func (r *Room) Exits() []Direction {
	var out []Direction
	for i, target := range r.exits {
		if target != nil {
			out = append(out, Directions[i])
		}
	}
	return out
}

// IsLocked reports whether the room is locked.
func (r *Room) IsLocked() bool { return r.locked }

// Lock locks the room. Items and occupants are unaffected.
func (r *Room) Lock() { r.locked = Locked }

// Unlock unlocks the room.
func (r *Room) Unlock() { r.locked = Unlocked }

// OnEnter installs the hook run by Enter.
func (r *Room) OnEnter(hook EntryHook) { r.onEnter = hook }

// Enter runs the entry hook, if any, and returns its message.
func (r *Room) Enter() string {
	if r.onEnter == nil {
		return ""
	}
	return r.onEnter(r)
}

// ExitString renders the exits line, e.g. "Exits: north west", or
// "Exits: n/a" for a room without exits.
func (r *Room) ExitString() string {
	dirs := r.Exits()
	if len(dirs) == 0 {
		return "Exits: " + inventory.EmptyList
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	return "Exits: " + strings.Join(names, " ")
}

// Describe composes the full room text: name, description, visible
// items (only when there are any), and exits.
func (r *Room) Describe() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString("\n")
	b.WriteString(r.Description)
	b.WriteString("\n\n")
	if r.Len() > 0 {
		b.WriteString("You see ")
		b.WriteString(r.ItemList())
		b.WriteString(" here.\n\n")
	}
	b.WriteString(r.ExitString())
	b.WriteString("\n\n")
	return b.String()
}
