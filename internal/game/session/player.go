// Package session tracks the player's state during a game: where they
// stand and what they carry.
package session

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
	"github.com/cory-johannsen/breakfast-run/internal/game/world"
)

// ErrNotEdible is returned when the player tries to eat something that is not food.
var ErrNotEdible = errors.New("item is not edible")

// MoveOutcome reports how a move attempt ended.
type MoveOutcome int

// Move outcomes. Only Moved changes the player's room.
const (
	Moved MoveOutcome = iota
	NoExit
	Locked
)

// String returns a lowercase name for logging.
func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case NoExit:
		return "no_exit"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Player is the single player of a game.
type Player struct {
	room      *world.Room
	inventory *inventory.Container
}

// NewPlayer places a player in start carrying inv.
//
// Precondition: start and inv must be non-nil.
// Postcondition: Room() == start.
func NewPlayer(start *world.Room, inv *inventory.Container) *Player {
	return &Player{
		room:      start,
		inventory: inv,
	}
}

// Room returns the room the player is in.
func (p *Player) Room() *world.Room {
	return p.room
}

// Inventory returns the player's inventory.
func (p *Player) Inventory() *inventory.Container {
	return p.inventory
}

// MoveResult holds the result of a Move.
type MoveResult struct {
	Outcome MoveOutcome
	// Room is the destination on Moved, the locked room on Locked, and nil on NoExit.
	Room *world.Room
	// Message is the destination's entry hook output, if any.
	Message string
}

// Move tries to walk through the exit in dir. A locked destination, or a
// locked room the player is standing in, blocks the move.
//
// Postcondition: On Moved the player is in the destination and its entry
// hook has run; otherwise the current room is unchanged.
func (p *Player) Move(dir world.Direction) MoveResult {
	next, ok := p.room.NextRoom(dir)
	if !ok {
		return MoveResult{Outcome: NoExit}
	}
	if next.IsLocked() {
		return MoveResult{Outcome: Locked, Room: next}
	}
	if p.room.IsLocked() {
		return MoveResult{Outcome: Locked, Room: p.room}
	}
	p.room = next
	return MoveResult{Outcome: Moved, Room: next, Message: next.Enter()}
}

// Take moves an item from the current room into the inventory.
//
// Postcondition: On error (ErrItemNotFound, ErrItemNotTakeable, ErrDuplicateItem) nothing changed.
func (p *Player) Take(name string) (*inventory.Item, error) {
	return inventory.Transfer(p.room.Container, p.inventory, name)
}

// Drop moves an item from the inventory into the current room.
//
// Postcondition: On error (ErrItemNotFound, ErrDuplicateItem) nothing changed.
func (p *Player) Drop(name string) (*inventory.Item, error) {
	return inventory.Transfer(p.inventory, p.room.Container, name)
}

// Find looks an item up in the inventory first, then in the current room.
func (p *Player) Find(name string) (*inventory.Item, error) {
	if it, err := p.inventory.GetItem(name); err == nil {
		return it, nil
	}
	return p.room.GetItem(name)
}

// Eat consumes a food item held by the player or lying in the room. The
// item is destroyed.
//
// Postcondition: On error (ErrItemNotFound, ErrNotEdible) nothing changed.
func (p *Player) Eat(name string) (*inventory.Item, error) {
	owner := p.inventory
	if !owner.Has(name) {
		owner = p.room.Container
	}
	item, err := owner.GetItem(name)
	if err != nil {
		return nil, err
	}
	if !item.Edible() {
		return nil, fmt.Errorf("eating %q: %w", name, ErrNotEdible)
	}
	return owner.RemoveItem(name)
}
