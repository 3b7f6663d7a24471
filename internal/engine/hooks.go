package engine

import (
	"fmt"

	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
	"github.com/cory-johannsen/breakfast-run/internal/game/world"
)

// Room properties understood by the engine.
const (
	// PropertyWindow marks a room whose description mentions the light outside.
	PropertyWindow = "window"
	// PropertyReveal names an item moved into the room the first time it is entered.
	PropertyReveal = "reveal"
	// PropertyRevealFrom is the ID of the room the revealed item is taken from.
	PropertyRevealFrom = "reveal_from"
	// PropertyRevealMessage is shown when the item appears.
	PropertyRevealMessage = "reveal_message"
)

// InstallRoomHooks attaches entry hooks to rooms carrying reveal properties.
//
// Precondition: w must be non-nil.
// Postcondition: Returns an error if a reveal names an unknown room, or an
// item that room does not hold or that cannot be taken.
func InstallRoomHooks(w *world.World) error {
	for _, room := range w.Rooms() {
		item := room.Properties[PropertyReveal]
		if item == "" {
			continue
		}
		fromID := room.Properties[PropertyRevealFrom]
		from, ok := w.Room(fromID)
		if !ok {
			return fmt.Errorf("room %q: reveal source %q not found", room.ID, fromID)
		}
		it, err := from.GetItem(item)
		if err != nil {
			return fmt.Errorf("room %q: reveal item %q not in %q: %w", room.ID, item, fromID, err)
		}
		if !it.IsTakeable() {
			return fmt.Errorf("room %q: reveal item %q: %w", room.ID, item, inventory.ErrItemNotTakeable)
		}
		room.OnEnter(revealHook(item, from, room.Properties[PropertyRevealMessage]))
	}
	return nil
}

// revealHook moves item from source into the entered room. Once the move
// succeeds the hook does nothing; a failed move is retried on the next entry.
func revealHook(item string, source *world.Room, message string) world.EntryHook {
	fired := false
	return func(r *world.Room) string {
		if fired {
			return ""
		}
		if _, err := inventory.Transfer(source.Container, r.Container, item); err != nil {
			return ""
		}
		fired = true
		return message
	}
}
