package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
	"github.com/cory-johannsen/breakfast-run/internal/game/session"
)

// ItemHandler handles take, drop, inventory and eat.
type ItemHandler struct {
	player *session.Player
	logger *zap.Logger
}

// NewItemHandler creates an ItemHandler.
//
// Precondition: player and logger must be non-nil.
func NewItemHandler(player *session.Player, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{player: player, logger: logger}
}

// Take picks an item up from the current room.
func (h *ItemHandler) Take(args []string) Response {
	if len(args) == 0 {
		return say("Take what?")
	}
	name := itemName(args)
	if _, err := h.player.Take(name); err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotTakeable):
			return failure(err, "You can't take the %s.", name)
		case errors.Is(err, inventory.ErrDuplicateItem):
			return failure(err, "You already have a %s.", name)
		default:
			return failure(err, "There is no %s here.", name)
		}
	}
	h.logger.Debug("take", zap.String("item", name), zap.String("room", h.player.Room().ID))
	return say("You take the %s.", name)
}

// Drop leaves an item from the inventory in the current room.
func (h *ItemHandler) Drop(args []string) Response {
	if len(args) == 0 {
		return say("Drop what?")
	}
	name := itemName(args)
	if _, err := h.player.Drop(name); err != nil {
		if errors.Is(err, inventory.ErrDuplicateItem) {
			return failure(err, "There is already a %s here.", name)
		}
		return failure(err, "You don't have a %s.", name)
	}
	h.logger.Debug("drop", zap.String("item", name), zap.String("room", h.player.Room().ID))
	return say("You drop the %s.", name)
}

// Inventory lists what the player carries.
func (h *ItemHandler) Inventory(args []string) Response {
	inv := h.player.Inventory()
	return say("You are carrying: %s\nTotal weight: %g", inv.ItemList(), inv.TotalWeight())
}

// Eat consumes a food item from the inventory or the room.
func (h *ItemHandler) Eat(args []string) Response {
	if len(args) == 0 {
		return say("Eat what?")
	}
	name := itemName(args)
	if _, err := h.player.Eat(name); err != nil {
		if errors.Is(err, session.ErrNotEdible) {
			return failure(err, "You can't eat the %s.", name)
		}
		return failure(err, "There is no %s here.", name)
	}
	h.logger.Debug("eat", zap.String("item", name))
	return say("You eat the %s.  Delicious!", name)
}

// failure reports a recovered error to the player.
func failure(err error, format string, a ...any) Response {
	return Response{Text: fmt.Sprintf(format, a...) + "\n\n", Err: err}
}
