package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/breakfast-run/internal/game/session"
	"github.com/cory-johannsen/breakfast-run/internal/game/world"
)

// WorldHandler handles movement, looking, and locking.
type WorldHandler struct {
	player *session.Player
	clock  *GameClock
	logger *zap.Logger
}

// NewWorldHandler creates a WorldHandler with the given dependencies.
//
// Precondition: player, clock and logger must be non-nil.
func NewWorldHandler(player *session.Player, clock *GameClock, logger *zap.Logger) *WorldHandler {
	return &WorldHandler{
		player: player,
		clock:  clock,
		logger: logger,
	}
}

// Describe renders a room, followed by window flavor text when it has one.
func (h *WorldHandler) Describe(room *world.Room) string {
	text := room.Describe()
	if flavor := FlavorText(h.clock.Hour().Period(), room.Properties[PropertyWindow] == "true"); flavor != "" {
		text += flavor + "\n\n"
	}
	return text
}

// Look describes the current room, or examines an item when given one.
// "look at rock" and "look rock" are the same.
func (h *WorldHandler) Look(args []string) Response {
	if len(args) > 0 && strings.EqualFold(args[0], "at") {
		if len(args) == 1 {
			return say("Look at what?")
		}
		args = args[1:]
	}
	if len(args) == 0 {
		return Response{Text: h.Describe(h.player.Room())}
	}
	return h.Examine(args)
}

// Examine shows the description of an item in the inventory or the room.
func (h *WorldHandler) Examine(args []string) Response {
	if len(args) == 0 {
		return say("Examine what?")
	}
	name := itemName(args)
	item, err := h.player.Find(name)
	if err != nil {
		return failure(err, "There is no %s here.", name)
	}
	return say("%s", item.Description())
}

// Go walks in the direction named by the first argument.
func (h *WorldHandler) Go(args []string) Response {
	if len(args) == 0 {
		return say("Go where?")
	}
	dir, ok := world.ParseDirection(args[0])
	if !ok {
		return say("'%s' is not a direction.", args[0])
	}
	return h.move(dir)
}

// Move walks in the direction given as the first argument; it backs the
// bare direction commands.
//
// Precondition: args[0] is a compass direction name.
func (h *WorldHandler) Move(args []string) Response {
	return h.Go(args[:1])
}

func (h *WorldHandler) move(dir world.Direction) Response {
	from := h.player.Room()
	res := h.player.Move(dir)
	h.logger.Debug("move",
		zap.String("from", from.ID),
		zap.String("direction", string(dir)),
		zap.Stringer("outcome", res.Outcome),
	)

	switch res.Outcome {
	case session.NoExit:
		return say("There is no exit that way.")
	case session.Locked:
		if res.Room == from {
			return say("%s is locked.  You can't get out.", from.Name)
		}
		return say("%s is locked.", res.Room.Name)
	}

	text := h.Describe(res.Room)
	if res.Message != "" {
		text += res.Message + "\n\n"
	}
	return Response{Text: text}
}

// Lock locks the current room or a neighbor.
func (h *WorldHandler) Lock(args []string) Response {
	return h.setLock(args, true)
}

// Unlock unlocks the current room or a neighbor.
func (h *WorldHandler) Unlock(args []string) Response {
	return h.setLock(args, false)
}

// setLock moves a room into the requested lock state. With a direction it
// targets that neighbor. Without one it picks the only neighbor not yet
// in that state, then falls back to the current room.
func (h *WorldHandler) setLock(args []string, lock bool) Response {
	verb, done := "unlock", "unlocked"
	if lock {
		verb, done = "lock", "locked"
	}
	current := h.player.Room()

	var target *world.Room
	if len(args) > 0 {
		dir, ok := world.ParseDirection(args[0])
		if !ok {
			return say("'%s' is not a direction.", args[0])
		}
		next, ok := current.NextRoom(dir)
		if !ok {
			return say("There is no exit that way.")
		}
		target = next
	} else {
		candidates := h.neighborsNotIn(current, lock)
		switch {
		case len(candidates) == 1:
			target = candidates[0]
		case len(candidates) > 1:
			return say("%s which way?", strings.ToUpper(verb[:1])+verb[1:])
		case current.IsLocked() != lock:
			target = current
		default:
			return say("There is nothing to %s here.", verb)
		}
	}

	if target.IsLocked() == lock {
		return say("%s is already %s.", target.Name, done)
	}
	if lock {
		target.Lock()
	} else {
		target.Unlock()
	}
	h.logger.Debug(verb, zap.String("room", target.ID))
	return say("You %s %s.", verb, target.Name)
}

// neighborsNotIn returns the distinct neighbors whose lock state differs from locked.
func (h *WorldHandler) neighborsNotIn(room *world.Room, locked bool) []*world.Room {
	var out []*world.Room
	seen := make(map[*world.Room]bool)
	for _, dir := range room.Exits() {
		next, _ := room.NextRoom(dir)
		if next.IsLocked() == locked || seen[next] {
			continue
		}
		seen[next] = true
		out = append(out, next)
	}
	return out
}

// itemName joins multi-word arguments with underscores, so "front door"
// names front_door.
func itemName(args []string) string {
	return strings.ToLower(strings.Join(args, "_"))
}
