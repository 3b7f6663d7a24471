// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryItems    = "items"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to their handling routine.
const (
	HandlerGo        = "go"
	HandlerMove      = "move"
	HandlerLook      = "look"
	HandlerExamine   = "examine"
	HandlerTake      = "take"
	HandlerDrop      = "drop"
	HandlerInventory = "inventory"
	HandlerEat       = "eat"
	HandlerLock      = "lock"
	HandlerUnlock    = "unlock"
	HandlerTime      = "time"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument form, e.g. "take <item>".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, world, items, system).
	Category string
	// Handler names the routine that executes the command.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "go", Aliases: []string{"walk", "move"}, Usage: "go <direction>", Help: "Walk through an exit", Category: CategoryMovement, Handler: HandlerGo},
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},

		// World commands
		{Name: "look", Aliases: []string{"l"}, Usage: "look [at <item>]", Help: "Look around, or at something", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "examine", Aliases: []string{"x", "ex", "inspect"}, Usage: "examine <item>", Help: "Examine an item here or in your inventory", Category: CategoryWorld, Handler: HandlerExamine},
		{Name: "lock", Usage: "lock [direction]", Help: "Lock this room or a neighbouring one", Category: CategoryWorld, Handler: HandlerLock},
		{Name: "unlock", Usage: "unlock [direction]", Help: "Unlock this room or a neighbouring one", Category: CategoryWorld, Handler: HandlerUnlock},

		// Item commands
		{Name: "take", Aliases: []string{"get", "grab"}, Usage: "take <item>", Help: "Pick up an item", Category: CategoryItems, Handler: HandlerTake},
		{Name: "drop", Usage: "drop <item>", Help: "Drop an item from your inventory", Category: CategoryItems, Handler: HandlerDrop},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show what you are carrying", Category: CategoryItems, Handler: HandlerInventory},
		{Name: "eat", Usage: "eat <item>", Help: "Eat something", Category: CategoryItems, Handler: HandlerEat},

		// System commands
		{Name: "time", Aliases: []string{"clock"}, Help: "Show the time", Category: CategorySystem, Handler: HandlerTime},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "End the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// IsQuit reports whether the verb ends the session. It is checked before
// any registry lookup.
func IsQuit(verb string) bool {
	switch verb {
	case "quit", "exit", "q":
		return true
	default:
		return false
	}
}
