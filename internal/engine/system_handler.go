package engine

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/breakfast-run/internal/game/command"
)

// helpCategories is the order categories appear in help output.
var helpCategories = []string{
	command.CategoryMovement,
	command.CategoryWorld,
	command.CategoryItems,
	command.CategorySystem,
}

// SystemHandler handles time, help and quit.
type SystemHandler struct {
	registry *command.Registry
	clock    *GameClock
}

// NewSystemHandler creates a SystemHandler.
//
// Precondition: registry and clock must be non-nil.
func NewSystemHandler(registry *command.Registry, clock *GameClock) *SystemHandler {
	return &SystemHandler{registry: registry, clock: clock}
}

// Time reports the game time and how much is left.
func (h *SystemHandler) Time(args []string) Response {
	return say("%s\nTime remaining: %s", h.clock.Format(), h.clock.Remaining().Round(time.Second))
}

// Help lists the vocabulary grouped by category.
func (h *SystemHandler) Help(args []string) Response {
	title := cases.Title(language.English)
	byCat := h.registry.CommandsByCategory()

	var b strings.Builder
	b.WriteString("This is a text adventure game.  Your job is to explore your surroundings, collect and use items, and discover how to win the game.\n\n")
	for _, cat := range helpCategories {
		cmds := byCat[cat]
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", title.String(cat))
		for _, cmd := range cmds {
			usage := cmd.Usage
			if usage == "" {
				usage = cmd.Name
			}
			fmt.Fprintf(&b, "  %-20s %s", usage, cmd.Help)
			if len(cmd.Aliases) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(cmd.Aliases, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return Response{Text: b.String()}
}

// Quit ends the session.
func (h *SystemHandler) Quit(args []string) Response {
	return Response{Quit: true}
}
