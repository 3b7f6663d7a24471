package engine

import (
	"fmt"

	"github.com/cory-johannsen/breakfast-run/internal/game/command"
)

// Response is the outcome of one command. Handlers fill it in and never
// print.
type Response struct {
	// Text is shown to the player.
	Text string
	// Err is the recovered domain error, if any, kept for logging.
	Err error
	// Quit ends the session.
	Quit bool
}

// HandlerFunc executes one command.
type HandlerFunc func(args []string) Response

// say builds a Response whose text is one paragraph.
func say(format string, a ...any) Response {
	return Response{Text: fmt.Sprintf(format, a...) + "\n\n"}
}

// Dispatcher routes parsed input to the handler named by each command.
type Dispatcher struct {
	registry *command.Registry
	handlers map[string]HandlerFunc
}

// NewDispatcher binds every command in registry to a handler.
//
// Precondition: registry must be non-nil.
// Postcondition: Returns an error if any registered command's handler id has no HandlerFunc.
func NewDispatcher(registry *command.Registry, handlers map[string]HandlerFunc) (*Dispatcher, error) {
	for _, cmd := range registry.Commands() {
		if _, ok := handlers[cmd.Handler]; !ok {
			return nil, fmt.Errorf("command %q: no handler for %q", cmd.Name, cmd.Handler)
		}
	}
	return &Dispatcher{registry: registry, handlers: handlers}, nil
}

// Dispatch parses line and runs its handler. Quit verbs end the session
// before any vocabulary lookup. Bare direction commands receive their
// own name as the first argument.
//
// Postcondition: Always returns a Response; unknown and empty input are
// reported in Text without ending the session.
func (d *Dispatcher) Dispatch(line string) Response {
	parsed := command.Parse(line)
	if parsed.Empty() {
		return say("Empty command.")
	}
	if command.IsQuit(parsed.Command) {
		return Response{Quit: true}
	}

	cmd, err := d.registry.Lookup(parsed.Command)
	if err != nil {
		resp := say("I don't know the command '%s'", parsed.Verb)
		resp.Err = err
		return resp
	}

	args := parsed.Args
	if cmd.Handler == command.HandlerMove {
		args = append([]string{cmd.Name}, args...)
	}
	return d.handlers[cmd.Handler](args)
}
