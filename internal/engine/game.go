package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/breakfast-run/internal/game/command"
	"github.com/cory-johannsen/breakfast-run/internal/game/session"
	"github.com/cory-johannsen/breakfast-run/internal/game/world"
)

// Default game clock settings: 7:15 A.M. on the first day of school, with
// five minutes to catch the carpool.
var (
	DefaultStartTime = time.Date(2018, time.August, 14, 7, 15, 0, 0, time.UTC)
	DefaultTimeLimit = 5 * time.Minute
)

// ErrLineTooLong is returned by a LineReader for an input line over its
// limit. The line has been discarded and the next ReadLine continues after it.
var ErrLineTooLong = errors.New("input line too long")

// LineReader supplies one line of player input at a time.
type LineReader interface {
	// ReadLine blocks for the next line and returns io.EOF at end of input.
	ReadLine() (string, error)
}

// Printer shows game text to the player.
type Printer interface {
	Print(text string) error
	Prompt() error
}

// Options configures the game clock.
type Options struct {
	// Clock supplies real time. Nil means SystemClock.
	Clock     Clock
	StartTime time.Time
	TimeLimit time.Duration
	// TimeScale is game seconds per real second.
	TimeScale float64
}

// DefaultOptions returns the standard clock settings.
func DefaultOptions() Options {
	return Options{
		Clock:     SystemClock{},
		StartTime: DefaultStartTime,
		TimeLimit: DefaultTimeLimit,
		TimeScale: 1,
	}
}

// Game is one play-through: a freshly built world, its player, and the clock.
type Game struct {
	content    *world.Content
	world      *world.World
	player     *session.Player
	clock      *GameClock
	rooms      *WorldHandler
	dispatcher *Dispatcher
	logger     *zap.Logger
	sessionID  string
}

// NewGame builds a world from c and wires the command handlers.
//
// Precondition: c and logger must be non-nil.
// Postcondition: Returns a Game ready to Run, or an error if the content or options are invalid.
func NewGame(c *world.Content, opts Options, logger *zap.Logger) (*Game, error) {
	if opts.TimeLimit <= 0 {
		return nil, fmt.Errorf("time limit must be positive, got %s", opts.TimeLimit)
	}
	if opts.TimeScale <= 0 {
		return nil, fmt.Errorf("time scale must be positive, got %g", opts.TimeScale)
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}

	w, inv, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	if err := InstallRoomHooks(w); err != nil {
		return nil, fmt.Errorf("installing room hooks: %w", err)
	}

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))
	for _, exit := range w.OneWayExits() {
		logger.Debug("one-way exit", zap.String("exit", exit))
	}

	player := session.NewPlayer(w.StartRoom(), inv)
	clock := NewGameClock(opts.Clock, opts.StartTime, opts.TimeLimit, opts.TimeScale)
	registry := command.DefaultRegistry()

	rooms := NewWorldHandler(player, clock, logger)
	items := NewItemHandler(player, logger)
	system := NewSystemHandler(registry, clock)

	dispatcher, err := NewDispatcher(registry, map[string]HandlerFunc{
		command.HandlerGo:        rooms.Go,
		command.HandlerMove:      rooms.Move,
		command.HandlerLook:      rooms.Look,
		command.HandlerExamine:   rooms.Examine,
		command.HandlerLock:      rooms.Lock,
		command.HandlerUnlock:    rooms.Unlock,
		command.HandlerTake:      items.Take,
		command.HandlerDrop:      items.Drop,
		command.HandlerInventory: items.Inventory,
		command.HandlerEat:       items.Eat,
		command.HandlerTime:      system.Time,
		command.HandlerHelp:      system.Help,
		command.HandlerQuit:      system.Quit,
	})
	if err != nil {
		return nil, fmt.Errorf("wiring commands: %w", err)
	}

	return &Game{
		content:    c,
		world:      w,
		player:     player,
		clock:      clock,
		rooms:      rooms,
		dispatcher: dispatcher,
		logger:     logger,
		sessionID:  sessionID,
	}, nil
}

// World returns the game's world.
func (g *Game) World() *world.World { return g.world }

// Player returns the game's player.
func (g *Game) Player() *session.Player { return g.player }

// Clock returns the game clock.
func (g *Game) Clock() *GameClock { return g.clock }

// SessionID returns the ID attached to this game's log entries.
func (g *Game) SessionID() string { return g.sessionID }

// Process runs one line of input. It does not advance the clock.
//
// Postcondition: Always returns a Response; domain errors are already rendered into Text.
func (g *Game) Process(line string) Response {
	resp := g.dispatcher.Dispatch(line)
	g.logger.Debug("command",
		zap.String("input", line),
		zap.String("room", g.player.Room().ID),
		zap.Bool("quit", resp.Quit),
		zap.Error(resp.Err),
	)
	return resp
}

// Opening returns the intro text, the starting room, and the time.
func (g *Game) Opening() string {
	var b strings.Builder
	if intro := strings.TrimSpace(g.content.Intro); intro != "" {
		b.WriteString(intro + "\n\n")
	}
	b.WriteString(g.rooms.Describe(g.player.Room()))
	b.WriteString(g.clock.Format() + "\n\n")
	return b.String()
}

type readResult struct {
	line string
	err  error
}

// Run plays the game: it prints the opening, then prompts, reads and
// processes one command at a time, advancing the clock and printing the
// time after each. An overlong line is refused and play continues. It ends
// on quit, when the clock expires, at end of input, on a read failure, or
// when ctx is cancelled, and prints the farewell in every case.
//
// Postcondition: Returns nil unless writing output fails.
func (g *Game) Run(ctx context.Context, in LineReader, out Printer) error {
	if err := out.Print(g.Opening()); err != nil {
		return err
	}

	lines := make(chan readResult)
	reason := "quit"

loop:
	for {
		if err := out.Prompt(); err != nil {
			return err
		}
		go func() {
			line, err := in.ReadLine()
			select {
			case lines <- readResult{line: line, err: err}:
			case <-ctx.Done():
			}
		}()

		var r readResult
		select {
		case <-ctx.Done():
			reason = "cancelled"
			break loop
		case r = <-lines:
		}
		if r.err != nil {
			if errors.Is(r.err, ErrLineTooLong) {
				g.logger.Warn("input line discarded", zap.Error(r.err))
				if err := out.Print("That command is too long.\n\n"); err != nil {
					return err
				}
				continue
			}
			if errors.Is(r.err, io.EOF) {
				reason = "end of input"
				break loop
			}
			g.logger.Error("reading command", zap.Error(r.err))
			reason = "input error"
			break loop
		}

		resp := g.Process(r.line)
		if resp.Text != "" {
			if err := out.Print(resp.Text); err != nil {
				return err
			}
		}
		if resp.Quit {
			break loop
		}

		g.clock.Advance()
		if err := out.Print(g.clock.Format() + "\n\n"); err != nil {
			return err
		}
		if g.clock.Expired() {
			reason = "timeout"
			if err := out.Print(strings.TrimSpace(g.content.TimeoutMessage) + "\n\n"); err != nil {
				return err
			}
			break loop
		}
	}

	g.logger.Info("game over",
		zap.String("reason", reason),
		zap.String("room", g.player.Room().ID),
		zap.Time("game_time", g.clock.Now()),
		zap.Time("deadline", g.clock.Deadline()),
	)
	return out.Print("\n" + strings.TrimSpace(g.content.Farewell) + "\n\n")
}
