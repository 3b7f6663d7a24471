package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
)

// yamlContentFile is the top-level YAML structure for content files.
type yamlContentFile struct {
	Game      yamlGame   `yaml:"game"`
	StartRoom string     `yaml:"start_room"`
	Player    yamlPlayer `yaml:"player"`
	Rooms     []yamlRoom `yaml:"rooms"`
}

// yamlGame holds the presentation strings of a content file.
type yamlGame struct {
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	Farewell string `yaml:"farewell"`
	Timeout  string `yaml:"timeout"`
}

// yamlPlayer is the YAML representation of the player's starting state.
type yamlPlayer struct {
	Items []yamlItem `yaml:"items"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Locked      bool              `yaml:"locked"`
	Properties  map[string]string `yaml:"properties"`
	Exits       map[string]string `yaml:"exits"`
	Items       []yamlItem        `yaml:"items"`
}

// yamlItem is the YAML representation of an item.
type yamlItem struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	Kind        string  `yaml:"kind"`
	Takeable    bool    `yaml:"takeable"`
}

// Messages used when a content file leaves them out.
const (
	DefaultFarewell       = "Thank you for playing!  Good bye!"
	DefaultTimeoutMessage = "You ran out of time."
)

// Content is a parsed content file: the world definition plus the text
// the console shows around play.
type Content struct {
	Title          string
	Intro          string
	Farewell       string
	TimeoutMessage string
	StartRoom      string

	file yamlContentFile
}

// LoadContentFromFile reads and parses a content YAML file.
//
// Precondition: path must point to a readable YAML content file.
// Postcondition: Returns parsed Content or a non-nil error.
func LoadContentFromFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	return LoadContentFromBytes(data)
}

// LoadContentFromBytes parses content from YAML bytes. The world itself
// is constructed, and fully validated, by Build.
//
// Precondition: data must be valid YAML conforming to the content schema.
// Postcondition: Returns parsed Content or a non-nil error.
func LoadContentFromBytes(data []byte) (*Content, error) {
	var file yamlContentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing content YAML: %w", err)
	}
	if file.StartRoom == "" {
		return nil, fmt.Errorf("start_room must not be empty")
	}
	if len(file.Rooms) == 0 {
		return nil, fmt.Errorf("content must contain at least one room")
	}
	c := &Content{
		Title:          strings.TrimSpace(file.Game.Title),
		Intro:          strings.TrimSpace(file.Game.Intro),
		Farewell:       strings.TrimSpace(file.Game.Farewell),
		TimeoutMessage: strings.TrimSpace(file.Game.Timeout),
		StartRoom:      file.StartRoom,
		file:           file,
	}
	if c.Farewell == "" {
		c.Farewell = DefaultFarewell
	}
	if c.TimeoutMessage == "" {
		c.TimeoutMessage = DefaultTimeoutMessage
	}
	return c, nil
}

// Build constructs a fresh World and the player's starting inventory.
// Each call returns independent state, so one Content can seed many games.
//
// Postcondition: Returns a validated World and a non-nil inventory, or a non-nil error.
func (c *Content) Build() (*World, *inventory.Container, error) {
	b := NewBuilder()

	// Phase one: every room, with its items.
	for _, yr := range c.file.Rooms {
		room := b.AddRoom(yr.ID, yr.Name, strings.TrimSpace(yr.Description), yr.Locked)
		if room == nil {
			continue
		}
		for k, v := range yr.Properties {
			room.Properties[k] = v
		}
		if err := addItems(room.Container, yr.Items); err != nil {
			return nil, nil, fmt.Errorf("room %q: %w", yr.ID, err)
		}
	}

	// Phase two: exits, recorded by ID and resolved by Build.
	for _, yr := range c.file.Rooms {
		for key := range yr.Exits {
			if !Direction(key).IsCompass() {
				return nil, nil, fmt.Errorf("room %q: exit key %q is not a compass direction", yr.ID, key)
			}
		}
		for _, dir := range Directions {
			if target := yr.Exits[string(dir)]; target != "" {
				b.Link(yr.ID, dir, target)
			}
		}
	}

	w, err := b.Build(c.StartRoom)
	if err != nil {
		return nil, nil, fmt.Errorf("building world: %w", err)
	}

	inv := inventory.NewContainer()
	if err := addItems(inv, c.file.Player.Items); err != nil {
		return nil, nil, fmt.Errorf("player inventory: %w", err)
	}
	return w, inv, nil
}

// addItems converts and inserts item definitions into c.
func addItems(c *inventory.Container, defs []yamlItem) error {
	for _, yi := range defs {
		kind, ok := inventory.ParseKind(yi.Kind)
		if !ok {
			return fmt.Errorf("item %q: unknown kind %q", yi.Name, yi.Kind)
		}
		item, err := inventory.NewItem(yi.Name, strings.TrimSpace(yi.Description), yi.Weight, kind, yi.Takeable)
		if err != nil {
			return fmt.Errorf("item %q: %w", yi.Name, err)
		}
		if err := c.AddItem(item); err != nil {
			return err
		}
	}
	return nil
}
