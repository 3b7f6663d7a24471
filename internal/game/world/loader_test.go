package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/breakfast-run/content"
	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
)

const validContentYAML = `
game:
  title: "Test Run"
  intro: |
    Wake up.
  farewell: "Bye."
  timeout: "Too late."
start_room: room_a
player:
  items:
    - name: hat
      kind: clothes
      weight: 1
      takeable: true
      description: A hat.
rooms:
  - id: room_a
    name: "ROOM A"
    description: |
      This is room A.
    properties:
      window: "true"
    exits:
      north: room_b
    items:
      - name: rock
        kind: useless
        weight: 10
        takeable: true
        description: A rock.
      - name: table
        kind: scenery
        weight: 150
        takeable: true
        description: A table.
  - id: room_b
    name: "ROOM B"
    description: "This is room B."
    locked: true
    exits:
      south: room_a
`

func TestLoadContentFromBytes_Valid(t *testing.T) {
	c, err := LoadContentFromBytes([]byte(validContentYAML))
	require.NoError(t, err)
	assert.Equal(t, "Test Run", c.Title)
	assert.Equal(t, "Wake up.", c.Intro)
	assert.Equal(t, "Bye.", c.Farewell)
	assert.Equal(t, "Too late.", c.TimeoutMessage)
	assert.Equal(t, "room_a", c.StartRoom)

	w, inv, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, w.RoomCount())
	assert.Equal(t, []string{"hat"}, inv.ItemNames())

	a := w.StartRoom()
	assert.Equal(t, "ROOM A", a.Name)
	assert.Equal(t, "This is room A.", a.Description)
	assert.Equal(t, "true", a.Properties["window"])
	assert.Equal(t, []string{"rock", "table"}, a.ItemNames())

	table, err := a.GetItem("table")
	require.NoError(t, err)
	assert.False(t, table.IsTakeable(), "scenery stays put")

	b, ok := a.NextRoom(North)
	require.True(t, ok)
	assert.True(t, b.IsLocked())
	back, ok := b.NextRoom(South)
	require.True(t, ok)
	assert.Same(t, a, back)
}

func TestContent_BuildReturnsIndependentWorlds(t *testing.T) {
	c, err := LoadContentFromBytes([]byte(validContentYAML))
	require.NoError(t, err)

	w1, _, err := c.Build()
	require.NoError(t, err)
	w2, _, err := c.Build()
	require.NoError(t, err)

	_, err = w1.StartRoom().RemoveItem("rock")
	require.NoError(t, err)
	assert.True(t, w2.StartRoom().Has("rock"))
}

func TestLoadContentFromBytes_DefaultMessages(t *testing.T) {
	c, err := LoadContentFromBytes([]byte(`
start_room: only
rooms:
  - id: only
    name: ONLY
    description: Nothing here.
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultFarewell, c.Farewell)
	assert.Equal(t, DefaultTimeoutMessage, c.TimeoutMessage)
	assert.Empty(t, c.Intro)
}

func TestLoadContentFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadContentFromBytes([]byte("not: [valid yaml"))
	assert.Error(t, err)
}

func TestLoadContentFromBytes_MissingStartRoom(t *testing.T) {
	_, err := LoadContentFromBytes([]byte("rooms:\n  - id: a\n    name: A\n"))
	assert.Error(t, err)
}

func TestLoadContentFromBytes_NoRooms(t *testing.T) {
	_, err := LoadContentFromBytes([]byte("start_room: a\n"))
	assert.Error(t, err)
}

func TestContent_BuildRejectsDanglingExit(t *testing.T) {
	c, err := LoadContentFromBytes([]byte(`
start_room: a
rooms:
  - id: a
    name: A
    exits:
      west: nowhere
`))
	require.NoError(t, err)
	_, _, err = c.Build()
	assert.Error(t, err)
}

func TestContent_BuildRejectsBadExitKey(t *testing.T) {
	c, err := LoadContentFromBytes([]byte(`
start_room: a
rooms:
  - id: a
    name: A
    exits:
      up: a
`))
	require.NoError(t, err)
	_, _, err = c.Build()
	assert.Error(t, err)
}

func TestContent_BuildRejectsDuplicateItem(t *testing.T) {
	c, err := LoadContentFromBytes([]byte(`
start_room: a
rooms:
  - id: a
    name: A
    items:
      - {name: fork, kind: useless, weight: 2, takeable: true}
      - {name: fork, kind: useless, weight: 5, takeable: true}
`))
	require.NoError(t, err)
	_, _, err = c.Build()
	assert.True(t, errors.Is(err, inventory.ErrDuplicateItem))
}

func TestContent_BuildRejectsUnknownKind(t *testing.T) {
	c, err := LoadContentFromBytes([]byte(`
start_room: a
rooms:
  - id: a
    name: A
    items:
      - {name: gun, kind: weapon}
`))
	require.NoError(t, err)
	_, _, err = c.Build()
	assert.Error(t, err)
}

func TestLoadContentFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validContentYAML), 0o644))

	c, err := LoadContentFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "room_a", c.StartRoom)
}

func TestLoadContentFromFile_Missing(t *testing.T) {
	_, err := LoadContentFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultContent(t *testing.T) {
	c, err := LoadContentFromBytes(content.BreakfastRun)
	require.NoError(t, err)
	assert.Equal(t, "Breakfast Run", c.Title)

	w, inv, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 6, w.RoomCount())
	assert.Equal(t, "YOUR BEDROOM", w.StartRoom().Name)
	assert.Equal(t, []string{"clothes"}, inv.ItemNames())

	bathroom, ok := w.Room("bathroom")
	require.True(t, ok)
	assert.True(t, bathroom.IsLocked())

	holding, ok := w.Room("holding_room")
	require.True(t, ok)
	assert.Empty(t, holding.Exits())

	grandma, ok := w.Room("grandmas_room")
	require.True(t, ok)
	hall, ok := grandma.NextRoom(North)
	require.True(t, ok)
	assert.Equal(t, "hallway", hall.ID)
}

func TestDefaultContent_GrandmasRoomItems(t *testing.T) {
	c, err := LoadContentFromBytes(content.BreakfastRun)
	require.NoError(t, err)
	w, _, err := c.Build()
	require.NoError(t, err)

	grandma, ok := w.Room("grandmas_room")
	require.True(t, ok)
	assert.Equal(t, []string{"fork", "toaster", "toaser"}, grandma.ItemNames())

	fork, err := grandma.GetItem("fork")
	require.NoError(t, err)
	assert.Equal(t, 5.0, fork.Weight())
	assert.Equal(t, "A nice fork.", fork.Description())
	assert.True(t, fork.IsTakeable())

	toaster, err := grandma.GetItem("toaster")
	require.NoError(t, err)
	assert.False(t, toaster.IsTakeable())
}
