package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/breakfast-run/content"
	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
	"github.com/cory-johannsen/breakfast-run/internal/game/session"
	"github.com/cory-johannsen/breakfast-run/internal/game/world"
)

func newGame(t *testing.T) (*world.World, *session.Player) {
	t.Helper()
	c, err := world.LoadContentFromBytes(content.BreakfastRun)
	require.NoError(t, err)
	w, inv, err := c.Build()
	require.NoError(t, err)
	return w, session.NewPlayer(w.StartRoom(), inv)
}

func TestMove_NoExitLeavesRoomUnchanged(t *testing.T) {
	_, p := newGame(t)
	start := p.Room()

	res := p.Move(world.South)
	assert.Equal(t, session.NoExit, res.Outcome)
	assert.Nil(t, res.Room)
	assert.Same(t, start, p.Room())
}

func TestMove_UnknownDirection(t *testing.T) {
	_, p := newGame(t)
	res := p.Move(world.Direction("sideways"))
	assert.Equal(t, session.NoExit, res.Outcome)
}

func TestMove_LockedThenUnlocked(t *testing.T) {
	w, p := newGame(t)

	require.Equal(t, session.Moved, p.Move(world.North).Outcome)
	hallway := p.Room()
	assert.Equal(t, "hallway", hallway.ID)

	res := p.Move(world.West)
	assert.Equal(t, session.Locked, res.Outcome)
	assert.Equal(t, "bathroom", res.Room.ID)
	assert.Same(t, hallway, p.Room())

	bathroom, ok := w.Room("bathroom")
	require.True(t, ok)
	bathroom.Unlock()

	res = p.Move(world.West)
	assert.Equal(t, session.Moved, res.Outcome)
	assert.Same(t, bathroom, p.Room())
}

func TestMove_CannotLeaveLockedRoom(t *testing.T) {
	_, p := newGame(t)
	p.Room().Lock()

	res := p.Move(world.North)
	assert.Equal(t, session.Locked, res.Outcome)
	assert.Equal(t, "bedroom", p.Room().ID)
}

func TestMove_RunsEntryHook(t *testing.T) {
	w, p := newGame(t)
	hallway, ok := w.Room("hallway")
	require.True(t, ok)
	hallway.OnEnter(func(r *world.Room) string { return "creak" })

	res := p.Move(world.North)
	assert.Equal(t, session.Moved, res.Outcome)
	assert.Equal(t, "creak", res.Message)
}

func TestTake_TakeableItem(t *testing.T) {
	_, p := newGame(t)

	it, err := p.Take("rock")
	require.NoError(t, err)
	assert.Equal(t, "rock", it.Name())
	assert.True(t, p.Inventory().Has("rock"))
	assert.NotContains(t, p.Room().ItemNames(), "rock")
}

func TestTake_NotTakeableChangesNothing(t *testing.T) {
	_, p := newGame(t)
	roomBefore := p.Room().ItemNames()
	invBefore := p.Inventory().ItemNames()

	_, err := p.Take("cubby_hole")
	assert.True(t, errors.Is(err, inventory.ErrItemNotTakeable))
	assert.Equal(t, roomBefore, p.Room().ItemNames())
	assert.Equal(t, invBefore, p.Inventory().ItemNames())
}

func TestTake_Missing(t *testing.T) {
	_, p := newGame(t)
	_, err := p.Take("unicorn")
	assert.True(t, errors.Is(err, inventory.ErrItemNotFound))
}

func TestDrop_DuplicateInRoomChangesNothing(t *testing.T) {
	w, p := newGame(t)
	kitchen, ok := w.Room("kitchen")
	require.True(t, ok)
	grandma, ok := w.Room("grandmas_room")
	require.True(t, ok)

	// Carry the kitchen toaster into a room that already has a toaster.
	pk := session.NewPlayer(kitchen, p.Inventory())
	_, err := pk.Take("toaster")
	require.NoError(t, err)

	pg := session.NewPlayer(grandma, pk.Inventory())
	_, err = pg.Drop("toaster")
	assert.True(t, errors.Is(err, inventory.ErrDuplicateItem))
	assert.True(t, pg.Inventory().Has("toaster"))
}

func TestDropThenTakeRestoresInventory(t *testing.T) {
	_, p := newGame(t)
	_, err := p.Take("rock")
	require.NoError(t, err)
	_, err = p.Take("keys")
	require.NoError(t, err)
	before := p.Inventory().ItemNames()
	roomBefore := p.Room().ItemNames()

	_, err = p.Drop("keys")
	require.NoError(t, err)
	_, err = p.Take("keys")
	require.NoError(t, err)

	assert.Equal(t, before, p.Inventory().ItemNames())
	assert.Equal(t, roomBefore, p.Room().ItemNames())
}

func TestEat_FoodIsConsumed(t *testing.T) {
	w, p := newGame(t)
	holding, ok := w.Room("holding_room")
	require.True(t, ok)
	ph := session.NewPlayer(holding, p.Inventory())

	it, err := ph.Eat("toast")
	require.NoError(t, err)
	assert.Equal(t, "toast", it.Name())
	assert.False(t, holding.Has("toast"))
	assert.False(t, ph.Inventory().Has("toast"))
}

func TestEat_NotEdible(t *testing.T) {
	_, p := newGame(t)
	_, err := p.Eat("clothes")
	assert.True(t, errors.Is(err, session.ErrNotEdible))
	assert.True(t, p.Inventory().Has("clothes"))
}

func TestFind_PrefersInventory(t *testing.T) {
	_, p := newGame(t)
	it, err := p.Find("clothes")
	require.NoError(t, err)
	assert.Equal(t, inventory.KindClothes, it.Kind())

	it, err = p.Find("rock")
	require.NoError(t, err)
	assert.Equal(t, "rock", it.Name())

	_, err = p.Find("ghost")
	assert.True(t, errors.Is(err, inventory.ErrItemNotFound))
}

func TestPropertyItemsHaveSingleOwner(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		_, p := newGame(t)
		names := []string{"rock", "keys", "cubby_hole", "clothes", "ghost"}
		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			name := names[rapid.IntRange(0, len(names)-1).Draw(rt, "name")]
			if rapid.Bool().Draw(rt, "take") {
				_, _ = p.Take(name)
			} else {
				_, _ = p.Drop(name)
			}
			for _, n := range names {
				if p.Room().Has(n) && p.Inventory().Has(n) {
					rt.Fatalf("%q owned by both room and inventory", n)
				}
			}
		}
	})
}
