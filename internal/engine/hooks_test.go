package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/breakfast-run/internal/engine"
	"github.com/cory-johannsen/breakfast-run/internal/game/inventory"
	"github.com/cory-johannsen/breakfast-run/internal/game/world"
)

// fixture builds a valid item and panics on invalid input.
func fixture(name, description string, weight float64, kind inventory.Kind, takeable bool) *inventory.Item {
	it, err := inventory.NewItem(name, description, weight, kind, takeable)
	if err != nil {
		panic(err)
	}
	return it
}

func revealWorld(t *testing.T, source string, pie *inventory.Item) *world.World {
	t.Helper()
	b := world.NewBuilder()
	b.AddRoom("hall", "HALL", "A hall.", world.Unlocked)
	pantry := b.AddRoom("pantry", "PANTRY", "A pantry.", world.Unlocked)
	b.AddRoom("stash", "STASH", "Out of sight.", world.Unlocked)
	b.Link("hall", world.North, "pantry")
	pantry.Properties[engine.PropertyReveal] = "pie"
	pantry.Properties[engine.PropertyRevealFrom] = source
	pantry.Properties[engine.PropertyRevealMessage] = "A pie appears."
	w, err := b.Build("hall")
	require.NoError(t, err)

	if pie != nil {
		stash, ok := w.Room("stash")
		require.True(t, ok)
		require.NoError(t, stash.AddItem(pie))
	}
	return w
}

func warmPie() *inventory.Item {
	return fixture("pie", "Warm.", 1, inventory.KindFood, inventory.Takeable)
}

func TestInstallRoomHooks_RevealsOnce(t *testing.T) {
	w := revealWorld(t, "stash", warmPie())
	require.NoError(t, engine.InstallRoomHooks(w))

	pantry, _ := w.Room("pantry")
	stash, _ := w.Room("stash")
	assert.Equal(t, "A pie appears.", pantry.Enter())
	assert.True(t, pantry.Has("pie"))
	assert.False(t, stash.Has("pie"))
	assert.Equal(t, "", pantry.Enter())
}

func TestInstallRoomHooks_UnknownSource(t *testing.T) {
	w := revealWorld(t, "attic", warmPie())
	err := engine.InstallRoomHooks(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attic")
}

func TestInstallRoomHooks_MissingItem(t *testing.T) {
	w := revealWorld(t, "stash", nil)
	err := engine.InstallRoomHooks(w)
	assert.True(t, errors.Is(err, inventory.ErrItemNotFound))
}

func TestInstallRoomHooks_NotTakeableItem(t *testing.T) {
	w := revealWorld(t, "stash", fixture("pie", "Baked into the shelf.", 1, inventory.KindScenery, inventory.Takeable))
	err := engine.InstallRoomHooks(w)
	assert.True(t, errors.Is(err, inventory.ErrItemNotTakeable))
}

func TestInstallRoomHooks_FailedRevealRetriesOnNextEntry(t *testing.T) {
	w := revealWorld(t, "stash", warmPie())
	require.NoError(t, engine.InstallRoomHooks(w))
	pantry, _ := w.Room("pantry")
	stash, _ := w.Room("stash")

	// A pie already in the pantry blocks the move.
	decoy := fixture("pie", "Cold.", 1, inventory.KindFood, inventory.Takeable)
	require.NoError(t, pantry.AddItem(decoy))
	assert.Equal(t, "", pantry.Enter())
	assert.True(t, stash.Has("pie"))

	_, err := pantry.RemoveItem("pie")
	require.NoError(t, err)
	assert.Equal(t, "A pie appears.", pantry.Enter())
	assert.True(t, pantry.Has("pie"))
	assert.False(t, stash.Has("pie"))
	assert.Equal(t, "", pantry.Enter())
}
