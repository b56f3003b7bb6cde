package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevel_WellFormed(t *testing.T) {
	ts := testTileset(t)
	lvl, err := NewLevel("ok", 4, 4, borderGrid(4, 4), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1})})
	require.NoError(t, err)
	assert.Equal(t, 4, lvl.Width)
	assert.NotNil(t, lvl.PlayerStart())
}

func TestNewLevel_GridLengthMismatch(t *testing.T) {
	ts := testTileset(t)
	_, err := NewLevel("bad", 4, 4, make([]int, 15), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid length")
}

func TestNewLevel_UnknownTileID(t *testing.T) {
	ts := testTileset(t)
	grid := borderGrid(4, 4)
	grid[5] = 99
	_, err := NewLevel("bad", 4, 4, grid, ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tile id 99")
}

func TestNewLevel_PlayerStartCount(t *testing.T) {
	ts := testTileset(t)

	// Ни одного маркера старта
	_, err := NewLevel("none", 4, 4, borderGrid(4, 4), ts, DefaultTileSize, nil)
	require.Error(t, err)

	// Два маркера
	second := mustEntity(t, KindPlayerStart, Point{X: 2, Y: 2}, Properties{"id": "start2"})
	_, err = NewLevel("two", 4, 4, borderGrid(4, 4), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1}), second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playerStart")
}

func TestNewLevel_DuplicateEntityID(t *testing.T) {
	ts := testTileset(t)
	a := mustEntity(t, KindWaypoint, Point{X: 1, Y: 1}, Properties{"id": "dup"})
	b := mustEntity(t, KindWaypoint, Point{X: 2, Y: 2}, Properties{"id": "dup"})
	_, err := NewLevel("bad", 4, 4, borderGrid(4, 4), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1}), a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate entity id "dup"`)
}

func TestTileAt_Bounds(t *testing.T) {
	ts := testTileset(t)
	lvl, err := NewLevel("ok", 4, 6, borderGrid(4, 6), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1})})
	require.NoError(t, err)

	assert.Nil(t, lvl.TileAt(Point{X: -1, Y: 0}))
	assert.Nil(t, lvl.TileAt(Point{X: 4, Y: 0}))
	assert.Nil(t, lvl.TileAt(Point{X: 0, Y: 6}))

	// Границы по осям проверяются раздельно: (1,5) валидна для 4x6,
	// хотя Y превышает ширину
	assert.NotNil(t, lvl.TileAt(Point{X: 1, Y: 5}))

	wall := lvl.TileAt(Point{X: 0, Y: 0})
	require.NotNil(t, wall)
	assert.True(t, wall.BlocksMovement)
}

func TestEntitiesAt_WorldSpace(t *testing.T) {
	ts := testTileset(t)
	wp := mustEntity(t, KindWaypoint, Point{X: 2, Y: 1}, Properties{"id": "w1"})
	lvl, err := NewLevel("ok", 4, 4, borderGrid(4, 4), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1}), wp})
	require.NoError(t, err)

	found := lvl.EntitiesAt(Point{X: 2 * DefaultTileSize, Y: 1 * DefaultTileSize})
	require.Len(t, found, 1)
	assert.Equal(t, "w1", found[0].ID)

	assert.Empty(t, lvl.EntitiesAt(Point{X: 2, Y: 1}), "map coords are not world coords")
	assert.Len(t, lvl.EntitiesAtMap(Point{X: 2, Y: 1}), 1)
}

func TestEntitiesWithIDs_MissingNotFatal(t *testing.T) {
	ts := testTileset(t)
	wp := mustEntity(t, KindWaypoint, Point{X: 2, Y: 1}, Properties{"id": "w1"})
	lvl, err := NewLevel("ok", 4, 4, borderGrid(4, 4), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1}), wp})
	require.NoError(t, err)

	found := lvl.EntitiesWithIDs("w1", "ghost")
	require.Len(t, found, 1)
	assert.Equal(t, "w1", found[0].ID)
}

func TestIsBlockedAt(t *testing.T) {
	ts := testTileset(t)
	door := mustEntity(t, KindDoor, Point{X: 2, Y: 1}, Properties{"id": "d1"})
	lvl, err := NewLevel("ok", 4, 4, borderGrid(4, 4), ts, DefaultTileSize,
		[]*Entity{startMarker(t, Point{X: 1, Y: 1}), door})
	require.NoError(t, err)

	assert.True(t, lvl.IsBlockedAt(Point{X: 0, Y: 0}), "wall tile")
	assert.True(t, lvl.IsBlockedAt(Point{X: -1, Y: 2}), "out of bounds is blocking")
	assert.True(t, lvl.IsBlockedAt(Point{X: 2, Y: 1}), "closed door blocks")
	assert.False(t, lvl.IsBlockedAt(Point{X: 1, Y: 2}), "open floor")

	door.Door.Open = true
	assert.False(t, lvl.IsBlockedAt(Point{X: 2, Y: 1}), "open door does not block")
}
