package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaApply_DefaultsFilled(t *testing.T) {
	e, err := NewEntity(KindDoor, Point{X: 1, Y: 1}, Properties{}, DefaultTileSize)
	require.NoError(t, err)

	assert.False(t, e.Door.Open)
	assert.Equal(t, -1, e.Door.OpenTime)
	assert.Equal(t, -1, e.Door.CloseTime)
	assert.NotEmpty(t, e.ID, "deferred id default must be invoked")
	assert.Equal(t, FacingEast, e.Facing)
	assert.Equal(t, HandRight, e.Handedness)
}

func TestSchemaApply_CallerValuesWin(t *testing.T) {
	e, err := NewEntity(KindDoor, Point{}, Properties{
		"id":       "d1",
		"open":     true,
		"openTime": 5,
		"facing":   180,
	}, DefaultTileSize)
	require.NoError(t, err)

	assert.Equal(t, "d1", e.ID)
	assert.True(t, e.Door.Open)
	assert.Equal(t, 5, e.Door.OpenTime)
	assert.Equal(t, FacingWest, e.Facing)
}

func TestSchemaApply_MissingRequired(t *testing.T) {
	// У охранника свойство spawn обязательно
	_, err := NewEntity(KindGuard, Point{}, Properties{"id": "g1"}, DefaultTileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn")
}

func TestSchemaApply_WrongType(t *testing.T) {
	_, err := NewEntity(KindDoor, Point{}, Properties{"open": "yes"}, DefaultTileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")

	_, err = NewEntity(KindButton, Point{}, Properties{"cycleTime": "soon"}, DefaultTileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycleTime")
}

func TestSchemaApply_EnumViolation(t *testing.T) {
	_, err := NewEntity(KindGuard, Point{}, Properties{
		"spawn":      "w1",
		"handedness": "ambidextrous",
	}, DefaultTileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handedness")
}

func TestSchemaApply_InvalidFacing(t *testing.T) {
	_, err := NewEntity(KindWaypoint, Point{}, Properties{"facing": 45}, DefaultTileSize)
	require.Error(t, err)
}

func TestSchemaApply_ListNormalization(t *testing.T) {
	// YAML отдает списки как []any
	e, err := NewEntity(KindButton, Point{}, Properties{
		"trigger": []any{"d1", "d2"},
	}, DefaultTileSize)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, e.Button.Triggers)

	_, err = NewEntity(KindButton, Point{}, Properties{
		"trigger": []any{"d1", 7},
	}, DefaultTileSize)
	require.Error(t, err)
}

func TestSchemaApply_UniqueDefaultIDs(t *testing.T) {
	a, err := NewEntity(KindWaypoint, Point{}, Properties{}, DefaultTileSize)
	require.NoError(t, err)
	b, err := NewEntity(KindWaypoint, Point{}, Properties{}, DefaultTileSize)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewEntity_DerivedWorldPos(t *testing.T) {
	e, err := NewEntity(KindWaypoint, Point{X: 3, Y: 2}, Properties{}, DefaultTileSize)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 3 * DefaultTileSize, Y: 2 * DefaultTileSize}, e.WorldPos)
	assert.Equal(t, DefaultTileSize, e.Width)
	assert.Equal(t, DefaultTileSize, e.Height)
}
