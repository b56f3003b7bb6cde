package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnToward(t *testing.T) {
	cases := []struct {
		name string
		from Facing
		want Facing
		hand Handedness
		next Facing
	}{
		{"already facing", FacingEast, FacingEast, HandRight, FacingEast},
		{"quarter cw", FacingEast, FacingSouth, HandRight, FacingSouth},
		{"quarter ccw", FacingEast, FacingNorth, HandRight, FacingNorth},
		{"about-face right-handed", FacingEast, FacingWest, HandRight, FacingSouth},
		{"about-face left-handed", FacingEast, FacingWest, HandLeft, FacingNorth},
		{"about-face from north", FacingNorth, FacingSouth, HandRight, FacingEast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.next, tc.from.TurnToward(tc.want, tc.hand))
		})
	}
}

func TestDirectionBetween(t *testing.T) {
	a := Point{X: 2, Y: 2}

	dir, ok := DirectionBetween(a, Point{X: 5, Y: 2})
	assert.True(t, ok)
	assert.Equal(t, FacingEast, dir)

	dir, ok = DirectionBetween(a, Point{X: 2, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, FacingNorth, dir)

	// Диагональ - не осевое направление
	_, ok = DirectionBetween(a, Point{X: 4, Y: 4})
	assert.False(t, ok)

	// Совпадающие точки
	_, ok = DirectionBetween(a, a)
	assert.False(t, ok)
}

func TestPointHelpers(t *testing.T) {
	p := Point{X: 3, Y: 4}
	assert.Equal(t, Point{X: 96, Y: 128}, p.Scale(32))
	assert.Equal(t, Point{X: 4, Y: 3}, p.TranslateXY(1, -1))
	assert.Equal(t, 25, Point{}.DistanceSquaredTo(p))
	assert.Equal(t, Point{X: 2, Y: 2}, p.Clamp(0, 0, 2, 2))
}
