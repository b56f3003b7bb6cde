package domain

import (
	"os"
	"testing"

	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitSilent()
	os.Exit(m.Run())
}

// testTileset - тайлсет из пола (0) и стены (1)
func testTileset(t *testing.T) *Tileset {
	t.Helper()
	ts, err := NewTileset("test", []Tile{
		{ID: 0, Name: "floor"},
		{ID: 1, Name: "wall", BlocksMovement: true},
	})
	if err != nil {
		t.Fatalf("tileset: %v", err)
	}
	return ts
}

// borderGrid строит сетку w x h со стенами по периметру
func borderGrid(w, h int) []int {
	grid := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				grid[y*w+x] = 1
			}
		}
	}
	return grid
}

func mustEntity(t *testing.T, kind Kind, pos Point, props Properties) *Entity {
	t.Helper()
	e, err := NewEntity(kind, pos, props, DefaultTileSize)
	if err != nil {
		t.Fatalf("entity %s: %v", kind, err)
	}
	return e
}

func startMarker(t *testing.T, pos Point) *Entity {
	t.Helper()
	return mustEntity(t, KindPlayerStart, pos, Properties{"id": "start"})
}
