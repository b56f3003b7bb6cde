package domain

import "fmt"

// Tile - статический дескриптор геометрии клетки. Создается один раз
// при сборке тайлсета и никогда не мутирует.
type Tile struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BlocksMovement bool   `json:"blocksMovement"`
}

// Tileset хранит тайлы с индексами по ID и по имени.
// Инвариант: каждый ID тайла, на который ссылаются данные уровня,
// обязан существовать в тайлсете (проверяется в NewLevel).
type Tileset struct {
	Name string

	byID   map[int]*Tile
	byName map[string]*Tile
}

func NewTileset(name string, tiles []Tile) (*Tileset, error) {
	ts := &Tileset{
		Name:   name,
		byID:   make(map[int]*Tile, len(tiles)),
		byName: make(map[string]*Tile, len(tiles)),
	}

	for i := range tiles {
		t := tiles[i]
		if _, dup := ts.byID[t.ID]; dup {
			return nil, fmt.Errorf("tileset %q: duplicate tile id %d", name, t.ID)
		}
		if _, dup := ts.byName[t.Name]; dup {
			return nil, fmt.Errorf("tileset %q: duplicate tile name %q", name, t.Name)
		}
		ts.byID[t.ID] = &t
		ts.byName[t.Name] = &t
	}

	return ts, nil
}

// TileByID возвращает тайл по числовому ID или nil
func (ts *Tileset) TileByID(id int) *Tile {
	return ts.byID[id]
}

// TileByName возвращает тайл по имени или nil
func (ts *Tileset) TileByName(name string) *Tile {
	return ts.byName[name]
}

func (ts *Tileset) HasID(id int) bool {
	_, ok := ts.byID[id]
	return ok
}

func (ts *Tileset) Len() int {
	return len(ts.byID)
}
