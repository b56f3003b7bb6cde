package domain

import "fmt"

// Level владеет сеткой тайлов, списком сущностей (в порядке регистрации)
// и индексом ID -> сущность. Уровень валидируется один раз и целиком
// при конструировании; частично корректных уровней не бывает.
type Level struct {
	Name   string
	Width  int
	Height int

	// TileSize - размер тайла; мировые координаты = карта * TileSize
	TileSize int

	// Grid - плоская сетка ID тайлов длиной Width*Height (строка за строкой)
	Grid    []int
	Tileset *Tileset

	// Entities - порядок авторской регистрации; он же порядок шага
	Entities []*Entity

	Events  []Event
	Outcome *Outcome

	byID map[string]*Entity
}

// NewLevel конструирует и валидирует уровень. Любое нарушение
// инвариантов - фатальная ошибка загрузки: сетка неверной длины,
// неизвестный ID тайла, не ровно один маркер старта игрока,
// дубликат ID сущности.
func NewLevel(name string, width, height int, grid []int, ts *Tileset, tileSize int, entities []*Entity) (*Level, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("level %q: invalid dimensions %dx%d", name, width, height)
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	if len(grid) != width*height {
		return nil, fmt.Errorf("level %q: grid length %d does not match %dx%d=%d",
			name, len(grid), width, height, width*height)
	}
	if ts == nil {
		return nil, fmt.Errorf("level %q: no tileset", name)
	}
	for i, id := range grid {
		if !ts.HasID(id) {
			return nil, fmt.Errorf("level %q: tile id %d at index %d (%d,%d) is not in tileset %q",
				name, id, i, i%width, i/width, ts.Name)
		}
	}

	l := &Level{
		Name:     name,
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Grid:     grid,
		Tileset:  ts,
		byID:     make(map[string]*Entity, len(entities)),
	}

	starts := 0
	for _, e := range entities {
		if err := l.AddEntity(e); err != nil {
			return nil, fmt.Errorf("level %q: %w", name, err)
		}
		if e.Kind == KindPlayerStart {
			starts++
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("level %q: expected exactly one playerStart marker, found %d", name, starts)
	}

	return l, nil
}

// AddEntity регистрирует сущность в списке и индексе.
// Дубликат ID - ошибка (при загрузке она фатальна).
func (l *Level) AddEntity(e *Entity) error {
	if _, dup := l.byID[e.ID]; dup {
		return fmt.Errorf("duplicate entity id %q", e.ID)
	}
	l.Entities = append(l.Entities, e)
	l.byID[e.ID] = e
	return nil
}

// EntityByID возвращает сущность по ID или nil
func (l *Level) EntityByID(id string) *Entity {
	return l.byID[id]
}

// PlayerStart возвращает маркер старта игрока
func (l *Level) PlayerStart() *Entity {
	for _, e := range l.Entities {
		if e.Kind == KindPlayerStart {
			return e
		}
	}
	return nil
}

// Player возвращает сущность игрока или nil, если он еще не добавлен
func (l *Level) Player() *Entity {
	for _, e := range l.Entities {
		if e.Kind == KindPlayer {
			return e
		}
	}
	return nil
}

// Guards возвращает всех охранников в порядке регистрации
func (l *Level) Guards() []*Entity {
	var out []*Entity
	for _, e := range l.Entities {
		if e.Kind == KindGuard {
			out = append(out, e)
		}
	}
	return out
}

// InBounds проверяет координаты карты по обеим осям раздельно
// (ширина по X, высота по Y)
func (l *Level) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}
