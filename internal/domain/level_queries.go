package domain

import (
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

// Пространственные запросы и пошаговый драйвер уровня.

// TileAt возвращает тайл в клетке карты p или nil (за границами карты
// тайлов нет; вызывающие, как правило, трактуют nil как блокирующий).
func (l *Level) TileAt(p Point) *Tile {
	if !l.InBounds(p) {
		return nil
	}
	return l.Tileset.TileByID(l.Grid[p.Y*l.Width+p.X])
}

// EntitiesAt возвращает сущности, чья мировая позиция совпадает с p
// (мировые координаты). Порядок - порядок регистрации.
func (l *Level) EntitiesAt(p Point) []*Entity {
	var out []*Entity
	for _, e := range l.Entities {
		if e.WorldPos.Equals(p) {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesAtMap - то же самое для координат карты
func (l *Level) EntitiesAtMap(p Point) []*Entity {
	return l.EntitiesAt(p.Scale(l.TileSize))
}

// EntitiesWithIDs разрешает список ID в сущности. Отсутствующие ID
// не фатальны: пишем предупреждение, решает вызывающий.
func (l *Level) EntitiesWithIDs(ids ...string) []*Entity {
	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		if e := l.byID[id]; e != nil {
			out = append(out, e)
		}
	}
	if len(out) < len(ids) {
		logger.WithComponent("level").
			WithField("requested", ids).
			WithField("found", len(out)).
			Warn("Some entity IDs did not resolve")
	}
	return out
}

// IsBlockedAt сообщает, заблокирована ли клетка карты p: тайл блокирует
// движение (или отсутствует), либо блокирует любая сущность в клетке.
func (l *Level) IsBlockedAt(p Point) bool {
	tile := l.TileAt(p)
	if tile == nil || tile.BlocksMovement {
		return true
	}
	for _, e := range l.EntitiesAtMap(p) {
		if e.BlocksActorMovement() {
			return true
		}
	}
	return false
}

// TriggerEntitiesWithIDs разрешает ids и активирует каждую найденную
// сущность от имени activator. Пустой список - no-op.
func (l *Level) TriggerEntitiesWithIDs(ids []string, activator *Entity) {
	if len(ids) == 0 {
		return
	}
	for _, e := range l.EntitiesWithIDs(ids...) {
		e.Trigger(l, activator)
	}
}

// StepAllEntities - единственная точка синхронизации хода: вызывает
// Step у каждой сущности строго в порядке регистрации, один раз за ход.
//
// Порядок шага - порядок регистрации, НЕ причинный: сущность, которая
// триггерит другую, стоящую раньше в списке, увидит эффект ее Step
// только на следующем ходу. Это документированное свойство порядка,
// а не гарантия топологической корректности.
//
// Не реентерабельно: Step/Trigger сущностей не должны вызывать
// StepAllEntities сами.
func (l *Level) StepAllEntities() {
	for _, e := range l.Entities {
		e.Step(l)
	}
}
