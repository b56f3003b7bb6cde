package systems

import (
	"fmt"

	"github.com/OdatNurd/ChronoSneak-sub000/internal/domain"
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

// Машина состояний патруля охранника:
// не начат -> ожидание/поворот -> движение -> (остановлен навсегда).

// BindGuards разрешает ссылки охранников на точки маршрута, проверяет
// конфигурацию патруля, ставит охранников на спавн и считает начальные
// конусы зрения. Вызывается один раз после конструирования уровня;
// любая ошибка фатальна для загрузки.
func BindGuards(lvl *domain.Level) error {
	for _, e := range lvl.Guards() {
		if err := bindGuard(lvl, e); err != nil {
			return err
		}
	}
	return nil
}

func bindGuard(lvl *domain.Level, e *domain.Entity) error {
	g := e.Guard

	spawn := lvl.EntityByID(g.SpawnID)
	if spawn == nil {
		return fmt.Errorf("guard %q: spawn waypoint %q does not exist", e.ID, g.SpawnID)
	}

	g.Patrol = make([]*domain.Entity, 0, len(g.PatrolIDs))
	for _, id := range g.PatrolIDs {
		wp := lvl.EntityByID(id)
		if wp == nil {
			return fmt.Errorf("guard %q: patrol waypoint %q does not exist", e.ID, id)
		}
		g.Patrol = append(g.Patrol, wp)
	}

	// Каждый отрезок маршрута обязан быть осевым: спавн -> первая точка,
	// все соседние пары и, при зацикленном патруле, последняя -> первая.
	prev := spawn
	for _, wp := range g.Patrol {
		if !prev.MapPos.Equals(wp.MapPos) {
			if _, ok := domain.DirectionBetween(prev.MapPos, wp.MapPos); !ok {
				return fmt.Errorf("guard %q: patrol leg %q -> %q is not axis aligned",
					e.ID, prev.ID, wp.ID)
			}
		}
		prev = wp
	}
	if g.Loop && len(g.Patrol) > 1 {
		last := g.Patrol[len(g.Patrol)-1]
		first := g.Patrol[0]
		if !last.MapPos.Equals(first.MapPos) {
			if _, ok := domain.DirectionBetween(last.MapPos, first.MapPos); !ok {
				return fmt.Errorf("guard %q: patrol loop leg %q -> %q is not axis aligned",
					e.ID, last.ID, first.ID)
			}
		}
	}

	g.Spawn = spawn
	e.SetMapPos(spawn.MapPos, lvl.TileSize)
	RecomputeCone(lvl, e)

	logger.WithComponent("patrol").
		WithField("guard_id", e.ID).
		WithField("waypoints", len(g.Patrol)).
		Debug("Guard bound to patrol route")
	return nil
}

// GuardStep продвигает патруль охранника на один ход
func GuardStep(lvl *domain.Level, e *domain.Entity) {
	g := e.Guard
	log := logger.WithComponent("patrol").WithField("guard_id", e.ID)

	if g.PatrolIndex == domain.PatrolHalted {
		return
	}

	// Ленивый старт патруля: первая целевая точка выбирается на первом ходу
	if g.PatrolIndex == domain.PatrolNotStarted {
		if len(g.Patrol) == 0 {
			return // маршрута нет - охранник стоит на посту
		}
		g.PatrolIndex = 0
		g.Target = g.Patrol[0]
	}

	if g.Target == nil {
		return
	}

	// Уже на целевой точке (например, спавн совпадает с первой точкой)
	if e.MapPos.Equals(g.Target.MapPos) {
		advancePatrol(lvl, e)
		return
	}

	dir, ok := domain.DirectionBetween(e.MapPos, g.Target.MapPos)
	if !ok {
		// Осевая валидация прошла при привязке; сюда можно попасть только
		// если точку маршрута сдвинули на лету. Останавливаемся навсегда.
		log.WithField("target_id", g.Target.ID).
			Warn("Guard target is not axis aligned, halting patrol")
		haltPatrol(lvl, e)
		return
	}

	// Поворот занимает целый ход; движения при этом нет
	if e.Facing != dir {
		e.Facing = e.Facing.TurnToward(dir, e.Handedness)
		RecomputeCone(lvl, e)
		return
	}

	dest := e.MapPos.Translate(dir.Delta())

	// Геометрия непроходима или выход за карту - патруль остановлен навсегда
	tile := lvl.TileAt(dest)
	if tile == nil || tile.BlocksMovement {
		log.WithField("dest", dest).Warn("Guard movement blocked by geometry, halting patrol")
		haltPatrol(lvl, e)
		return
	}

	// Блокирующим сущностям даем один шанс самоустраниться (двери
	// открываются триггером), затем перепроверяем.
	// TODO: should go through an action queue
	blocked := false
	for _, other := range lvl.EntitiesAtMap(dest) {
		if other == e || !other.BlocksActorMovement() {
			continue
		}
		other.Trigger(lvl, e)
		if other.BlocksActorMovement() {
			blocked = true
		}
	}
	if blocked {
		// Пропускаем ход без остановки: цель не меняется, попробуем снова
		log.WithField("dest", dest).Debug("Guard movement blocked by entity, skipping turn")
		return
	}

	e.SetMapPos(dest, lvl.TileSize)
	RecomputeCone(lvl, e)

	if e.MapPos.Equals(g.Target.MapPos) {
		advancePatrol(lvl, e)
	}
}

// advancePatrol переводит охранника на следующую точку маршрута:
// инкремент, при зацикленном патруле - возврат к нулевой точке,
// иначе в конце маршрута - остановка навсегда.
func advancePatrol(lvl *domain.Level, e *domain.Entity) {
	g := e.Guard
	g.PatrolIndex++
	if g.PatrolIndex >= len(g.Patrol) {
		if g.Loop {
			g.PatrolIndex = 0
		} else {
			haltPatrol(lvl, e)
			return
		}
	}
	g.Target = g.Patrol[g.PatrolIndex]
}

func haltPatrol(lvl *domain.Level, e *domain.Entity) {
	e.Guard.PatrolIndex = domain.PatrolHalted
	e.Guard.Target = nil
	lvl.PushEvent(domain.Event{
		Type:    domain.EventGuardHalted,
		Source:  e.ID,
		Message: "patrol halted",
	})
}
