package systems

import (
	"github.com/OdatNurd/ChronoSneak-sub000/internal/domain"
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

// Поведение триггерных сущностей: кнопки, двери, цель уровня.
// Регистрируется в таблицу диспетчеризации домена при старте.

func init() {
	domain.RegisterBehavior(domain.KindButton, domain.Behavior{
		Step:    ButtonStep,
		Trigger: ButtonTrigger,
	})
	domain.RegisterBehavior(domain.KindDoor, domain.Behavior{
		Step:    DoorStep,
		Trigger: DoorTrigger,
	})
	domain.RegisterBehavior(domain.KindLevelGoal, domain.Behavior{
		Trigger: GoalTrigger,
	})
	domain.RegisterBehavior(domain.KindGuard, domain.Behavior{
		Step: GuardStep,
	})
}

// ButtonTrigger переключает кнопку. Переход released -> pressed всегда
// рассылает trigger связанным сущностям; переход pressed -> released
// разрешен только НЕ-игроку (игрок может нажать, но не сбросить).
// Сброс связанные сущности повторно не активирует.
func ButtonTrigger(lvl *domain.Level, e *domain.Entity, activator *domain.Entity) {
	b := e.Button
	log := logger.WithComponent("button").WithField("entity_id", e.ID)

	if !b.Pressed {
		b.Pressed = true
		if b.CycleTime > 0 {
			b.Countdown = b.CycleTime
		} else {
			b.Countdown = -1
		}
		log.WithField("linked", b.Triggers).Debug("Button pressed, firing linked entities")
		lvl.TriggerEntitiesWithIDs(b.Triggers, e)
		return
	}

	if activator != nil && activator.Kind == domain.KindPlayer {
		log.Debug("Player cannot release a pressed button")
		return
	}

	b.Pressed = false
	b.Countdown = -1
	log.Debug("Button released")
}

// ButtonStep продвигает таймер автосброса
func ButtonStep(lvl *domain.Level, e *domain.Entity) {
	b := e.Button
	if b.Countdown > 0 {
		b.Countdown--
		if b.Countdown == 0 {
			b.Pressed = false
			b.Countdown = -1
			logger.WithComponent("button").
				WithField("entity_id", e.ID).
				Debug("Button auto-released by cycle timer")
		}
	}
}

// DoorTrigger безусловно переключает дверь, кроме одного случая:
// закрытие отклоняется, если клетка двери занята другой сущностью
// (закрыться поверх кого-то нельзя).
func DoorTrigger(lvl *domain.Level, e *domain.Entity, activator *domain.Entity) {
	flipDoor(lvl, e)
}

// flipDoor возвращает false, если переключение было отклонено
func flipDoor(lvl *domain.Level, e *domain.Entity) bool {
	d := e.Door
	log := logger.WithComponent("door").WithField("entity_id", e.ID)

	if d.Open {
		// Закрытие: клетка двери должна быть свободна (сама дверь не в счет)
		for _, other := range lvl.EntitiesAt(e.WorldPos) {
			if other != e {
				log.WithField("occupied_by", other.ID).
					Warn("Door close refused: tile is occupied")
				return false
			}
		}
		d.Open = false
		d.Countdown = timerOrOff(d.CloseTime)
		log.Debug("Door closed")
		return true
	}

	d.Open = true
	d.Countdown = timerOrOff(d.OpenTime)
	log.Debug("Door opened")
	return true
}

// DoorStep продвигает таймер автопереключения. Отклоненное автозакрытие
// (клетка занята) повторяется на следующем ходу.
func DoorStep(lvl *domain.Level, e *domain.Entity) {
	d := e.Door
	if d.Countdown > 0 {
		d.Countdown--
		if d.Countdown == 0 {
			if !flipDoor(lvl, e) {
				d.Countdown = 1
			}
		}
	}
}

// GoalTrigger сигнализирует о завершении уровня, когда цель активирует
// сущность вида player. Это наблюдаемое событие, а не мутация состояния.
func GoalTrigger(lvl *domain.Level, e *domain.Entity, activator *domain.Entity) {
	if activator == nil || activator.Kind != domain.KindPlayer {
		return
	}
	logger.WithComponent("goal").
		WithField("entity_id", e.ID).
		WithField("win", e.Goal.WinLevel).
		Info("Level goal reached")
	lvl.Complete(e, e.Goal.WinLevel)
}

func timerOrOff(turns int) int {
	if turns > 0 {
		return turns
	}
	return -1
}
