package domain

// Диспетчеризация поведения по виду сущности. Таблица заполняется
// один раз при старте (пакет systems регистрирует свои обработчики
// в init), после чего Step/Trigger сущности сводятся к поиску в ней.
// Вид без зарегистрированного поведения (маркеры, игрок) - no-op.

// StepFunc вызывается один раз за ход для каждой сущности
type StepFunc func(lvl *Level, e *Entity)

// TriggerFunc доставляет сущности событие активации.
// activator - кто активировал (может быть nil для таймеров).
type TriggerFunc func(lvl *Level, e *Entity, activator *Entity)

type Behavior struct {
	Step    StepFunc
	Trigger TriggerFunc
}

var behaviors = map[Kind]Behavior{}

// RegisterBehavior привязывает поведение к виду сущности.
// Повторная регистрация замещает предыдущую (удобно в тестах).
func RegisterBehavior(kind Kind, b Behavior) {
	behaviors[kind] = b
}

// Step продвигает сущность на один ход
func (e *Entity) Step(lvl *Level) {
	if b, ok := behaviors[e.Kind]; ok && b.Step != nil {
		b.Step(lvl, e)
	}
}

// Trigger доставляет сущности активацию от activator.
// Разветвление триггеров синхронное и в глубину: вложенный Trigger
// может рекурсивно активировать другие сущности до возврата внешнего
// вызова. Циклы в графе триггеров не детектируются.
func (e *Entity) Trigger(lvl *Level, activator *Entity) {
	if b, ok := behaviors[e.Kind]; ok && b.Trigger != nil {
		b.Trigger(lvl, e, activator)
	}
}
