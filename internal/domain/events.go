package domain

// EventType - внутренний числовой идентификатор события уровня
type EventType uint8

const (
	EventUnknown EventType = iota
	// EventLevelComplete - цель уровня активирована игроком
	EventLevelComplete
	// EventPlayerSpotted - игрок оказался в конусе зрения охранника
	EventPlayerSpotted
	// EventGuardHalted - патруль охранника остановлен навсегда
	EventGuardHalted
)

func (t EventType) String() string {
	switch t {
	case EventLevelComplete:
		return "LEVEL_COMPLETE"
	case EventPlayerSpotted:
		return "PLAYER_SPOTTED"
	case EventGuardHalted:
		return "GUARD_HALTED"
	}
	return "UNKNOWN"
}

// Event - наблюдаемое извне событие симуляции. События копятся на
// уровне в течение хода; внешний вызывающий забирает их через DrainEvents.
type Event struct {
	Type    EventType `json:"type"`
	Source  string    `json:"source"` // ID сущности-источника
	Win     bool      `json:"win,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Outcome - исход уровня. Выставляется один раз при активации цели.
type Outcome struct {
	Win    bool   `json:"win"`
	GoalID string `json:"goalId"`
}

// PushEvent добавляет событие в очередь уровня
func (l *Level) PushEvent(ev Event) {
	l.Events = append(l.Events, ev)
}

// DrainEvents возвращает накопленные события и очищает очередь
func (l *Level) DrainEvents() []Event {
	evs := l.Events
	l.Events = nil
	return evs
}

// Complete фиксирует исход уровня. Повторные активации цели после
// первой не меняют исход, но событие все равно публикуется.
func (l *Level) Complete(goal *Entity, win bool) {
	if l.Outcome == nil {
		l.Outcome = &Outcome{Win: win, GoalID: goal.ID}
	}
	l.PushEvent(Event{Type: EventLevelComplete, Source: goal.ID, Win: win})
}
