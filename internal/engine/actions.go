package engine

import "strings"

// Action - внутренний числовой идентификатор действия игрока.
// Разрешенное действие продвигает симуляцию ровно на один ход.
type Action uint8

const (
	ActionUnknown Action = iota
	ActionMove
	ActionInteract
	ActionWait
)

var actionStringToCmd = map[string]Action{
	"MOVE":     ActionMove,
	"INTERACT": ActionInteract,
	"WAIT":     ActionWait,
}

var actionCmdToString = map[Action]string{
	ActionMove:     "MOVE",
	ActionInteract: "INTERACT",
	ActionWait:     "WAIT",
}

// ParseAction конвертирует строку в Action (нечувствительно к регистру)
func ParseAction(s string) Action {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов)
func (a Action) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
