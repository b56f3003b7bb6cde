package domain

import "strings"

// Kind - внутренний числовой тег вида сущности
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPlayer
	KindPlayerStart
	KindWaypoint
	KindDoor
	KindButton
	KindGuard
	KindLevelGoal
)

var kindToString = map[Kind]string{
	KindPlayer:      "player",
	KindPlayerStart: "playerStart",
	KindWaypoint:    "waypoint",
	KindDoor:        "door",
	KindButton:      "button",
	KindGuard:       "guard",
	KindLevelGoal:   "levelGoal",
}

var kindStringToKind = map[string]Kind{
	"player":      KindPlayer,
	"playerstart": KindPlayerStart,
	"waypoint":    KindWaypoint,
	"door":        KindDoor,
	"button":      KindButton,
	"guard":       KindGuard,
	"levelgoal":   KindLevelGoal,
}

// String возвращает строковое представление (для логов и дебага)
func (k Kind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "unknown"
}

// ParseKind конвертирует тег типа из данных уровня в Kind.
// Нечувствителен к регистру для надежности.
func ParseKind(s string) Kind {
	if val, ok := kindStringToKind[strings.ToLower(s)]; ok {
		return val
	}
	return KindUnknown
}
