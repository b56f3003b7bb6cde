package leveldata

import (
	"fmt"
	"sort"

	"github.com/OdatNurd/ChronoSneak-sub000/internal/domain"
)

// Явный реестр конструкторов: тег типа из данных уровня -> фабрика.
// Заполняется один раз при старте; динамического поиска символов нет.

// Constructor создает сущность из позиции карты и записи свойств
type Constructor func(pos domain.Point, props domain.Properties, tileSize int) (*domain.Entity, error)

var registry = map[string]Constructor{}

// Register добавляет фабрику для тега типа. Повторная регистрация
// тега - ошибка программиста, паникуем сразу.
func Register(tag string, fn Constructor) {
	if _, dup := registry[tag]; dup {
		panic(fmt.Sprintf("leveldata: constructor for %q already registered", tag))
	}
	registry[tag] = fn
}

// RegisteredTags возвращает известные теги (для сообщений об ошибках)
func RegisteredTags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func kindConstructor(kind domain.Kind) Constructor {
	return func(pos domain.Point, props domain.Properties, tileSize int) (*domain.Entity, error) {
		return domain.NewEntity(kind, pos, props, tileSize)
	}
}

func init() {
	Register("player", kindConstructor(domain.KindPlayer))
	Register("playerStart", kindConstructor(domain.KindPlayerStart))
	Register("waypoint", kindConstructor(domain.KindWaypoint))
	Register("door", kindConstructor(domain.KindDoor))
	Register("button", kindConstructor(domain.KindButton))
	Register("guard", kindConstructor(domain.KindGuard))
	Register("levelGoal", kindConstructor(domain.KindLevelGoal))
}
