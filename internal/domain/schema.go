package domain

// Схемы свойств по видам сущностей. Дефолты вида сливаются с
// авторскими значениями при конструировании (авторские побеждают).

// baseSchema - свойства, общие для всех видов
var baseSchema = Schema{
	"id": {
		Type: PropString,
		// Отложенный дефолт: каждая сущность без явного ID получает свой
		Default: func() any { return GenerateID() },
	},
	"name":   {Type: PropString},
	"facing": {Type: PropInt, Default: 0},
	"handedness": {
		Type:    PropString,
		Enum:    []string{string(HandLeft), string(HandRight)},
		Default: string(HandRight),
	},
	"z": {Type: PropInt, Default: 50},
}

var kindSchemas = map[Kind]Schema{
	KindPlayer:      extendBase(nil),
	KindPlayerStart: extendBase(nil),
	KindWaypoint:    extendBase(nil),
	KindDoor: extendBase(Schema{
		"open":      {Type: PropBool, Default: false},
		"openTime":  {Type: PropInt, Default: -1},
		"closeTime": {Type: PropInt, Default: -1},
	}),
	KindButton: extendBase(Schema{
		"pressed":   {Type: PropBool, Default: false},
		"cycleTime": {Type: PropInt, Default: -1},
		"trigger":   {Type: PropStringList},
	}),
	KindGuard: extendBase(Schema{
		"spawn":      {Type: PropString, Required: true},
		"patrol":     {Type: PropStringList},
		"patrolLoop": {Type: PropBool, Default: false},
		"fov":        {Type: PropInt, Default: DefaultGuardFOV},
	}),
	KindLevelGoal: extendBase(Schema{
		"winLevel": {Type: PropBool, Default: true},
	}),
}

// SchemaFor возвращает схему свойств для вида (nil для неизвестного вида)
func SchemaFor(kind Kind) Schema {
	return kindSchemas[kind]
}

func extendBase(extra Schema) Schema {
	s := make(Schema, len(baseSchema)+len(extra))
	for name, spec := range baseSchema {
		s[name] = spec
	}
	for name, spec := range extra {
		s[name] = spec
	}
	return s
}
