package domain

import "fmt"

// --- КОМПОНЕНТЫ ---

// DoorComponent - состояние двери и таймер автопереключения.
// Countdown == -1 означает, что таймер не взведен.
type DoorComponent struct {
	Open      bool `json:"open"`
	OpenTime  int  `json:"openTime"`  // сколько ходов дверь остается открытой (-1 = навсегда)
	CloseTime int  `json:"closeTime"` // сколько ходов дверь остается закрытой (-1 = навсегда)
	Countdown int  `json:"countdown"`
}

// ButtonComponent - состояние кнопки, таймер автосброса и список
// ID сущностей, которым кнопка рассылает trigger при нажатии.
type ButtonComponent struct {
	Pressed   bool     `json:"pressed"`
	CycleTime int      `json:"cycleTime"` // ходов до автосброса (-1 = никогда)
	Countdown int      `json:"countdown"`
	Triggers  []string `json:"triggers,omitempty"`
}

// GoalComponent - цель уровня
type GoalComponent struct {
	// WinLevel: true - достижение цели означает победу, false - поражение
	WinLevel bool `json:"winLevel"`
}

// GuardComponent - маршрут патруля и производный конус зрения.
// Spawn и Patrol разрешаются из ID один раз при привязке (systems.BindGuards);
// Target и Cone - производные значения, пересчитываемые по ходу патруля.
type GuardComponent struct {
	SpawnID   string   `json:"spawn"`
	PatrolIDs []string `json:"patrolIds,omitempty"`
	Loop      bool     `json:"patrolLoop"`
	FOV       int      `json:"fov"`

	// PatrolIndex: индекс текущей целевой точки;
	// PatrolNotStarted (-1) - патруль не начат, PatrolHalted (-2) - остановлен навсегда
	PatrolIndex int `json:"patrolIndex"`

	Spawn  *Entity   `json:"-"`
	Patrol []*Entity `json:"-"`
	Target *Entity   `json:"-"`

	// Cone - полигон зрения в мировых координатах: глаз, затем по одной
	// точке попадания на каждый угол развертки. Пересчитывается только
	// при смене позиции или направления взгляда.
	Cone []Point `json:"cone,omitempty"`
}

// --- СУЩНОСТЬ ---

// Entity - единое представление любого объекта на карте: тег вида плюс
// набор компонентов (nil - компонент отсутствует). Поведение по видам
// диспетчеризуется через таблицу (см. behavior.go), а не через цепочку
// виртуальных методов.
type Entity struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Name string `json:"name"`

	MapPos   Point `json:"mapPos"`
	WorldPos Point `json:"worldPos"` // производная: MapPos * размер тайла

	Width  int `json:"width"`
	Height int `json:"height"`

	Facing     Facing     `json:"facing"`
	Handedness Handedness `json:"handedness"`
	Priority   int        `json:"priority"` // z-порядок отрисовки

	Props Properties `json:"props,omitempty"`

	// Компоненты (если nil - свойство отсутствует)
	Door   *DoorComponent   `json:"door,omitempty"`
	Button *ButtonComponent `json:"button,omitempty"`
	Guard  *GuardComponent  `json:"guard,omitempty"`
	Goal   *GoalComponent   `json:"goal,omitempty"`
}

// NewEntity конструирует сущность вида kind на позиции карты mapPos.
// props сливаются поверх дефолтов схемы вида и валидируются; любая
// ошибка валидации фатальна для загрузки уровня.
func NewEntity(kind Kind, mapPos Point, props Properties, tileSize int) (*Entity, error) {
	schema := SchemaFor(kind)
	if schema == nil {
		return nil, fmt.Errorf("unknown entity kind %d", kind)
	}

	merged, err := schema.Apply(kind, props)
	if err != nil {
		return nil, err
	}

	id, _ := merged.GetString("id")
	facing := Facing(merged.IntOr("facing", 0))
	if !facing.Valid() {
		return nil, fmt.Errorf("%s %q: property \"facing\": %d is not one of 0/90/180/270", kind, id, facing)
	}

	e := &Entity{
		ID:         id,
		Kind:       kind,
		Name:       merged.StringOr("name", kind.String()),
		MapPos:     mapPos,
		WorldPos:   mapPos.Scale(tileSize),
		Width:      tileSize,
		Height:     tileSize,
		Facing:     facing,
		Handedness: Handedness(merged.StringOr("handedness", string(HandRight))),
		Priority:   merged.IntOr("z", 50),
		Props:      merged,
	}

	switch kind {
	case KindDoor:
		e.Door = &DoorComponent{
			Open:      merged.BoolOr("open", false),
			OpenTime:  merged.IntOr("openTime", -1),
			CloseTime: merged.IntOr("closeTime", -1),
			Countdown: -1,
		}
	case KindButton:
		triggers, _ := merged.GetStringList("trigger")
		e.Button = &ButtonComponent{
			Pressed:   merged.BoolOr("pressed", false),
			CycleTime: merged.IntOr("cycleTime", -1),
			Countdown: -1,
			Triggers:  triggers,
		}
	case KindGuard:
		spawn, _ := merged.GetString("spawn")
		patrol, _ := merged.GetStringList("patrol")
		e.Guard = &GuardComponent{
			SpawnID:     spawn,
			PatrolIDs:   patrol,
			Loop:        merged.BoolOr("patrolLoop", false),
			FOV:         merged.IntOr("fov", DefaultGuardFOV),
			PatrolIndex: PatrolNotStarted,
		}
	case KindLevelGoal:
		e.Goal = &GoalComponent{WinLevel: merged.BoolOr("winLevel", true)}
	}

	return e, nil
}

// BlocksActorMovement сообщает, блокирует ли сущность проход акторов.
// Маркеры (точки патруля, старт игрока, цель уровня) проходимы;
// дверь блокирует только в закрытом состоянии.
func (e *Entity) BlocksActorMovement() bool {
	switch e.Kind {
	case KindPlayer, KindGuard:
		return true
	case KindDoor:
		return !e.Door.Open
	}
	return false
}

// SetMapPos перемещает сущность, поддерживая производную мировую позицию
func (e *Entity) SetMapPos(p Point, tileSize int) {
	e.MapPos = p
	e.WorldPos = p.Scale(tileSize)
}
