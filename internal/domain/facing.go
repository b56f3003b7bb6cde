package domain

// Facing - направление взгляда в градусах. Экранные координаты (Y растет вниз):
// 0 = восток (+X), 90 = юг (+Y), 180 = запад, 270 = север.
// Диагональных направлений нет, только четыре стороны света.
type Facing int

const (
	FacingEast  Facing = 0
	FacingSouth Facing = 90
	FacingWest  Facing = 180
	FacingNorth Facing = 270
)

// Handedness определяет, в какую сторону актор разворачивается на 180 градусов
type Handedness string

const (
	HandRight Handedness = "right"
	HandLeft  Handedness = "left"
)

func (f Facing) Valid() bool {
	switch f {
	case FacingEast, FacingSouth, FacingWest, FacingNorth:
		return true
	}
	return false
}

// Delta возвращает единичный вектор направления в координатах карты
func (f Facing) Delta() Point {
	switch f {
	case FacingEast:
		return Point{X: 1}
	case FacingSouth:
		return Point{Y: 1}
	case FacingWest:
		return Point{X: -1}
	case FacingNorth:
		return Point{Y: -1}
	}
	return Point{}
}

// TurnCW возвращает направление после поворота на 90 по часовой
func (f Facing) TurnCW() Facing {
	return Facing((int(f) + 90) % 360)
}

// TurnCCW возвращает направление после поворота на 90 против часовой
func (f Facing) TurnCCW() Facing {
	return Facing((int(f) + 270) % 360)
}

// TurnToward делает ОДИН шаг поворота на 90 градусов в сторону want.
// Выбирается кратчайшее вращение; при развороте на 180 сторона
// определяется handedness (по умолчанию - направо).
func (f Facing) TurnToward(want Facing, hand Handedness) Facing {
	diff := (int(want) - int(f) + 360) % 360
	switch diff {
	case 0:
		return f
	case 90:
		return f.TurnCW()
	case 270:
		return f.TurnCCW()
	default: // 180
		if hand == HandLeft {
			return f.TurnCCW()
		}
		return f.TurnCW()
	}
}

func (f Facing) String() string {
	switch f {
	case FacingEast:
		return "east"
	case FacingSouth:
		return "south"
	case FacingWest:
		return "west"
	case FacingNorth:
		return "north"
	}
	return "invalid"
}

// DirectionBetween возвращает направление от from к to.
// ok == false, если точки совпадают или лежат не на одной оси
// (диагональные отрезки патруля - ошибка конфигурации).
func DirectionBetween(from, to Point) (Facing, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y

	switch {
	case dx == 0 && dy == 0:
		return FacingEast, false
	case dy == 0 && dx > 0:
		return FacingEast, true
	case dy == 0 && dx < 0:
		return FacingWest, true
	case dx == 0 && dy > 0:
		return FacingSouth, true
	case dx == 0 && dy < 0:
		return FacingNorth, true
	}
	return FacingEast, false
}
