package systems

import (
	"math"

	"github.com/OdatNurd/ChronoSneak-sub000/internal/domain"
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

// Конус зрения охранника: развертка лучей по сетке пересечений.
// Конус - производное кешируемое значение; пересчитывается только при
// смене позиции или направления взгляда, а не на каждый кадр отрисовки.

// RecomputeCone пересчитывает полигон зрения охранника. Результат -
// веер: глаз, затем по одной точке попадания на каждый угол развертки
// [facing - fov/2, facing + fov/2] с шагом VisionSweepStep.
func RecomputeCone(lvl *domain.Level, e *domain.Entity) {
	g := e.Guard
	if g == nil {
		return
	}

	// Глаз - центр тайла в мировых координатах
	half := lvl.TileSize / 2
	ex := float64(e.WorldPos.X + half)
	ey := float64(e.WorldPos.Y + half)

	from := int(e.Facing) - g.FOV/2
	to := int(e.Facing) + g.FOV/2

	cone := make([]domain.Point, 0, (to-from)/domain.VisionSweepStep+2)
	cone = append(cone, domain.Point{X: int(math.Round(ex)), Y: int(math.Round(ey))})

	for deg := from; deg <= to; deg += domain.VisionSweepStep {
		hx, hy := castRay(lvl, ex, ey, deg)
		cone = append(cone, domain.Point{X: int(math.Round(hx)), Y: int(math.Round(hy))})
	}

	g.Cone = cone

	logger.WithComponent("vision").
		WithField("guard_id", e.ID).
		WithField("facing", e.Facing).
		WithField("rays", len(cone)-1).
		Debug("Vision cone recomputed")
}

// castRay пускает луч из (ex, ey) под углом deg (градусы, экранные
// координаты: 0 = восток, 90 = юг) и возвращает точку попадания.
//
// Луч маршируется двумя независимыми проходами - по горизонтальным и
// вертикальным линиям сетки; итог - более близкое из двух терминальных
// пересечений (сравнение по квадрату расстояния, корень не нужен).
// Осепараллельные лучи пропускают "свой" проход целиком: тангенс не
// определен на 90/270, котангенс - на 0/180.
func castRay(lvl *domain.Level, ex, ey float64, deg int) (float64, float64) {
	d := ((deg % 360) + 360) % 360
	rad := float64(d) * math.Pi / 180
	sin := math.Sin(rad)
	cos := math.Cos(rad)
	size := float64(lvl.TileSize)

	bestSet := false
	var bestX, bestY, bestDist float64

	consider := func(x, y float64) {
		dx := x - ex
		dy := y - ey
		dist := dx*dx + dy*dy
		if !bestSet || dist < bestDist {
			bestSet = true
			bestX, bestY, bestDist = x, y, dist
		}
	}

	// Проход по горизонтальным линиям сетки (y = k * size).
	// Горизонтальный луч (0/180) их не пересекает.
	if d != 0 && d != 180 {
		down := d < 180 // Y растет вниз
		row := math.Floor(ey / size)

		var y, stepY float64
		if down {
			y = (row + 1) * size
			stepY = size
		} else {
			y = row * size
			stepY = -size
		}

		// Уравнение прямой через точку: x = ex + (y - ey) * ctg
		cot := cos / sin
		for {
			x := ex + (y-ey)*cot
			tileX := int(math.Floor(x / size))
			tileY := int(math.Floor(y / size))
			if !down {
				tileY-- // тайл над линией
			}
			tile := lvl.TileAt(domain.Point{X: tileX, Y: tileY})
			if tile == nil || tile.BlocksMovement {
				consider(x, y)
				break
			}
			y += stepY
		}
	}

	// Проход по вертикальным линиям сетки (x = k * size).
	// Вертикальный луч (90/270) их не пересекает.
	if d != 90 && d != 270 {
		right := d < 90 || d > 270
		col := math.Floor(ex / size)

		var x, stepX float64
		if right {
			x = (col + 1) * size
			stepX = size
		} else {
			x = col * size
			stepX = -size
		}

		tan := sin / cos
		for {
			y := ey + (x-ex)*tan
			tileX := int(math.Floor(x / size))
			if !right {
				tileX-- // тайл слева от линии
			}
			tileY := int(math.Floor(y / size))
			tile := lvl.TileAt(domain.Point{X: tileX, Y: tileY})
			if tile == nil || tile.BlocksMovement {
				consider(x, y)
				break
			}
			x += stepX
		}
	}

	if !bestSet {
		// Оба прохода пропущены быть не могут: любой угол пересекает
		// хотя бы одно семейство линий
		return ex, ey
	}
	return bestX, bestY
}

// ConeContains проверяет, лежит ли точка внутри полигона конуса
// (четно-нечетное правило). Используется движком для события
// "игрок замечен"; на состояние мира не влияет.
func ConeContains(poly []domain.Point, p domain.Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		a := poly[i]
		b := poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := float64(b.X-a.X)*float64(p.Y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
			if float64(p.X) < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
