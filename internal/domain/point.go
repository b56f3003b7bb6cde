package domain

// Point - целочисленная точка. Используется в двух системах координат:
// карта (индексы тайлов) и мир (пиксели); мир = карта * размер тайла.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Translate возвращает новую точку со смещением (Go передает структуры по значению)
func (p Point) Translate(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// TranslateXY возвращает новую точку со смещением по отдельным осям
func (p Point) TranslateXY(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Scale возвращает точку, умноженную на множитель (карта -> мир)
func (p Point) Scale(factor int) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Point) DistanceSquaredTo(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Clamp возвращает точку, ограниченную прямоугольником [minX..maxX, minY..maxY]
func (p Point) Clamp(minX, minY, maxX, maxY int) Point {
	out := p
	if out.X < minX {
		out.X = minX
	}
	if out.X > maxX {
		out.X = maxX
	}
	if out.Y < minY {
		out.Y = minY
	}
	if out.Y > maxY {
		out.Y = maxY
	}
	return out
}
