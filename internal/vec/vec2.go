package vec

import "math"

// Vec2 представляет целочисленные 2D координаты (координаты чанка в горизонтальной плоскости)
type Vec2 struct {
	X, Z int
}

// ChebyshevDistanceTo вычисляет расстояние Чебышёва до другой точки (в чанках)
func (v Vec2) ChebyshevDistanceTo(other Vec2) int {
	dx := v.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dz := v.Z - other.Z
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}

// DistanceTo вычисляет евклидово расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dz*dz)
}
