package vec

import "math"

// Vec3Float представляет трехмерный вектор с плавающими координатами
// (непрерывная позиция тела в мировом пространстве)
type Vec3Float struct {
	X float64
	Y float64
	Z float64
}

// ToBlock возвращает координаты блока, содержащего точку (floor по каждой оси)
func (v Vec3Float) ToBlock() Vec3 {
	return Vec3{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y)),
		Z: int(math.Floor(v.Z)),
	}
}

// Add складывает два вектора
func (v Vec3Float) Add(other Vec3Float) Vec3Float {
	return Vec3Float{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Scale умножает вектор на скаляр
func (v Vec3Float) Scale(s float64) Vec3Float {
	return Vec3Float{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length возвращает длину вектора
func (v Vec3Float) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
