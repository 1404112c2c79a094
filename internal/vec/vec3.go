package vec

// Vec3 представляет трехмерный вектор с целочисленными координатами (координаты блока)
type Vec3 struct {
	X int
	Y int
	Z int
}

// ToChunkCoords преобразует мировые координаты блока в координаты чанка.
// Сдвиг вправо даёт floor-деление на 16, поэтому отрицательные координаты
// корректно попадают в чанки с отрицательными индексами.
func (v Vec3) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Z: v.Z >> 4}
}

// LocalInChunk возвращает локальные координаты блока внутри его чанка.
// Маска 0xF всегда даёт значение в [0,16), в том числе для отрицательных координат.
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: v.X & 0xF, Y: v.Y, Z: v.Z & 0xF}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}
