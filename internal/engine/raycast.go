package engine

import (
	"github.com/annel0/voxel-engine/internal/vec"
)

// ReachDistance — максимальная дистанция взаимодействия с блоками, блоков
const ReachDistance = 5.0

// raycastStep — шаг дискретизации луча взгляда
const raycastStep = 0.05

// RayHit — результат трассировки луча взгляда
type RayHit struct {
	Block    vec.Vec3 // Первый твёрдый блок на луче
	Previous vec.Vec3 // Последняя пустая ячейка перед ним (место установки)
}

// Raycast шагает вдоль луча из origin в направлении dir и возвращает
// первый твёрдый блок вместе с предшествующей пустой ячейкой.
// Возвращает false, если в пределах ReachDistance твёрдых блоков нет.
func Raycast(origin, dir vec.Vec3Float, solid func(x, y, z int) bool) (RayHit, bool) {
	previous := origin.ToBlock()

	for t := raycastStep; t <= ReachDistance; t += raycastStep {
		point := origin.Add(dir.Scale(t))
		cell := point.ToBlock()
		if cell.Equals(previous) {
			continue
		}

		if solid(cell.X, cell.Y, cell.Z) {
			return RayHit{Block: cell, Previous: previous}, true
		}
		previous = cell
	}

	return RayHit{}, false
}
