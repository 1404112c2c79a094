package mesh

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// faceDir описывает одно из шести направлений грани: смещение к соседу,
// нормаль, роль для выбора тайла атласа и четыре вершины единичного квада
// относительно центра ячейки. Явная таблица вместо поворотов исключает
// накопление ошибок плавающей точки.
type faceDir struct {
	dx, dy, dz int            // Смещение к соседней ячейке
	normal     [3]float32     // Нормаль грани
	role       block.FaceRole // Роль грани при выборе тайла
	corners    [4][3]float32  // Вершины квада, CCW при взгляде снаружи
}

// faceTable — шесть направлений граней. Порядок вершин даёт правильную
// ориентацию треугольников (base, base+1, base+2) и (base, base+2, base+3).
var faceTable = [6]faceDir{
	{ // +X
		dx: 1, normal: [3]float32{1, 0, 0}, role: block.FaceSide,
		corners: [4][3]float32{
			{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
		},
	},
	{ // -X
		dx: -1, normal: [3]float32{-1, 0, 0}, role: block.FaceSide,
		corners: [4][3]float32{
			{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5},
		},
	},
	{ // +Y — верх
		dy: 1, normal: [3]float32{0, 1, 0}, role: block.FaceTop,
		corners: [4][3]float32{
			{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		},
	},
	{ // -Y — низ
		dy: -1, normal: [3]float32{0, -1, 0}, role: block.FaceBottom,
		corners: [4][3]float32{
			{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5},
		},
	},
	{ // +Z
		dz: 1, normal: [3]float32{0, 0, 1}, role: block.FaceSide,
		corners: [4][3]float32{
			{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
		},
	},
	{ // -Z
		dz: -1, normal: [3]float32{0, 0, -1}, role: block.FaceSide,
		corners: [4][3]float32{
			{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5},
		},
	},
}
