package mesh

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Размер сетки текстурного атласа в тайлах
const (
	AtlasCols = 4
	AtlasRows = 4
)

// UVRect задаёт прямоугольник текстурных координат одного тайла атласа
type UVRect struct {
	U0, V0 float32
	U1, V1 float32
}

// tileUV возвращает UV-прямоугольник тайла атласа
func tileUV(tile block.Tile) UVRect {
	du := float32(1) / AtlasCols
	dv := float32(1) / AtlasRows
	u0 := float32(tile.U) * du
	v0 := float32(tile.V) * dv
	return UVRect{U0: u0, V0: v0, U1: u0 + du, V1: v0 + dv}
}

// faceUV возвращает UV-прямоугольник для грани блока с учётом её роли.
// Незарегистрированный блок получает нулевой тайл; до этого не доходит,
// пока грани эмитятся только для известных твёрдых блоков.
func faceUV(id block.BlockID, role block.FaceRole) UVRect {
	behavior, exists := block.Get(id)
	if !exists {
		return tileUV(block.Tile{})
	}
	return tileUV(behavior.Tile(role))
}
