package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// GrassBehavior реализует поведение блока травы.
// Трава — единственный блок базового набора с тремя различными тайлами:
// зелёный верх, переходная боковина и земля снизу.
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "Grass"
}

// Solid возвращает true
func (b *GrassBehavior) Solid() bool {
	return true
}

// Tile выбирает тайл атласа по роли грани
func (b *GrassBehavior) Tile(role block.FaceRole) block.Tile {
	switch role {
	case block.FaceTop:
		return block.Tile{U: 0, V: 0}
	case block.FaceBottom:
		return block.Tile{U: 2, V: 0} // низ травы — обычная земля
	default:
		return block.Tile{U: 1, V: 0}
	}
}
