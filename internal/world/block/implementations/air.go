package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// AirBehavior реализует поведение пустого блока
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// Solid возвращает false — воздух не имеет коллизии и не отрисовывается
func (b *AirBehavior) Solid() bool {
	return false
}

// Tile не имеет смысла для воздуха, грани никогда не эмитятся
func (b *AirBehavior) Tile(role block.FaceRole) block.Tile {
	return block.Tile{}
}
