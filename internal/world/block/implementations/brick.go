package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// BrickBehavior реализует поведение блока кирпича
type BrickBehavior struct{}

// ID возвращает идентификатор блока
func (b *BrickBehavior) ID() block.BlockID {
	return block.BrickBlockID
}

// Name возвращает имя блока
func (b *BrickBehavior) Name() string {
	return "Brick"
}

// Solid возвращает true
func (b *BrickBehavior) Solid() bool {
	return true
}

// Tile возвращает единый тайл для всех граней
func (b *BrickBehavior) Tile(role block.FaceRole) block.Tile {
	return block.Tile{U: 3, V: 1}
}
