package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// Solid возвращает true
func (b *StoneBehavior) Solid() bool {
	return true
}

// Tile возвращает единый тайл для всех граней
func (b *StoneBehavior) Tile(role block.FaceRole) block.Tile {
	return block.Tile{U: 3, V: 0}
}
