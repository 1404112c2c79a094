package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает имя блока
func (b *DirtBehavior) Name() string {
	return "Dirt"
}

// Solid возвращает true
func (b *DirtBehavior) Solid() bool {
	return true
}

// Tile возвращает единый тайл для всех граней
func (b *DirtBehavior) Tile(role block.FaceRole) block.Tile {
	return block.Tile{U: 2, V: 0}
}
