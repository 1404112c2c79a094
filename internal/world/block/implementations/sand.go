package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// SandBehavior реализует поведение блока песка
type SandBehavior struct{}

// ID возвращает идентификатор блока
func (b *SandBehavior) ID() block.BlockID {
	return block.SandBlockID
}

// Name возвращает имя блока
func (b *SandBehavior) Name() string {
	return "Sand"
}

// Solid возвращает true
func (b *SandBehavior) Solid() bool {
	return true
}

// Tile возвращает единый тайл для всех граней
func (b *SandBehavior) Tile(role block.FaceRole) block.Tile {
	return block.Tile{U: 0, V: 1}
}
