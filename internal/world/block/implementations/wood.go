package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// WoodBehavior реализует поведение блока дерева (бревна).
// Торцы бревна (верх и низ) используют тайл с годовыми кольцами,
// боковые грани — кору.
type WoodBehavior struct{}

// ID возвращает идентификатор блока
func (b *WoodBehavior) ID() block.BlockID {
	return block.WoodBlockID
}

// Name возвращает имя блока
func (b *WoodBehavior) Name() string {
	return "Wood"
}

// Solid возвращает true
func (b *WoodBehavior) Solid() bool {
	return true
}

// Tile выбирает тайл атласа по роли грани
func (b *WoodBehavior) Tile(role block.FaceRole) block.Tile {
	if role == block.FaceTop || role == block.FaceBottom {
		return block.Tile{U: 2, V: 1}
	}
	return block.Tile{U: 1, V: 1}
}
