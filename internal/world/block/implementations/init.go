package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// RegisterAll регистрирует все стандартные поведения блоков
func RegisterAll() {
	block.Register(block.AirBlockID, &AirBehavior{})
	block.Register(block.GrassBlockID, &GrassBehavior{})
	block.Register(block.DirtBlockID, &DirtBehavior{})
	block.Register(block.StoneBlockID, &StoneBehavior{})
	block.Register(block.SandBlockID, &SandBehavior{})
	block.Register(block.WoodBlockID, &WoodBehavior{})
	block.Register(block.BrickBlockID, &BrickBehavior{})
}

func init() {
	RegisterAll()
}
