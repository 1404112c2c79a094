package world

import (
	"math"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Константы рельефа
const (
	baseHeight      = 5   // Базовая высота поверхности
	heightAmplitude = 2.0 // Амплитуда волн рельефа по каждой оси
	heightFrequency = 0.1 // Частота волн рельефа
	soilDepth       = 3   // Толщина слоя земли под поверхностью
)

// WorldGenerator генерирует ландшафт мира.
// Генератор — чистая функция без состояния: одинаковые координаты
// всегда дают байт-в-байт одинаковые данные, что требуется для
// воспроизводимых миров и тестов.
type WorldGenerator struct{}

// NewWorldGenerator создаёт новый генератор мира
func NewWorldGenerator() *WorldGenerator {
	return &WorldGenerator{}
}

// SurfaceHeight возвращает высоту поверхности для мировой колонки (x, z)
func (wg *WorldGenerator) SurfaceHeight(worldX, worldZ int) int {
	return int(math.Floor(baseHeight +
		heightAmplitude*math.Sin(float64(worldX)*heightFrequency) +
		heightAmplitude*math.Cos(float64(worldZ)*heightFrequency)))
}

// BlockAt возвращает блок для мировой позиции в ещё не созданном чанке:
// камень глубоко под поверхностью, земля ближе к ней, трава на поверхности,
// выше — воздух.
func (wg *WorldGenerator) BlockAt(worldX, worldY, worldZ int) block.BlockID {
	height := wg.SurfaceHeight(worldX, worldZ)
	switch {
	case worldY < height-soilDepth:
		return block.StoneBlockID
	case worldY < height:
		return block.DirtBlockID
	case worldY == height:
		return block.GrassBlockID
	default:
		return block.AirBlockID
	}
}

// GenerateChunk генерирует чанк по его координатам
func (wg *WorldGenerator) GenerateChunk(coords vec.Vec2) *Chunk {
	chunk := NewChunk(coords)

	globalStartX := coords.X << 4 // chunkX * 16
	globalStartZ := coords.Z << 4 // chunkZ * 16

	var blocks [BlocksPerChunk]block.BlockID
	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			height := wg.SurfaceHeight(globalStartX+x, globalStartZ+z)
			for y := 0; y < ChunkHeight; y++ {
				var id block.BlockID
				switch {
				case y < height-soilDepth:
					id = block.StoneBlockID
				case y < height:
					id = block.DirtBlockID
				case y == height:
					id = block.GrassBlockID
				default:
					id = block.AirBlockID
				}
				blocks[BlockIndex(x, y, z)] = id
			}
		}
	}

	chunk.Blocks = blocks
	return chunk
}
