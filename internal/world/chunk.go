package world

import (
	"sync"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Размеры чанка — часть внешнего контракта движка.
const (
	ChunkSize      = 16 // Ширина и глубина чанка в блоках
	ChunkHeight    = 24 // Высота чанка в блоках; мир по вертикали конечен
	BlocksPerChunk = ChunkSize * ChunkSize * ChunkHeight
)

// Chunk представляет участок мира 16x24x16 блоков.
// Чанк владеет плотным массивом блоков и не более чем одним производным
// геометрическим батчем. Инвариант: после любой мутации массива батч
// сбрасывается либо перестраивается до следующей отрисовки.
type Chunk struct {
	Coords vec.Vec2 // Координаты чанка в мире

	// Blocks — плотный массив блоков, индекс y*16*16 + z*16 + x
	Blocks [BlocksPerChunk]block.BlockID

	ChangeCounter int          // Счетчик изменений с момента последней перестройки/сохранения
	Mu            sync.RWMutex // Мьютекс для безопасного доступа
}

// NewChunk создаёт новый пустой чанк с указанными координатами
func NewChunk(coords vec.Vec2) *Chunk {
	return &Chunk{
		Coords: coords,
	}
}

// BlockIndex возвращает индекс блока в плотном массиве по локальным координатам
func BlockIndex(x, y, z int) int {
	return y*ChunkSize*ChunkSize + z*ChunkSize + x
}

// GetBlock возвращает ID блока по локальным координатам.
// Вертикальная координата вне [0, ChunkHeight) разрешается в воздух:
// мир по высоте жёстко ограничен и никогда не «заворачивается».
// Горизонтальные координаты обязаны лежать в [0, ChunkSize) — вызывающая
// сторона резолвит мировые координаты во владеющий чанк заранее.
func (c *Chunk) GetBlock(x, y, z int) block.BlockID {
	if y < 0 || y >= ChunkHeight {
		return block.AirBlockID
	}

	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.Blocks[BlockIndex(x, y, z)]
}

// SetBlock устанавливает блок по локальным координатам.
// Вертикальная координата вне диапазона игнорируется (no-op).
func (c *Chunk) SetBlock(x, y, z int, id block.BlockID) {
	if y < 0 || y >= ChunkHeight {
		return
	}

	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Blocks[BlockIndex(x, y, z)] = id
	c.ChangeCounter++
}

// SnapshotBlocks возвращает копию массива блоков для сериализации/меширования
func (c *Chunk) SnapshotBlocks() [BlocksPerChunk]block.BlockID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.Blocks
}

// HasChanges возвращает true, если в чанке есть несохранённые изменения
func (c *Chunk) HasChanges() bool {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.ChangeCounter > 0
}

// ClearChanges сбрасывает счетчик изменений
func (c *Chunk) ClearChanges() {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.ChangeCounter = 0
}
