package mesh

import (
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// airSampler имитирует мир без загруженных соседей: всё разрешается в воздух
func airSampler(x, y, z int) block.BlockID {
	return block.AirBlockID
}

// stoneSampler имитирует мир, целиком заполненный камнем
func stoneSampler(x, y, z int) block.BlockID {
	return block.StoneBlockID
}

func TestMesherIsolatedBlock(t *testing.T) {
	// Одиночный блок в окружении воздуха даёт ровно 6 граней
	ms := NewMesher()
	var blocks [world.BlocksPerChunk]block.BlockID
	blocks[world.BlockIndex(8, 10, 8)] = block.StoneBlockID

	batch := ms.Build(vec.Vec2{X: 0, Z: 0}, &blocks, airSampler)
	require.NotNil(t, batch)
	assert.Equal(t, 6, batch.FaceCount)
	assert.Len(t, batch.Positions, 6*4*3, "4 вершины по xyz на грань")
	assert.Len(t, batch.Normals, 6*4*3)
	assert.Len(t, batch.UVs, 6*4*2)
	assert.Len(t, batch.Indices, 6*6, "2 треугольника по 3 индекса на грань")
}

func TestMesherFullyEnclosed(t *testing.T) {
	// Чанк, залитый камнем и окружённый камнем со всех сторон,
	// не даёт ни одной грани: внутренность никогда не рисуется
	ms := NewMesher()
	var blocks [world.BlocksPerChunk]block.BlockID
	for i := range blocks {
		blocks[i] = block.StoneBlockID
	}

	batch := ms.Build(vec.Vec2{X: 0, Z: 0}, &blocks, stoneSampler)
	assert.Nil(t, batch, "Полностью закрытый чанк не должен давать геометрии")
}

func TestMesherEmptyChunk(t *testing.T) {
	// Пустой чанк — нет батча, это не ошибка
	ms := NewMesher()
	var blocks [world.BlocksPerChunk]block.BlockID

	assert.Nil(t, ms.Build(vec.Vec2{X: 0, Z: 0}, &blocks, airSampler))
}

func TestMesherOpenEdgePolicy(t *testing.T) {
	// Блок на кромке x=0 при незагруженном соседнем чанке обязан дать
	// открытую грань в сторону -X
	ms := NewMesher()
	var blocks [world.BlocksPerChunk]block.BlockID
	blocks[world.BlockIndex(0, 5, 3)] = block.StoneBlockID

	batch := ms.Build(vec.Vec2{X: 0, Z: 0}, &blocks, airSampler)
	require.NotNil(t, batch)
	assert.Equal(t, 6, batch.FaceCount)

	found := false
	for i := 0; i < len(batch.Normals); i += 3 {
		if batch.Normals[i] == -1 {
			found = true
			break
		}
	}
	assert.True(t, found, "Грань в сторону незагруженного соседа должна быть открыта")
}

func TestMesherInternalCulling(t *testing.T) {
	// Два соседних блока скрывают смежную пару граней: 12 - 2 = 10
	ms := NewMesher()
	var blocks [world.BlocksPerChunk]block.BlockID
	blocks[world.BlockIndex(5, 5, 5)] = block.StoneBlockID
	blocks[world.BlockIndex(6, 5, 5)] = block.DirtBlockID

	batch := ms.Build(vec.Vec2{X: 0, Z: 0}, &blocks, airSampler)
	require.NotNil(t, batch)
	assert.Equal(t, 10, batch.FaceCount)
}

func TestMesherCrossChunkCulling(t *testing.T) {
	// Загруженный сосед закрывает грань на кромке чанка
	m := world.NewManager()

	a := world.NewChunk(vec.Vec2{X: 0, Z: 0})
	a.SetBlock(15, 5, 0, block.StoneBlockID)
	b := world.NewChunk(vec.Vec2{X: 1, Z: 0})
	b.SetBlock(0, 5, 0, block.StoneBlockID)
	m.PutChunk(a)
	m.PutChunk(b)

	ms := NewMesher()
	batch := ms.BuildChunk(m, vec.Vec2{X: 0, Z: 0})
	require.NotNil(t, batch)
	assert.Equal(t, 5, batch.FaceCount, "Грань +X закрыта блоком соседнего чанка")
}

func TestMesherWorldPositionOffset(t *testing.T) {
	// Вершины лежат в мировом пространстве: центр ячейки ± 0.5
	ms := NewMesher()
	var blocks [world.BlocksPerChunk]block.BlockID
	blocks[world.BlockIndex(0, 0, 0)] = block.StoneBlockID

	batch := ms.Build(vec.Vec2{X: 1, Z: -1}, &blocks, airSampler)
	require.NotNil(t, batch)

	// Мировая позиция ячейки: (16, 0, -16)
	for i := 0; i < len(batch.Positions); i += 3 {
		assert.InDelta(t, 16, batch.Positions[i], 0.5)
		assert.InDelta(t, 0, batch.Positions[i+1], 0.5)
		assert.InDelta(t, -16, batch.Positions[i+2], 0.5)
	}
}

func TestMesherAtlasRoleSelection(t *testing.T) {
	// Трава различает верх/бок/низ; верхняя грань использует тайл (0,0)
	ms := NewMesher()
	var blocks [world.BlocksPerChunk]block.BlockID
	blocks[world.BlockIndex(8, 10, 8)] = block.GrassBlockID

	batch := ms.Build(vec.Vec2{X: 0, Z: 0}, &blocks, airSampler)
	require.NotNil(t, batch)

	du := float32(1) / AtlasCols
	topRect := tileUV(block.Tile{U: 0, V: 0})
	sideRect := tileUV(block.Tile{U: 1, V: 0})
	bottomRect := tileUV(block.Tile{U: 2, V: 0})
	assert.Equal(t, du, topRect.U1-topRect.U0)

	// По одной грани на верх и низ, четыре боковых
	top, side, bottom := 0, 0, 0
	for face := 0; face < batch.FaceCount; face++ {
		u0 := minFaceU(batch, face)
		switch u0 {
		case topRect.U0:
			top++
		case sideRect.U0:
			side++
		case bottomRect.U0:
			bottom++
		}
	}
	assert.Equal(t, 1, top)
	assert.Equal(t, 4, side)
	assert.Equal(t, 1, bottom)
}

// minFaceU возвращает минимальную U-координату вершин грани
func minFaceU(batch *Batch, face int) float32 {
	base := face * 4 * 2
	min := batch.UVs[base]
	for i := 1; i < 4; i++ {
		if u := batch.UVs[base+i*2]; u < min {
			min = u
		}
	}
	return min
}
