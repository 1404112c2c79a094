package world

import (
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

func TestChunkCreateAndGetBlock(t *testing.T) {
	coords := vec.Vec2{X: 5, Z: 10}
	chunk := NewChunk(coords)

	// Проверяем координаты
	if chunk.Coords.X != 5 || chunk.Coords.Z != 10 {
		t.Errorf("Ожидались координаты {5,10}, получено {%d,%d}", chunk.Coords.X, chunk.Coords.Z)
	}

	// Проверяем, что блоки инициализированы как пустые
	blockID := chunk.GetBlock(3, 4, 7)
	if blockID != block.AirBlockID {
		t.Errorf("Ожидался пустой блок (AirBlockID), получен %d", blockID)
	}

	// Устанавливаем и проверяем блок
	chunk.SetBlock(3, 4, 7, block.StoneBlockID)
	blockID = chunk.GetBlock(3, 4, 7)
	if blockID != block.StoneBlockID {
		t.Errorf("Ожидался StoneBlockID, получен %d", blockID)
	}
}

func TestChunkVerticalBounds(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})

	// Чтение вне вертикального диапазона разрешается в воздух
	if id := chunk.GetBlock(0, -1, 0); id != block.AirBlockID {
		t.Errorf("Ожидался воздух ниже мира, получен %d", id)
	}
	if id := chunk.GetBlock(0, ChunkHeight, 0); id != block.AirBlockID {
		t.Errorf("Ожидался воздух выше мира, получен %d", id)
	}

	// Запись вне диапазона — no-op
	chunk.SetBlock(0, ChunkHeight, 0, block.StoneBlockID)
	chunk.SetBlock(0, -1, 0, block.StoneBlockID)
	if chunk.HasChanges() {
		t.Error("Запись вне вертикального диапазона не должна менять чанк")
	}
}

func TestChunkChanges(t *testing.T) {
	chunk := NewChunk(vec.Vec2{X: 3, Z: 4})

	// Изначально изменений нет
	if chunk.HasChanges() {
		t.Error("Новый чанк не должен иметь изменений")
	}

	// Добавляем изменение
	chunk.SetBlock(1, 2, 3, block.StoneBlockID)

	if !chunk.HasChanges() {
		t.Error("Чанк должен иметь изменения после SetBlock")
	}
	if chunk.ChangeCounter != 1 {
		t.Errorf("Ожидался 1 счетчик изменений, получено %d", chunk.ChangeCounter)
	}

	// Очищаем изменения
	chunk.ClearChanges()
	if chunk.HasChanges() {
		t.Error("Чанк не должен иметь изменений после ClearChanges")
	}
}

func TestBlockIndexLayout(t *testing.T) {
	// Индексация y*16*16 + z*16 + x
	if idx := BlockIndex(0, 0, 0); idx != 0 {
		t.Errorf("Ожидался индекс 0, получено %d", idx)
	}
	if idx := BlockIndex(1, 0, 0); idx != 1 {
		t.Errorf("Ожидался индекс 1, получено %d", idx)
	}
	if idx := BlockIndex(0, 0, 1); idx != ChunkSize {
		t.Errorf("Ожидался индекс %d, получено %d", ChunkSize, idx)
	}
	if idx := BlockIndex(0, 1, 0); idx != ChunkSize*ChunkSize {
		t.Errorf("Ожидался индекс %d, получено %d", ChunkSize*ChunkSize, idx)
	}
	if idx := BlockIndex(15, 23, 15); idx != BlocksPerChunk-1 {
		t.Errorf("Ожидался индекс %d, получено %d", BlocksPerChunk-1, idx)
	}
}
