package storage

import (
	"encoding/json"
	"fmt"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// ChunkRecord — переносимое представление одного чанка: координаты и
// полный развёрнутый массив блоков. Геометрия не сохраняется никогда —
// она производная и перестраивается лениво после загрузки.
type ChunkRecord struct {
	CX     int   `json:"cx"`
	CZ     int   `json:"cz"`
	Blocks []int `json:"blocks"`
}

// WorldSnapshot — переносимое представление всего мира.
// Без заголовка версии и без сжатия: формат многословный, но переносимый.
type WorldSnapshot struct {
	Chunks []ChunkRecord `json:"chunks"`
}

// EncodeChunk преобразует чанк в переносимую запись
func EncodeChunk(chunk *world.Chunk) ChunkRecord {
	blocks := chunk.SnapshotBlocks()

	flat := make([]int, world.BlocksPerChunk)
	for i, id := range blocks {
		flat[i] = int(id)
	}
	return ChunkRecord{
		CX:     chunk.Coords.X,
		CZ:     chunk.Coords.Z,
		Blocks: flat,
	}
}

// DecodeChunk восстанавливает чанк из переносимой записи.
// Повреждённые данные (неверная длина массива, неизвестный ID блока) —
// единственное место, где уместен жёсткий отказ: лучше ошибка загрузки,
// чем чтение за границами массива или тихая порча мира.
func DecodeChunk(rec ChunkRecord) (*world.Chunk, error) {
	if len(rec.Blocks) != world.BlocksPerChunk {
		return nil, fmt.Errorf("чанк (%d,%d): длина массива блоков %d, ожидалось %d",
			rec.CX, rec.CZ, len(rec.Blocks), world.BlocksPerChunk)
	}

	chunk := world.NewChunk(vec.Vec2{X: rec.CX, Z: rec.CZ})
	for i, v := range rec.Blocks {
		if v < 0 || v > int(block.MaxBlockID) {
			return nil, fmt.Errorf("чанк (%d,%d): недопустимый ID блока %d по индексу %d",
				rec.CX, rec.CZ, v, i)
		}
		chunk.Blocks[i] = block.BlockID(v)
	}
	return chunk, nil
}

// Save сериализует все загруженные чанки мира в переносимые байты
func Save(m *world.Manager) ([]byte, error) {
	snapshot := WorldSnapshot{}
	for _, coords := range m.LoadedCoords() {
		chunk := m.GetChunk(coords)
		if chunk == nil {
			continue
		}
		snapshot.Chunks = append(snapshot.Chunks, EncodeChunk(chunk))
	}

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации мира: %w", err)
	}
	return data, nil
}

// Load восстанавливает мир из переносимых байтов в указанный менеджер.
// При любой ошибке менеджер остаётся нетронутым; решение об откате
// к пустому миру принимает вызывающая сторона.
func Load(data []byte, m *world.Manager) error {
	var snapshot WorldSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("ошибка десериализации мира: %w", err)
	}

	chunks := make([]*world.Chunk, 0, len(snapshot.Chunks))
	for _, rec := range snapshot.Chunks {
		chunk, err := DecodeChunk(rec)
		if err != nil {
			return err
		}
		chunks = append(chunks, chunk)
	}

	for _, chunk := range chunks {
		m.PutChunk(chunk)
	}
	return nil
}
