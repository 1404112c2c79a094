package world

import (
	"sync"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// RenderDistance — радиус стриминга чанков (расстояние Чебышёва) вокруг
// опорной точки. Часть внешнего контракта движка.
const RenderDistance = 2

// Manager владеет множеством загруженных чанков и ленивой генерацией.
// Чанк создаётся при первом попадании его координат в радиус стриминга
// и в базовом сценарии никогда не выгружается (выгрузка по расстоянию —
// осознанно отложенное решение).
type Manager struct {
	chunks    map[vec.Vec2]*Chunk // Активные чанки, ключ — структурная пара координат
	generator *WorldGenerator     // Генератор мира
	mu        sync.RWMutex        // Мьютекс для доступа к карте чанков

	generatedTotal uint64 // Всего сгенерировано чанков за время жизни
}

// NewManager создаёт новый менеджер мира
func NewManager() *Manager {
	return &Manager{
		chunks:    make(map[vec.Vec2]*Chunk),
		generator: NewWorldGenerator(),
	}
}

// Generator возвращает генератор мира
func (m *Manager) Generator() *WorldGenerator {
	return m.generator
}

// GetChunk возвращает загруженный чанк или nil, если чанк не загружен
func (m *Manager) GetChunk(coords vec.Vec2) *Chunk {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.chunks[coords]
}

// ChunkCount возвращает количество загруженных чанков
func (m *Manager) ChunkCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.chunks)
}

// GeneratedTotal возвращает число чанков, сгенерированных с момента создания
func (m *Manager) GeneratedTotal() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.generatedTotal
}

// LoadedCoords возвращает координаты всех загруженных чанков
func (m *Manager) LoadedCoords() []vec.Vec2 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	coords := make([]vec.Vec2, 0, len(m.chunks))
	for c := range m.chunks {
		coords = append(coords, c)
	}
	return coords
}

// EnsureAround догружает все чанки в квадратном радиусе RenderDistance
// вокруг опорной мировой позиции. Уже загруженные чанки не трогаются,
// поэтому повторный вызов из того же места — no-op.
// Возвращает координаты вновь созданных чанков (для построения геометрии).
func (m *Manager) EnsureAround(ref vec.Vec3Float) []vec.Vec2 {
	center := ref.ToBlock().ToChunkCoords()

	m.mu.Lock()
	defer m.mu.Unlock()

	var created []vec.Vec2
	for cz := center.Z - RenderDistance; cz <= center.Z+RenderDistance; cz++ {
		for cx := center.X - RenderDistance; cx <= center.X+RenderDistance; cx++ {
			coords := vec.Vec2{X: cx, Z: cz}
			if _, exists := m.chunks[coords]; exists {
				continue
			}
			m.chunks[coords] = m.generator.GenerateChunk(coords)
			m.generatedTotal++
			created = append(created, coords)
			logging.Debug("Сгенерирован чанк (%d,%d)", cx, cz)
		}
	}
	return created
}

// BlockAt возвращает блок по мировым координатам.
// Незагруженный чанк и вертикаль вне [0, ChunkHeight) разрешаются в воздух —
// защитный дефолт, а не ошибка.
func (m *Manager) BlockAt(worldX, worldY, worldZ int) block.BlockID {
	if worldY < 0 || worldY >= ChunkHeight {
		return block.AirBlockID
	}

	pos := vec.Vec3{X: worldX, Y: worldY, Z: worldZ}
	chunk := m.GetChunk(pos.ToChunkCoords())
	if chunk == nil {
		return block.AirBlockID
	}

	local := pos.LocalInChunk()
	return chunk.GetBlock(local.X, local.Y, local.Z)
}

// IsSolidAt возвращает true, если блок по мировым координатам твёрдый
func (m *Manager) IsSolidAt(worldX, worldY, worldZ int) bool {
	return block.IsSolid(m.BlockAt(worldX, worldY, worldZ))
}

// SetBlockWorld устанавливает блок по мировым координатам.
// Владеющий чанк резолвится floor-делением, поэтому отрицательные мировые
// координаты корректно попадают в локальный диапазон [0,16).
// Запись в незагруженный чанк или вне вертикального диапазона — no-op:
// редактирование работает best-effort против материализованного мира.
// Возвращает координаты изменённого чанка и признак успеха.
func (m *Manager) SetBlockWorld(worldX, worldY, worldZ int, id block.BlockID) (vec.Vec2, bool) {
	pos := vec.Vec3{X: worldX, Y: worldY, Z: worldZ}
	coords := pos.ToChunkCoords()

	if worldY < 0 || worldY >= ChunkHeight {
		return coords, false
	}

	chunk := m.GetChunk(coords)
	if chunk == nil {
		return coords, false
	}

	local := pos.LocalInChunk()
	chunk.SetBlock(local.X, local.Y, local.Z, id)
	return coords, true
}

// PutChunk помещает готовый чанк в карту мира (используется при загрузке
// сохранённого мира). Существующий чанк с теми же координатами замещается.
func (m *Manager) PutChunk(chunk *Chunk) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chunks[chunk.Coords] = chunk
}
