package engine

import (
	"math"
	"sync/atomic"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/physics"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"

	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// Action — действие с целевым блоком на текущий тик
type Action int

const (
	ActionNone Action = iota
	ActionBreak
	ActionPlace
)

// Input — весь ввод на один тик, поставляемый внешним слоем
// (распознавание жестов/устройств — не забота ядра)
type Input struct {
	Move     physics.MoveIntent // Намерение движения и взгляда
	Action   Action             // Действие с целевым блоком
	Selected block.BlockID      // Блок, выбранный во внешнем UI для установки
}

// Session — явный контекст движка: владеет миром, геометрией, телом игрока
// и продвигает симуляцию по тикам. Никакого глобального состояния.
type Session struct {
	World      *world.Manager
	Mesher     *mesh.Mesher
	Batches    *mesh.Registry
	Integrator *physics.Integrator
	Body       *physics.Body

	// Счётчики читаются горутиной экспортера метрик параллельно
	// с циклом тиков, поэтому атомарные
	ticks      atomic.Uint64
	edits      atomic.Uint64
	meshBuilds atomic.Uint64
}

// NewSession создаёт сессию движка с пустым миром и телом на спауне
func NewSession() *Session {
	integrator := physics.NewIntegrator()
	return &Session{
		World:      world.NewManager(),
		Mesher:     mesh.NewMesher(),
		Batches:    mesh.NewRegistry(),
		Integrator: integrator,
		Body:       integrator.NewBody(),
	}
}

// Refresh догружает чанки вокруг опорной позиции и строит геометрию
// для вновь созданных. Уже загруженные чанки и их батчи не трогаются,
// поэтому повторный вызов из того же места ничего не перестраивает.
func (s *Session) Refresh(ref vec.Vec3Float) {
	for _, coords := range s.World.EnsureAround(ref) {
		s.rebuildBatch(coords)
	}
}

// RebuildBatches перестраивает геометрию всех загруженных чанков.
// Нужен после загрузки мира из хранилища: такие чанки появляются
// в обход стриминга и батчей ещё не имеют.
func (s *Session) RebuildBatches() {
	for _, coords := range s.World.LoadedCoords() {
		s.Batches.Invalidate(coords)
		s.rebuildBatch(coords)
	}
}

// EditBlock устанавливает блок по мировым координатам и синхронно
// перестраивает геометрию затронутого чанка. Правка незагруженного чанка
// или вне вертикального диапазона тихо игнорируется.
// Перестройка блокирующая, поэтому две правки подряд не могут наблюдать
// чужое промежуточное состояние.
func (s *Session) EditBlock(worldX, worldY, worldZ int, id block.BlockID) {
	coords, ok := s.World.SetBlockWorld(worldX, worldY, worldZ, id)
	if !ok {
		return
	}

	s.edits.Add(1)
	s.Batches.Invalidate(coords)
	s.rebuildBatch(coords)

	// Грань на кромке чанка открывает/закрывает грань соседа
	local := vec.Vec3{X: worldX, Y: worldY, Z: worldZ}.LocalInChunk()
	if local.X == 0 {
		s.rebuildLoadedBatch(vec.Vec2{X: coords.X - 1, Z: coords.Z})
	}
	if local.X == world.ChunkSize-1 {
		s.rebuildLoadedBatch(vec.Vec2{X: coords.X + 1, Z: coords.Z})
	}
	if local.Z == 0 {
		s.rebuildLoadedBatch(vec.Vec2{X: coords.X, Z: coords.Z - 1})
	}
	if local.Z == world.ChunkSize-1 {
		s.rebuildLoadedBatch(vec.Vec2{X: coords.X, Z: coords.Z + 1})
	}
}

// rebuildBatch строит батч чанка и регистрирует его для отрисовки
func (s *Session) rebuildBatch(coords vec.Vec2) {
	batch := s.Mesher.BuildChunk(s.World, coords)
	s.Batches.Put(coords, batch)
	s.meshBuilds.Add(1)

	if batch != nil {
		logging.Trace("Батч чанка (%d,%d): %d граней", coords.X, coords.Z, batch.FaceCount)
	}
}

// rebuildLoadedBatch перестраивает батч только для загруженного чанка
func (s *Session) rebuildLoadedBatch(coords vec.Vec2) {
	if s.World.GetChunk(coords) == nil {
		return
	}
	s.Batches.Invalidate(coords)
	s.rebuildBatch(coords)
}

// Tick продвигает симуляцию на один фиксированный шаг:
// физика → действие с блоком → стриминг чанков.
func (s *Session) Tick(input Input) {
	s.ticks.Add(1)

	s.Integrator.Step(s.Body, input.Move, s.World.IsSolidAt, physics.FixedDT)

	if input.Action != ActionNone {
		s.applyAction(input)
	}

	s.Refresh(s.Body.Position)
}

// applyAction разрешает цель по лучу взгляда и выполняет действие
func (s *Session) applyAction(input Input) {
	hit, ok := Raycast(s.Body.Position, s.Body.LookDirection(), s.World.IsSolidAt)
	if !ok {
		return
	}

	switch input.Action {
	case ActionBreak:
		s.EditBlock(hit.Block.X, hit.Block.Y, hit.Block.Z, block.AirBlockID)
	case ActionPlace:
		if input.Selected == block.AirBlockID {
			return
		}
		// Нельзя ставить блок в ячейки, занятые телом игрока
		if s.occupiedByBody(hit.Previous) {
			return
		}
		s.EditBlock(hit.Previous.X, hit.Previous.Y, hit.Previous.Z, input.Selected)
	}
}

// occupiedByBody проверяет, пересекает ли ячейка колонку ступни-голова тела
func (s *Session) occupiedByBody(cell vec.Vec3) bool {
	bodyX := int(math.Floor(s.Body.Position.X))
	bodyZ := int(math.Floor(s.Body.Position.Z))
	if cell.X != bodyX || cell.Z != bodyZ {
		return false
	}

	feetY := int(math.Floor(s.Body.Position.Y - physics.EyeHeight))
	headY := int(math.Floor(s.Body.Position.Y + physics.HeadClearance))
	return cell.Y >= feetY && cell.Y <= headY
}

// Ticks возвращает число прошедших тиков симуляции
func (s *Session) Ticks() uint64 {
	return s.ticks.Load()
}

// Stats — снимок счётчиков сессии для экспорта метрик
type Stats struct {
	Ticks         uint64
	LoadedChunks  int
	Generated     uint64
	MeshBuilds    uint64
	Edits         uint64
	Respawns      uint64
	BatchedChunks int
	TotalFaces    int
}

// CollectStats возвращает текущий снимок счётчиков.
// Безопасен для вызова из горутины экспортера параллельно с Tick.
func (s *Session) CollectStats() Stats {
	return Stats{
		Ticks:         s.ticks.Load(),
		LoadedChunks:  s.World.ChunkCount(),
		Generated:     s.World.GeneratedTotal(),
		MeshBuilds:    s.meshBuilds.Load(),
		Edits:         s.edits.Load(),
		Respawns:      s.Integrator.Respawns(),
		BatchedChunks: s.Batches.Count(),
		TotalFaces:    s.Batches.TotalFaces(),
	}
}
