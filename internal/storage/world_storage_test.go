package storage

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/dgraph-io/badger/v3"

	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

func setupTestStorage(t *testing.T) (*WorldStorage, string) {
	// Создаем временную директорию для тестов
	tempDir, err := os.MkdirTemp("", "world-storage-test")
	if err != nil {
		t.Fatalf("Не удалось создать временную директорию: %v", err)
	}

	// Инициализируем хранилище
	storage, err := NewWorldStorage(tempDir)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Не удалось создать хранилище: %v", err)
	}

	return storage, tempDir
}

func cleanupTestStorage(storage *WorldStorage, tempDir string) {
	if storage != nil {
		storage.Close()
	}
	if tempDir != "" {
		os.RemoveAll(tempDir)
	}
}

func TestSaveAndLoadChunk(t *testing.T) {
	storage, tempDir := setupTestStorage(t)
	defer cleanupTestStorage(storage, tempDir)

	// Создаем тестовый чанк
	coords := vec.Vec2{X: 10, Z: 20}
	chunk := world.NewChunk(coords)
	chunk.SetBlock(5, 7, 5, block.StoneBlockID)
	chunk.SetBlock(8, 3, 1, block.GrassBlockID)

	// Сохраняем чанк
	if err := storage.SaveChunk(chunk); err != nil {
		t.Fatalf("Ошибка сохранения чанка: %v", err)
	}

	// Счетчик изменений сбрасывается после сохранения
	if chunk.HasChanges() {
		t.Error("Сохранённый чанк не должен иметь изменений")
	}

	// Загружаем чанк
	loaded, err := storage.LoadChunk(coords)
	if err != nil {
		t.Fatalf("Ошибка загрузки чанка: %v", err)
	}
	if loaded == nil {
		t.Fatal("Сохранённый чанк не найден")
	}

	if loaded.Coords != coords {
		t.Errorf("Ожидались координаты {10,20}, получено {%d,%d}", loaded.Coords.X, loaded.Coords.Z)
	}
	if got := loaded.GetBlock(5, 7, 5); got != block.StoneBlockID {
		t.Errorf("Ожидался StoneBlockID, получен %d", got)
	}
	if got := loaded.GetBlock(8, 3, 1); got != block.GrassBlockID {
		t.Errorf("Ожидался GrassBlockID, получен %d", got)
	}
}

func TestLoadMissingChunk(t *testing.T) {
	storage, tempDir := setupTestStorage(t)
	defer cleanupTestStorage(storage, tempDir)

	// Отсутствующий чанк — nil без ошибки, мир сгенерирует его заново
	loaded, err := storage.LoadChunk(vec.Vec2{X: 99, Z: 99})
	if err != nil {
		t.Fatalf("Отсутствующий чанк не должен давать ошибку: %v", err)
	}
	if loaded != nil {
		t.Error("Ожидался nil для отсутствующего чанка")
	}
}

func TestSaveAndLoadWorld(t *testing.T) {
	storage, tempDir := setupTestStorage(t)
	defer cleanupTestStorage(storage, tempDir)

	// Мир с правками: сохраняются только изменённые чанки
	src := world.NewManager()
	src.EnsureAround(vec.Vec3Float{X: 8, Y: 10, Z: 8})
	src.SetBlockWorld(1, 20, 2, block.BrickBlockID)
	src.SetBlockWorld(-5, 15, -5, block.SandBlockID)

	if err := storage.SaveWorld(src); err != nil {
		t.Fatalf("Ошибка сохранения мира: %v", err)
	}

	dst := world.NewManager()
	loaded, err := storage.LoadWorld(dst)
	if err != nil {
		t.Fatalf("Ошибка загрузки мира: %v", err)
	}
	if loaded != 2 {
		t.Errorf("Ожидалась загрузка 2 изменённых чанков, получено %d", loaded)
	}

	if got := dst.BlockAt(1, 20, 2); got != block.BrickBlockID {
		t.Errorf("Ожидался BrickBlockID, получен %d", got)
	}
	if got := dst.BlockAt(-5, 15, -5); got != block.SandBlockID {
		t.Errorf("Ожидался SandBlockID, получен %d", got)
	}
}

func TestLoadWorldCorruptChunkLeavesManagerUntouched(t *testing.T) {
	storage, tempDir := setupTestStorage(t)
	defer cleanupTestStorage(storage, tempDir)

	// Валидный чанк в хранилище
	chunk := world.NewChunk(vec.Vec2{X: 0, Z: 0})
	chunk.SetBlock(1, 1, 1, block.StoneBlockID)
	if err := storage.SaveChunk(chunk); err != nil {
		t.Fatalf("Ошибка сохранения чанка: %v", err)
	}

	// Подкладываем повреждённую запись под соседний ключ
	bad, err := json.Marshal(ChunkRecord{CX: 5, CZ: 5, Blocks: make([]int, 10)})
	if err != nil {
		t.Fatalf("Ошибка сериализации записи: %v", err)
	}
	err = storage.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chunkKey(vec.Vec2{X: 5, Z: 5}), bad)
	})
	if err != nil {
		t.Fatalf("Ошибка записи в BadgerDB: %v", err)
	}

	// Ошибка декодирования не должна частично заселить мир
	m := world.NewManager()
	loaded, err := storage.LoadWorld(m)
	if err == nil {
		t.Fatal("Повреждённый чанк должен давать ошибку загрузки")
	}
	if loaded != 0 {
		t.Errorf("При ошибке загрузки не должно быть загруженных чанков, получено %d", loaded)
	}
	if m.ChunkCount() != 0 {
		t.Errorf("Менеджер должен остаться нетронутым, загружено %d чанков", m.ChunkCount())
	}
}

func TestWorldMetaPersistence(t *testing.T) {
	storage, tempDir := setupTestStorage(t)
	defer cleanupTestStorage(storage, tempDir)

	meta, err := storage.EnsureMeta()
	if err != nil {
		t.Fatalf("Ошибка создания метаданных: %v", err)
	}

	// Повторное чтение возвращает тот же идентификатор мира
	again, err := storage.EnsureMeta()
	if err != nil {
		t.Fatalf("Ошибка чтения метаданных: %v", err)
	}
	if meta.ID != again.ID {
		t.Errorf("Идентификатор мира должен сохраняться: %s != %s", meta.ID, again.ID)
	}

	meta.Ticks = 12345
	if err := storage.UpdateMeta(meta); err != nil {
		t.Fatalf("Ошибка обновления метаданных: %v", err)
	}

	again, err = storage.EnsureMeta()
	if err != nil {
		t.Fatalf("Ошибка чтения метаданных: %v", err)
	}
	if again.Ticks != 12345 {
		t.Errorf("Ожидалось 12345 тиков, получено %d", again.Ticks)
	}
}
