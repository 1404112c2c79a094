package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
)

// WorldStorage — персистентное хранилище мира поверх BadgerDB.
// Каждый чанк лежит под собственным ключом в переносимом формате кодека,
// метаданные мира — под отдельным ключом.
type WorldStorage struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// WorldMeta — метаданные сохранённого мира
type WorldMeta struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	SavedAt   time.Time `json:"saved_at"`
	Ticks     uint64    `json:"ticks"`
}

const metaKey = "meta"

// chunkKey формирует ключ чанка в BadgerDB
func chunkKey(coords vec.Vec2) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d", coords.X, coords.Z))
}

// NewWorldStorage создает новое хранилище мира
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &WorldStorage{
		db:      db,
		dbPath:  dbPath,
		isReady: true,
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	return ws.db.Close()
}

// EnsureMeta возвращает метаданные мира, создавая их при первом открытии
func (ws *WorldStorage) EnsureMeta() (*WorldMeta, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	var meta WorldMeta
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		})
	})

	if err == badger.ErrKeyNotFound {
		meta = WorldMeta{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		}
		if err := ws.writeMeta(&meta); err != nil {
			return nil, err
		}
		return &meta, nil
	}

	if err != nil {
		return nil, fmt.Errorf("ошибка чтения метаданных мира: %w", err)
	}
	return &meta, nil
}

// UpdateMeta записывает метаданные мира
func (ws *WorldStorage) UpdateMeta(meta *WorldMeta) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}
	meta.SavedAt = time.Now().UTC()
	return ws.writeMeta(meta)
}

func (ws *WorldStorage) writeMeta(meta *WorldMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("ошибка сериализации метаданных: %w", err)
	}
	return ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(metaKey), data)
	})
}

// SaveChunk сохраняет один чанк; чанк без изменений пропускается
func (ws *WorldStorage) SaveChunk(chunk *world.Chunk) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	if !chunk.HasChanges() {
		return nil
	}

	data, err := json.Marshal(EncodeChunk(chunk))
	if err != nil {
		return fmt.Errorf("ошибка сериализации чанка: %w", err)
	}

	err = ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chunkKey(chunk.Coords), data)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}

	chunk.ClearChanges()
	return nil
}

// SaveWorld сохраняет все загруженные чанки мира
func (ws *WorldStorage) SaveWorld(m *world.Manager) error {
	for _, coords := range m.LoadedCoords() {
		chunk := m.GetChunk(coords)
		if chunk == nil {
			continue
		}
		if err := ws.SaveChunk(chunk); err != nil {
			return err
		}
	}
	return nil
}

// LoadChunk загружает чанк по координатам.
// Отсутствующий чанк — не ошибка: возвращается nil, и мир генерирует
// его заново.
func (ws *WorldStorage) LoadChunk(coords vec.Vec2) (*world.Chunk, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	var data []byte
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	var rec ChunkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("ошибка десериализации чанка: %w", err)
	}
	return DecodeChunk(rec)
}

// LoadWorld загружает все сохранённые чанки в менеджер мира.
// При любой ошибке декодирования менеджер остаётся нетронутым:
// сначала декодируются все записи, затем они помещаются в мир.
func (ws *WorldStorage) LoadWorld(m *world.Manager) (int, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return 0, fmt.Errorf("хранилище не готово")
	}

	var records []ChunkRecord
	err := ws.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("chunk:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec ChunkRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return fmt.Errorf("ошибка десериализации чанка: %w", err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	chunks := make([]*world.Chunk, 0, len(records))
	for _, rec := range records {
		chunk, err := DecodeChunk(rec)
		if err != nil {
			return 0, err
		}
		chunks = append(chunks, chunk)
	}

	for _, chunk := range chunks {
		m.PutChunk(chunk)
	}
	return len(chunks), nil
}
