package mesh

import (
	"sync"

	"github.com/annel0/voxel-engine/internal/vec"
)

// Registry хранит построенные батчи по координатам чанков.
// Внешний рендерер читает батчи отсюда; устаревший батч считается
// «выброшенным» в момент замены, его утилизация — забота рендерера.
type Registry struct {
	mu      sync.RWMutex
	batches map[vec.Vec2]*Batch
}

// NewRegistry создаёт новый реестр батчей
func NewRegistry() *Registry {
	return &Registry{
		batches: make(map[vec.Vec2]*Batch),
	}
}

// Get возвращает батч чанка или nil, если геометрии нет
func (r *Registry) Get(coords vec.Vec2) *Batch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.batches[coords]
}

// Put сохраняет батч чанка; nil допустим и означает «нечего рисовать»
func (r *Registry) Put(coords vec.Vec2, batch *Batch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if batch == nil {
		delete(r.batches, coords)
		return
	}
	r.batches[coords] = batch
}

// Invalidate сбрасывает батч чанка перед перестройкой
func (r *Registry) Invalidate(coords vec.Vec2) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.batches, coords)
}

// Count возвращает число чанков с геометрией
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.batches)
}

// TotalFaces возвращает суммарное число граней по всем батчам
func (r *Registry) TotalFaces() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, b := range r.batches {
		total += b.FaceCount
	}
	return total
}
