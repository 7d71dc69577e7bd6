package storage

import (
	"context"
	"sync"

	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/domain/port"
)

// MemoryRunRepository in-memory хранилище замеров текущего процесса
type MemoryRunRepository struct {
	mu      sync.RWMutex
	samples map[entity.BackendID][]entity.RunSample
}

// NewMemoryRunRepository создаёт новое in-memory хранилище
func NewMemoryRunRepository() *MemoryRunRepository {
	return &MemoryRunRepository{
		samples: make(map[entity.BackendID][]entity.RunSample),
	}
}

// Add сохраняет замер
func (r *MemoryRunRepository) Add(ctx context.Context, sample entity.RunSample) error {
	r.mu.Lock()
	r.samples[sample.Backend] = append(r.samples[sample.Backend], sample)
	r.mu.Unlock()

	return nil
}

// List возвращает копию замеров бэкенда
func (r *MemoryRunRepository) List(ctx context.Context, backend entity.BackendID) ([]entity.RunSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.samples[backend]
	out := make([]entity.RunSample, len(stored))
	copy(out, stored)

	return out, nil
}

// Reset удаляет замеры бэкенда
func (r *MemoryRunRepository) Reset(ctx context.Context, backend entity.BackendID) error {
	r.mu.Lock()
	delete(r.samples, backend)
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.RunRepository = (*MemoryRunRepository)(nil)
