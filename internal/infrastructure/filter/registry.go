package filter

import (
	"fmt"
	"sort"

	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/domain/port"
)

// Registry закрытый набор бэкендов
type Registry struct {
	backends map[entity.BackendID]port.Backend
}

// NewRegistry собирает все известные бэкенды
func NewRegistry() *Registry {
	r := &Registry{backends: make(map[entity.BackendID]port.Backend)}
	for _, b := range []port.Backend{
		NewOpenCVBilateral(),
		NewOpenCVNonLocalMeans(),
		NewFastBilateral(),
	} {
		r.backends[b.Info().ID] = b
	}
	return r
}

// Get возвращает бэкенд по идентификатору
func (r *Registry) Get(id entity.BackendID) (port.Backend, error) {
	b, ok := r.backends[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown backend %q", entity.ErrInvalidArguments, id)
	}
	return b, nil
}

// IDs возвращает идентификаторы в алфавитном порядке
func (r *Registry) IDs() []entity.BackendID {
	ids := make([]entity.BackendID, 0, len(r.backends))
	for id := range r.backends {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

var _ port.BackendRegistry = (*Registry)(nil)
