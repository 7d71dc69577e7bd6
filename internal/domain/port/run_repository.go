package port

import (
	"context"

	"denoise-bench/internal/domain/entity"
)

// RunRepository интерфейс хранилища замеров
type RunRepository interface {
	// Add сохраняет замер
	Add(ctx context.Context, sample entity.RunSample) error

	// List возвращает замеры бэкенда в порядке добавления
	List(ctx context.Context, backend entity.BackendID) ([]entity.RunSample, error)

	// Reset удаляет замеры бэкенда
	Reset(ctx context.Context, backend entity.BackendID) error
}
