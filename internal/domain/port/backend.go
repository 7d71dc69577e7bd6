package port

import (
	"context"
	"image"

	"denoise-bench/internal/domain/entity"
)

// Backend интерфейс бэкенда шумоподавления
type Backend interface {
	// Info возвращает описание бэкенда и контракт параметров
	Info() entity.BackendInfo

	// Configure проверяет параметры и готовит фильтр к запуску
	Configure(params entity.FilterParameters, threads int) (Filter, error)
}

// Filter настроенный фильтр, готовый к вызову
type Filter interface {
	// Apply синхронно применяет фильтр к изображению
	Apply(ctx context.Context, img image.Image) (image.Image, error)
}

// BackendRegistry интерфейс поиска бэкенда по идентификатору
type BackendRegistry interface {
	Get(id entity.BackendID) (Backend, error)
}
