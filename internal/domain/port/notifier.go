package port

import (
	"context"

	"denoise-bench/internal/domain/entity"
)

// Notifier отправляет итог запуска во внешний канал
type Notifier interface {
	Notify(ctx context.Context, report *entity.RunReport) error
}
