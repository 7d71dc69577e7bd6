package app

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"denoise-bench/internal/domain/entity"
)

// Summarize считает min, max, среднее и стандартное отклонение замеров
func Summarize(samples []time.Duration) entity.TimingSummary {
	if len(samples) == 0 {
		return entity.TimingSummary{}
	}

	xs := make([]float64, len(samples))
	for i, d := range samples {
		xs[i] = float64(d)
	}

	summary := entity.TimingSummary{
		Count: len(xs),
		Min:   time.Duration(floats.Min(xs)),
		Max:   time.Duration(floats.Max(xs)),
		Mean:  time.Duration(stat.Mean(xs, nil)),
	}
	// Несмещённая оценка не определена для одного замера
	if len(xs) > 1 {
		summary.StdDev = time.Duration(stat.StdDev(xs, nil))
	}
	return summary
}
