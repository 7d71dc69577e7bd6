package filter

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/mdouchement/bilateral"

	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/domain/port"
)

// FastBilateral бэкенд на github.com/mdouchement/bilateral (чистый Go).
// Библиотека ждёт rangeSigma в диапазоне [0,1].
type FastBilateral struct{}

// NewFastBilateral создаёт бэкенд быстрого билатерального фильтра
func NewFastBilateral() *FastBilateral {
	return &FastBilateral{}
}

// Info возвращает описание бэкенда
func (b *FastBilateral) Info() entity.BackendInfo {
	return fastBilateralInfo
}

// Configure нормирует rangeSigma из шкалы [0,255] в [0,1]
func (b *FastBilateral) Configure(params entity.FilterParameters, threads int) (port.Filter, error) {
	if err := checkThreads(threads); err != nil {
		return nil, err
	}
	space, err := params.Float("spaceSigma")
	if err != nil {
		return nil, err
	}
	rng, err := params.Float("rangeSigma")
	if err != nil {
		return nil, err
	}

	return &fastBilateralFilter{
		spaceSigma: space,
		rangeSigma: entity.NormalizeIntensity(rng),
		threads:    threads,
	}, nil
}

type fastBilateralFilter struct {
	spaceSigma float64
	rangeSigma float64 // уже нормирован
	threads    int
}

// Apply ограничивает GOMAXPROCS запрошенным числом потоков на время вызова
func (f *fastBilateralFilter) Apply(ctx context.Context, img image.Image) (out image.Image, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prev := runtime.GOMAXPROCS(f.threads)
	defer runtime.GOMAXPROCS(prev)

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: fast bilateral: %v", entity.ErrBackend, r)
		}
	}()

	fbl := bilateral.New(img, f.spaceSigma, f.rangeSigma)
	fbl.Execute()

	return fbl.ResultImage(), nil
}

var _ port.Backend = (*FastBilateral)(nil)
