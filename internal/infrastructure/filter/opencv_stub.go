//go:build !gocv
// +build !gocv

package filter

import (
	"context"
	"fmt"
	"image"

	"denoise-bench/internal/domain/entity"
)

// Apply возвращает ошибку, если сборка без тега gocv.
func (f *openCVBilateralFilter) Apply(ctx context.Context, img image.Image) (image.Image, error) {
	_ = ctx
	_ = img
	return nil, fmt.Errorf("%w: gocv build tag is not enabled", entity.ErrBackend)
}

// Apply возвращает ошибку, если сборка без тега gocv.
func (f *openCVNonLocalMeansFilter) Apply(ctx context.Context, img image.Image) (image.Image, error) {
	_ = ctx
	_ = img
	return nil, fmt.Errorf("%w: gocv build tag is not enabled", entity.ErrBackend)
}
