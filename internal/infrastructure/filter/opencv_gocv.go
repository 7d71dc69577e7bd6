//go:build gocv
// +build gocv

package filter

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"denoise-bench/internal/domain/entity"
)

// Apply запускает cv::bilateralFilter
func (f *openCVBilateralFilter) Apply(ctx context.Context, img image.Image) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := imageToMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.SetNumThreads(f.threads)
	gocv.BilateralFilter(src, &dst, f.settings.Diameter, f.settings.RangeSigma, f.settings.SpaceSigma)

	return matToImage(dst)
}

// Apply запускает cv::fastNlMeansDenoising
func (f *openCVNonLocalMeansFilter) Apply(ctx context.Context, img image.Image) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := imageToMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.SetNumThreads(f.threads)
	gocv.FastNlMeansDenoisingWithParams(src, &dst, f.settings.H, f.settings.TemplateWindow, f.settings.SearchWindow)

	return matToImage(dst)
}

// imageToMat превращает image.Image в gocv.Mat. Серые изображения остаются одноканальными.
func imageToMat(img image.Image) (gocv.Mat, error) {
	var (
		mat gocv.Mat
		err error
	)
	if gray, ok := img.(*image.Gray); ok {
		mat, err = gocv.ImageGrayToMatGray(gray)
	} else {
		mat, err = gocv.ImageToMatRGB(img)
	}
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("%w: convert image to mat: %v", entity.ErrBackend, err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("%w: empty mat", entity.ErrBackend)
	}
	return mat, nil
}

func matToImage(mat gocv.Mat) (image.Image, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("%w: filter produced empty mat", entity.ErrBackend)
	}
	out, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: convert mat to image: %v", entity.ErrBackend, err)
	}
	return out, nil
}
