package filter

import (
	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/domain/port"
)

// OpenCVBilateral бэкенд cv::bilateralFilter
type OpenCVBilateral struct{}

// NewOpenCVBilateral создаёт бэкенд OpenCV bilateral
func NewOpenCVBilateral() *OpenCVBilateral {
	return &OpenCVBilateral{}
}

// Info возвращает описание бэкенда
func (b *OpenCVBilateral) Info() entity.BackendInfo {
	return openCVBilateralInfo
}

// Configure переводит радиус в диаметр ядра 2r+1
func (b *OpenCVBilateral) Configure(params entity.FilterParameters, threads int) (port.Filter, error) {
	if err := checkThreads(threads); err != nil {
		return nil, err
	}
	settings, err := newBilateralSettings(params)
	if err != nil {
		return nil, err
	}
	return &openCVBilateralFilter{settings: settings, threads: threads}, nil
}

type openCVBilateralFilter struct {
	settings bilateralSettings
	threads  int
}

// OpenCVNonLocalMeans бэкенд cv::fastNlMeansDenoising
type OpenCVNonLocalMeans struct{}

// NewOpenCVNonLocalMeans создаёт бэкенд OpenCV non-local means
func NewOpenCVNonLocalMeans() *OpenCVNonLocalMeans {
	return &OpenCVNonLocalMeans{}
}

// Info возвращает описание бэкенда
func (b *OpenCVNonLocalMeans) Info() entity.BackendInfo {
	return openCVNonLocalMeansInfo
}

// Configure переводит радиусы патча и окна поиска в размеры окон 2r+1
func (b *OpenCVNonLocalMeans) Configure(params entity.FilterParameters, threads int) (port.Filter, error) {
	if err := checkThreads(threads); err != nil {
		return nil, err
	}
	settings, err := newNLMSettings(params)
	if err != nil {
		return nil, err
	}
	return &openCVNonLocalMeansFilter{settings: settings, threads: threads}, nil
}

type openCVNonLocalMeansFilter struct {
	settings nlmSettings
	threads  int
}

var (
	_ port.Backend = (*OpenCVBilateral)(nil)
	_ port.Backend = (*OpenCVNonLocalMeans)(nil)
)
