package filter

import (
	"fmt"

	"denoise-bench/internal/domain/entity"
)

// Контракты параметров. Порядок задаёт порядок позиционных аргументов.
var (
	openCVBilateralInfo = entity.BackendInfo{
		ID:        entity.BackendOpenCVBilateral,
		Algorithm: entity.AlgorithmBilateral,
		Provider:  entity.ProviderOpenCV,
		Title:     "OpenCV bilateral",
		Vendor:    "OpenCV",
		Parameters: []entity.ParameterSpec{
			{Name: "radius", Integer: true, Min: 1, Max: entity.MaxRadius},
			{Name: "spaceSigma", Min: 0, Exclusive: true},
			{Name: "rangeSigma", Min: 0, Exclusive: true},
		},
	}

	openCVNonLocalMeansInfo = entity.BackendInfo{
		ID:        entity.BackendOpenCVNonLocalMeans,
		Algorithm: entity.AlgorithmNonLocalMeans,
		Provider:  entity.ProviderOpenCV,
		Title:     "OpenCV Non-local means",
		Vendor:    "OpenCV",
		Parameters: []entity.ParameterSpec{
			{Name: "patchRadius", Integer: true, Min: 1, Max: entity.MaxRadius},
			{Name: "windowRadius", Integer: true, Min: 1, Max: entity.MaxRadius},
			{Name: "h", Min: 0, Max: entity.MaxIntensity, Exclusive: true},
		},
	}

	fastBilateralInfo = entity.BackendInfo{
		ID:        entity.BackendFastBilateral,
		Algorithm: entity.AlgorithmBilateral,
		Provider:  entity.ProviderFastBilateral,
		Title:     "FastBilateral bilateral",
		Vendor:    "FastBilateral",
		Parameters: []entity.ParameterSpec{
			{Name: "spaceSigma", Min: 0, Exclusive: true},
			{Name: "rangeSigma", Min: 0, Max: entity.MaxIntensity, Exclusive: true},
		},
	}
)

// checkThreads проверяет запрошенное число потоков
func checkThreads(threads int) error {
	if threads <= 0 {
		return fmt.Errorf("%w: processing unit count must be positive, got %d", entity.ErrBackend, threads)
	}
	return nil
}

// bilateralSettings параметры билатерального фильтра в нативной шкале OpenCV
type bilateralSettings struct {
	Diameter   int
	SpaceSigma float64
	RangeSigma float64
}

func newBilateralSettings(params entity.FilterParameters) (bilateralSettings, error) {
	radius, err := params.Int("radius")
	if err != nil {
		return bilateralSettings{}, err
	}
	space, err := params.Float("spaceSigma")
	if err != nil {
		return bilateralSettings{}, err
	}
	rng, err := params.Float("rangeSigma")
	if err != nil {
		return bilateralSettings{}, err
	}
	return bilateralSettings{Diameter: entity.KernelSize(radius), SpaceSigma: space, RangeSigma: rng}, nil
}

// nlmSettings параметры non-local means в нативной шкале OpenCV
type nlmSettings struct {
	TemplateWindow int
	SearchWindow   int
	H              float32
}

func newNLMSettings(params entity.FilterParameters) (nlmSettings, error) {
	patch, err := params.Int("patchRadius")
	if err != nil {
		return nlmSettings{}, err
	}
	window, err := params.Int("windowRadius")
	if err != nil {
		return nlmSettings{}, err
	}
	if window < patch {
		return nlmSettings{}, fmt.Errorf("%w: windowRadius (%d) must not be smaller than patchRadius (%d)", entity.ErrInvalidArguments, window, patch)
	}
	h, err := params.Float("h")
	if err != nil {
		return nlmSettings{}, err
	}
	return nlmSettings{
		TemplateWindow: entity.KernelSize(patch),
		SearchWindow:   entity.KernelSize(window),
		H:              float32(h),
	}, nil
}
