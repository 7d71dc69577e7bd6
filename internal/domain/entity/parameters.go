package entity

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// MaxIntensity верхняя граница 8-битной яркости
const MaxIntensity = 255.0

// MaxRadius наибольший радиус, для которого окно 2r+1 помещается в int32 (int в OpenCV)
const MaxRadius = (math.MaxInt32 - 1) / 2

// ParameterSpec описывает один позиционный параметр бэкенда
type ParameterSpec struct {
	Name    string  // имя параметра, например "spaceSigma"
	Integer bool    // значение должно быть целым
	Min     float64 // нижняя граница (включительно)
	Max     float64 // верхняя граница (включительно), 0 — без ограничения
	// Exclusive делает нижнюю границу строгой: value > Min
	Exclusive bool
}

// Validate проверяет значение на соответствие описанию
func (s ParameterSpec) Validate(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidArguments, s.Name)
	}
	if s.Integer && value != math.Trunc(value) {
		return fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidArguments, s.Name, value)
	}
	if s.Integer && (value > math.MaxInt32 || value < math.MinInt32) {
		return fmt.Errorf("%w: %s is out of integer range, got %v", ErrInvalidArguments, s.Name, value)
	}
	if s.Exclusive && value <= s.Min {
		return fmt.Errorf("%w: %s must be greater than %v, got %v", ErrInvalidArguments, s.Name, s.Min, value)
	}
	if !s.Exclusive && value < s.Min {
		return fmt.Errorf("%w: %s must be at least %v, got %v", ErrInvalidArguments, s.Name, s.Min, value)
	}
	if s.Max > 0 && value > s.Max {
		return fmt.Errorf("%w: %s must be at most %v, got %v", ErrInvalidArguments, s.Name, s.Max, value)
	}
	return nil
}

// FilterParameters неизменяемый набор именованных параметров фильтра
type FilterParameters struct {
	values map[string]float64
}

// NewFilterParameters копирует значения, чтобы снаружи их нельзя было изменить
func NewFilterParameters(values map[string]float64) FilterParameters {
	copied := make(map[string]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return FilterParameters{values: copied}
}

// ParseParameters разбирает позиционные аргументы по контракту бэкенда.
// Сначала проверяется количество аргументов, затем каждое значение.
func ParseParameters(specs []ParameterSpec, args []string) (FilterParameters, error) {
	if len(args) != len(specs) {
		return FilterParameters{}, fmt.Errorf("%w: expected %d parameters, got %d", ErrInvalidArguments, len(specs), len(args))
	}

	values := make(map[string]float64, len(specs))
	for i, spec := range specs {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return FilterParameters{}, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidArguments, spec.Name, args[i])
		}
		if err := spec.Validate(v); err != nil {
			return FilterParameters{}, err
		}
		values[spec.Name] = v
	}

	return FilterParameters{values: values}, nil
}

// Float возвращает значение параметра
func (p FilterParameters) Float(name string) (float64, error) {
	v, ok := p.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing parameter %s", ErrInvalidArguments, name)
	}
	return v, nil
}

// Int возвращает целочисленный параметр
func (p FilterParameters) Int(name string) (int, error) {
	v, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidArguments, name, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s is out of integer range, got %v", ErrInvalidArguments, name, v)
	}
	return int(v), nil
}

// Len количество параметров
func (p FilterParameters) Len() int {
	return len(p.values)
}

// String выводит параметры в стабильном порядке: "h=10 patchRadius=3"
func (p FilterParameters) String() string {
	names := make([]string, 0, len(p.values))
	for name := range p.values {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += name + "=" + strconv.FormatFloat(p.values[name], 'g', -1, 64)
	}
	return out
}

// KernelSize переводит радиус в размер окна: 2r+1
func KernelSize(radius int) int {
	return 2*radius + 1
}

// NormalizeIntensity переводит значение из шкалы [0,255] в [0,1]
func NormalizeIntensity(v float64) float64 {
	return v / MaxIntensity
}
