package entity

// Algorithm алгоритм шумоподавления
type Algorithm string

const (
	AlgorithmBilateral     Algorithm = "bilateral"       // Билатеральный фильтр
	AlgorithmNonLocalMeans Algorithm = "non-local-means" // Non-local means
)

// Provider библиотека, которая реализует алгоритм
type Provider string

const (
	ProviderOpenCV        Provider = "opencv"
	ProviderFastBilateral Provider = "fbl"
)

// BackendID идентификатор пары (алгоритм, провайдер)
type BackendID string

const (
	BackendOpenCVBilateral     BackendID = "opencv-bl"
	BackendOpenCVNonLocalMeans BackendID = "opencv-nlm"
	BackendFastBilateral       BackendID = "fbl-bl"
)

// BackendInfo описывает бэкенд и его контракт параметров
type BackendInfo struct {
	ID         BackendID
	Algorithm  Algorithm
	Provider   Provider
	Title      string          // "OpenCV bilateral"
	Vendor     string          // "OpenCV"
	Parameters []ParameterSpec // порядок совпадает с позиционными аргументами
}

// Arity возвращает ожидаемое число параметров
func (b BackendInfo) Arity() int {
	return len(b.Parameters)
}

// ParameterNames возвращает имена параметров в порядке аргументов
func (b BackendInfo) ParameterNames() []string {
	names := make([]string, len(b.Parameters))
	for i, p := range b.Parameters {
		names[i] = p.Name
	}
	return names
}
