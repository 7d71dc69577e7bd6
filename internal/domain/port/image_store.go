package port

import "image"

// ImageStore интерфейс чтения и записи изображений
type ImageStore interface {
	// Load читает изображение с диска
	Load(path string) (image.Image, error)

	// CheckFormat проверяет, что формат выходного файла поддерживается
	CheckFormat(path string) error

	// Save записывает изображение, формат выбирается по расширению
	Save(path string, img image.Image) error

	// Size возвращает размер файла в байтах
	Size(path string) (int64, error)
}
