package imagefile

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Декодеры регистрируются для image.Decode
	_ "image/gif"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/domain/port"
)

// JPEGQuality качество при записи JPEG
const JPEGQuality = 95

// Права на новый выходной файл, как у os.Create при umask 022
const defaultFileMode os.FileMode = 0o644

// Store читает и пишет изображения на локальном диске
type Store struct{}

// NewStore создаёт файловое хранилище изображений
func NewStore() *Store {
	return &Store{}
}

// Load читает и декодирует изображение
func (s *Store) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", entity.ErrImageLoad, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", entity.ErrImageLoad, path, err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s: empty image", entity.ErrImageLoad, path)
	}

	return img, nil
}

// CheckFormat проверяет, что для пути есть кодировщик. Диск не трогает.
func (s *Store) CheckFormat(path string) error {
	_, err := encoderFor(path)
	return err
}

// Save кодирует изображение во временный файл рядом с целевым и переименовывает его.
// Недостающие каталоги создаются. При ошибке целевой файл не создаётся.
func (s *Store) Save(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %v", entity.ErrImageWrite, dir, err)
	}

	// Существующий файл сохраняет свои права
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", entity.ErrImageWrite, path, err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %v", entity.ErrImageWrite, path, err)
	}

	if err := encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: encode %s: %v", entity.ErrImageWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", entity.ErrImageWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", entity.ErrImageWrite, path, err)
	}

	return nil
}

// Size возвращает размер файла
func (s *Store) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

type encodeFunc func(w io.Writer, img image.Image) error

// encoderFor выбирает кодировщик по расширению файла
func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output format %q", entity.ErrImageWrite, filepath.Ext(path))
	}
}

// Проверка реализации интерфейса
var _ port.ImageStore = (*Store)(nil)
