// Package testutil содержит помощники для тестов с изображениями.
package testutil

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// NoisyImage строит градиент с детерминированным шумом
func NoisyImage(w, h int, seed int64) *image.RGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (x * 255) / max(w-1, 1)
			n := rnd.Intn(61) - 30
			v := uint8(min(max(base+n, 0), 255))
			img.Set(x, y, color.RGBA{R: v, G: v, B: 255 - v, A: 255})
		}
	}
	return img
}

// WritePNG сохраняет изображение в dir/name и возвращает путь
func WritePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

// DecodeConfig читает размеры изображения из файла
func DecodeConfig(t *testing.T, path string) image.Config {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg
}
