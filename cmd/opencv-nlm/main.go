package main

import (
	"os"

	"denoise-bench/internal/api/cli"
	"denoise-bench/internal/domain/entity"
)

// usage: opencv-nlm <input> <output> <patchRadius> <windowRadius> <h>
func main() {
	os.Exit(cli.Main(entity.BackendOpenCVNonLocalMeans))
}
