package main

import (
	"os"

	"denoise-bench/internal/api/cli"
	"denoise-bench/internal/domain/entity"
)

// usage: opencv-bl <input> <output> <radius> <spaceSigma> <rangeSigma>
func main() {
	os.Exit(cli.Main(entity.BackendOpenCVBilateral))
}
