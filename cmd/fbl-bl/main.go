package main

import (
	"os"

	"denoise-bench/internal/api/cli"
	"denoise-bench/internal/domain/entity"
)

func main() {
	os.Exit(cli.Main(entity.BackendFastBilateral))
}
