package main

import (
	"os"

	"denoise-bench/internal/api/cli"
)

// Общий запуск: denoise-bench <backend> <input> <output> <params...>
func main() {
	os.Exit(cli.MainAny())
}
