// Package cli реализует общий запуск программ-бенчмарков из командной строки.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"denoise-bench/config"
	app "denoise-bench/internal/application"
	"denoise-bench/internal/container"
	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/infrastructure/system"
	"denoise-bench/internal/logger"
)

// Коды завершения процесса
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Env окружение запуска
type Env struct {
	Program string
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
}

// Run запускает бенчмарк выбранного бэкенда.
// args — позиционные аргументы без имени программы: input output param...
// Несколько наборов параметров подряд требуют столько же выходных путей через запятую.
func Run(ctx context.Context, env Env, backend entity.BackendID, args []string) int {
	log := logger.New(env.Stderr, env.Config.LogLevel)
	c := container.New(env.Config, env.Stdout, log)

	b, err := c.Registry.Get(backend)
	if err != nil {
		ids := make([]string, 0)
		for _, id := range c.Registry.IDs() {
			ids = append(ids, string(id))
		}
		fmt.Fprintf(env.Stderr, "available backends: %s\n", strings.Join(ids, ", "))
		return fail(env, err)
	}
	info := b.Info()

	if len(args) < 2 {
		fmt.Fprintln(env.Stderr, Usage(env.Program, info))
		return fail(env, fmt.Errorf("%w: input and output paths are required", entity.ErrInvalidArguments))
	}

	host := system.Host()
	log.Debug().
		Str("cpu", host.CPUBrand).
		Int("logical_cores", host.LogicalCores).
		Bool("avx2", host.AVX2).
		Str("memory", host.MemoryString()).
		Int("threads", env.Config.Threads).
		Msg("host")

	_, err = c.BenchmarkService.Run(ctx, app.BenchmarkRequest{
		Backend:    backend,
		InputPath:  args[0],
		OutputPath: args[1],
		Args:       args[2:],
		Threads:    env.Config.Threads,
		Repeat:     env.Config.Repeat,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArguments) {
			fmt.Fprintln(env.Stderr, Usage(env.Program, info))
		}
		return fail(env, err)
	}

	return ExitOK
}

// Usage строка с контрактом параметров бэкенда
func Usage(program string, info entity.BackendInfo) string {
	params := make([]string, 0, info.Arity())
	for _, name := range info.ParameterNames() {
		params = append(params, "<"+name+">")
	}
	return fmt.Sprintf("usage: %s <inputImagePath> <outputImagePath> %s\n"+
		"       %s <inputImagePath> <out1>,<out2>,... %s %s ...",
		program, strings.Join(params, " "), program, strings.Join(params, " "), strings.Join(params, " "))
}

// ExitCode выбирает код завершения по классу ошибки
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, entity.ErrInvalidArguments):
		return ExitUsage
	default:
		return ExitError
	}
}

func fail(env Env, err error) int {
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return ExitCode(err)
}

// Main читает конфигурацию и запускает бэкенд с аргументами процесса
func Main(backend entity.BackendID) int {
	env, code := processEnv()
	if code != ExitOK {
		return code
	}
	return Run(context.Background(), env, backend, os.Args[1:])
}

// MainAny берёт идентификатор бэкенда из первого аргумента
func MainAny() int {
	env, code := processEnv()
	if code != ExitOK {
		return code
	}
	if len(os.Args) < 2 {
		fmt.Fprintf(env.Stderr, "usage: %s <backend> <inputImagePath> <outputImagePath> <params...>\n", env.Program)
		return ExitUsage
	}
	return Run(context.Background(), env, entity.BackendID(os.Args[1]), os.Args[2:])
}

func processEnv() (Env, int) {
	env := Env{
		Program: filepath.Base(os.Args[0]),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: config: %v\n", err)
		return env, ExitError
	}
	env.Config = cfg

	return env, ExitOK
}
