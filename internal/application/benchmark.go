package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"denoise-bench/internal/domain/entity"
	"denoise-bench/internal/domain/port"
)

// BenchmarkRequest входные данные одного запуска
type BenchmarkRequest struct {
	Backend   entity.BackendID
	InputPath string
	// OutputPath один путь или несколько через запятую, по одному на набор параметров
	OutputPath string
	Args       []string // позиционные параметры фильтра, один или несколько наборов подряд
	Threads    int      // запрошенное число потоков, определяется один раз при старте
	Repeat     int      // сколько раз применить фильтр, 0 и 1 означают один раз
}

// RunStep один набор параметров и его выходной файл
type RunStep struct {
	Parameters entity.FilterParameters
	Filter     port.Filter
	OutputPath string
}

// Plan проверенный запуск: бэкенд и наборы параметров в порядке аргументов
type Plan struct {
	Backend port.Backend
	Steps   []RunStep
}

// SplitOutputs разбивает список выходных путей по запятым
func SplitOutputs(outputs string) []string {
	parts := strings.Split(outputs, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// BenchmarkService загружает изображение, замеряет фильтр и сохраняет результат
type BenchmarkService struct {
	backends port.BackendRegistry
	images   port.ImageStore
	runs     port.RunRepository
	notifier port.Notifier
	out      io.Writer
	log      zerolog.Logger
}

// NewBenchmarkService создаёт сервис замеров. notifier может быть nil.
func NewBenchmarkService(backends port.BackendRegistry, images port.ImageStore, runs port.RunRepository, notifier port.Notifier, out io.Writer, log zerolog.Logger) *BenchmarkService {
	return &BenchmarkService{
		backends: backends,
		images:   images,
		runs:     runs,
		notifier: notifier,
		out:      out,
		log:      log,
	}
}

// Prepare находит бэкенд, делит аргументы на наборы параметров и проверяет их
// вместе с форматами выходных файлов. Ввод-вывод изображений не выполняется.
func (s *BenchmarkService) Prepare(req BenchmarkRequest) (*Plan, error) {
	backend, err := s.backends.Get(req.Backend)
	if err != nil {
		return nil, err
	}

	info := backend.Info()
	arity := info.Arity()
	if arity == 0 || len(req.Args) == 0 || len(req.Args)%arity != 0 {
		return nil, fmt.Errorf("%s: %w: expected %d parameters (or a multiple of %d), got %d",
			info.ID, entity.ErrInvalidArguments, arity, arity, len(req.Args))
	}

	sets := len(req.Args) / arity
	outputs := SplitOutputs(req.OutputPath)
	if len(outputs) != sets {
		return nil, fmt.Errorf("%s: %w: %d parameter sets need %d output paths, got %d",
			info.ID, entity.ErrInvalidArguments, sets, sets, len(outputs))
	}

	plan := &Plan{Backend: backend, Steps: make([]RunStep, 0, sets)}
	for i := 0; i < sets; i++ {
		if outputs[i] == "" {
			return nil, fmt.Errorf("%s: %w: output path %d is empty", info.ID, entity.ErrInvalidArguments, i+1)
		}
		if err := s.images.CheckFormat(outputs[i]); err != nil {
			return nil, err
		}

		params, err := entity.ParseParameters(info.Parameters, req.Args[i*arity:(i+1)*arity])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", info.ID, err)
		}

		filter, err := backend.Configure(params, req.Threads)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", info.ID, err)
		}

		plan.Steps = append(plan.Steps, RunStep{Parameters: params, Filter: filter, OutputPath: outputs[i]})
	}

	return plan, nil
}

// Run выполняет полный цикл: параметры, загрузка, фильтр под секундомером, запись.
// Изображение читается один раз, каждый набор параметров замеряется отдельно
// и пишется в свой файл. Любая ошибка прерывает запуск.
func (s *BenchmarkService) Run(ctx context.Context, req BenchmarkRequest) ([]*entity.RunReport, error) {
	plan, err := s.Prepare(req)
	if err != nil {
		return nil, err
	}
	info := plan.Backend.Info()

	img, err := s.images.Load(req.InputPath)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	s.log.Debug().
		Str("input", req.InputPath).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Int("sets", len(plan.Steps)).
		Msg("image loaded")

	batch := len(plan.Steps) > 1
	reports := make([]*entity.RunReport, 0, len(plan.Steps))
	for i, step := range plan.Steps {
		report, err := s.runStep(ctx, info, step, req, img, i+1, batch)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
		s.notify(ctx, report)
	}

	return reports, nil
}

// runStep замеряет один набор параметров и пишет результат
func (s *BenchmarkService) runStep(ctx context.Context, info entity.BackendInfo, step RunStep, req BenchmarkRequest, img image.Image, n int, batch bool) (*entity.RunReport, error) {
	if err := s.runs.Reset(ctx, info.ID); err != nil {
		return nil, err
	}

	if batch {
		fmt.Fprintf(s.out, "%d. ", n)
	}
	fmt.Fprintf(s.out, "Applying %s filter [%d threads]...", info.Title, req.Threads)
	result, err := s.applyTimed(ctx, info.ID, step.Filter, img, max(req.Repeat, 1))
	if err != nil {
		fmt.Fprintln(s.out, "FAILED")
		return nil, err
	}
	fmt.Fprintln(s.out, "DONE")

	if err := s.images.Save(step.OutputPath, result); err != nil {
		return nil, err
	}

	report, err := s.buildReport(ctx, info, step, req, result)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(s.out, "%s file saved -> %s\n", info.Vendor, step.OutputPath)
	fmt.Fprintf(s.out, "Time elapsed: %s\n", entity.FormatElapsed(report.Elapsed))
	if report.Summary.Count > 1 {
		fmt.Fprintf(s.out, "Mean elapsed: %s (±%s, n=%d)\n",
			entity.FormatElapsed(report.Summary.Mean),
			entity.FormatElapsed(report.Summary.StdDev),
			report.Summary.Count)
	}
	if batch {
		fmt.Fprintln(s.out)
	}

	return report, nil
}

// applyTimed применяет фильтр repeat раз, каждый вызов под своим секундомером
func (s *BenchmarkService) applyTimed(ctx context.Context, id entity.BackendID, filter port.Filter, img image.Image, repeat int) (image.Image, error) {
	var result image.Image
	for i := 0; i < repeat; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sw := entity.NewStopwatch()
		sw.Start()
		out, err := filter.Apply(ctx, img)
		sw.Stop()

		if err != nil {
			s.log.Error().Err(err).Str("elapsed", sw.String()).Msg("filter failed")
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		if out == nil {
			return nil, fmt.Errorf("%w: %s returned no image", entity.ErrBackend, id)
		}

		if err := s.runs.Add(ctx, entity.RunSample{Backend: id, Elapsed: sw.Elapsed()}); err != nil {
			return nil, err
		}
		s.log.Debug().Int("run", i+1).Str("elapsed", sw.String()).Msg("filter applied")
		result = out
	}
	return result, nil
}

func (s *BenchmarkService) buildReport(ctx context.Context, info entity.BackendInfo, step RunStep, req BenchmarkRequest, result image.Image) (*entity.RunReport, error) {
	samples, err := s.runs.List(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	durations := make([]time.Duration, len(samples))
	for i, sample := range samples {
		durations[i] = sample.Elapsed
	}

	size, err := s.images.Size(step.OutputPath)
	if err != nil {
		s.log.Warn().Err(err).Str("output", step.OutputPath).Msg("cannot stat output")
	}

	b := result.Bounds()
	report := &entity.RunReport{
		Backend:     info,
		Parameters:  step.Parameters,
		InputPath:   req.InputPath,
		OutputPath:  step.OutputPath,
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
		OutputBytes: size,
		Threads:     req.Threads,
		Samples:     durations,
		Summary:     Summarize(durations),
	}
	if len(durations) > 0 {
		report.Elapsed = durations[len(durations)-1]
	}
	return report, nil
}

func (s *BenchmarkService) notify(ctx context.Context, report *entity.RunReport) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, report); err != nil {
		s.log.Warn().Err(err).Msg("notification failed")
	}
}
