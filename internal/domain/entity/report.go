package entity

import "time"

// RunSample одно измерение вызова фильтра
type RunSample struct {
	Backend BackendID
	Elapsed time.Duration
}

// TimingSummary сводка по повторным прогонам
type TimingSummary struct {
	Count  int
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
}

// RunReport итог одного запуска бенчмарка
type RunReport struct {
	Backend     BackendInfo
	Parameters  FilterParameters
	InputPath   string
	OutputPath  string
	ImageWidth  int   // ширина изображения
	ImageHeight int   // высота изображения
	OutputBytes int64 // размер записанного файла
	Threads     int   // запрошенное число потоков
	Elapsed     time.Duration
	Samples     []time.Duration
	Summary     TimingSummary
}
