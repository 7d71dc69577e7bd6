package entity

import (
	"fmt"
	"time"
)

// StopwatchState состояние секундомера
type StopwatchState string

const (
	StopwatchIdle    StopwatchState = "idle"    // Отметки сброшены
	StopwatchRunning StopwatchState = "running" // Измерение идёт
	StopwatchStopped StopwatchState = "stopped" // Измерение завершено
)

// Stopwatch измеряет длительность одного вызова фильтра.
// Отметки берутся из монотонных часов time.Now.
type Stopwatch struct {
	start time.Time
	end   time.Time
	state StopwatchState
	now   func() time.Time
}

// NewStopwatch создаёт секундомер в состоянии idle
func NewStopwatch() *Stopwatch {
	return newStopwatchWithClock(time.Now)
}

func newStopwatchWithClock(now func() time.Time) *Stopwatch {
	return &Stopwatch{state: StopwatchIdle, now: now}
}

// Start ставит обе отметки в текущий момент. Пока не вызван Stop, Elapsed равен нулю.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.end = s.start
	s.state = StopwatchRunning
}

// Stop фиксирует конечную отметку. Вне состояния running ничего не делает.
func (s *Stopwatch) Stop() {
	if s.state != StopwatchRunning {
		return
	}
	s.end = s.now()
	s.state = StopwatchStopped
}

// Restart сбрасывает обе отметки
func (s *Stopwatch) Restart() {
	s.start = time.Time{}
	s.end = time.Time{}
	s.state = StopwatchIdle
}

// State возвращает текущее состояние
func (s *Stopwatch) State() StopwatchState {
	return s.state
}

// Elapsed возвращает end - start, никогда не отрицательное
func (s *Stopwatch) Elapsed() time.Duration {
	d := s.end.Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}

// String форматирует Elapsed как HH:MM:SS.ffffff
func (s *Stopwatch) String() string {
	return FormatElapsed(s.Elapsed())
}

// FormatElapsed форматирует длительность как HH:MM:SS.ffffff.
// Часы не ограничены сутками, доли секунды отбрасываются до микросекунд.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	us := d.Microseconds()
	hours := us / int64(time.Hour/time.Microsecond)
	minutes := us / int64(time.Minute/time.Microsecond) % 60
	secUs := us % int64(time.Minute/time.Microsecond)

	return fmt.Sprintf("%02d:%02d:%02d.%06d", hours, minutes, secUs/1e6, secUs%1e6)
}
