package system

import (
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// HostInfo сведения о машине, на которой идёт замер
type HostInfo struct {
	CPUBrand      string
	LogicalCores  int
	PhysicalCores int
	AVX2          bool
	TotalMemory   uint64
}

// Host читает сведения о процессоре и памяти
func Host() HostInfo {
	return HostInfo{
		CPUBrand:      cpuid.CPU.BrandName,
		LogicalCores:  logicalCores(),
		PhysicalCores: cpuid.CPU.PhysicalCores,
		AVX2:          cpuid.CPU.AVX2(),
		TotalMemory:   memory.TotalMemory(),
	}
}

// MemoryString возвращает объём памяти в читаемом виде
func (h HostInfo) MemoryString() string {
	return humanize.IBytes(h.TotalMemory)
}

// DefaultThreads число потоков по умолчанию: логические ядра минус одно, не меньше 1
func DefaultThreads() int {
	return defaultThreads(logicalCores())
}

func defaultThreads(cores int) int {
	if cores-1 < 1 {
		return 1
	}
	return cores - 1
}

// logicalCores берёт данные cpuid, а если их нет — runtime.NumCPU
func logicalCores() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
