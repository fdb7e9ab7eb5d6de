package observability

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// MonitoringStats is a point-in-time view of the specialist activity.
type MonitoringStats struct {
	Predictions uint64
	Rejected    uint64
	Failed      uint64
	RSSBytes    uint64
	CPUPercent  float64
	AllocMemMb  uint64
	NumGC       uint32
	Goroutines  int
	Uptime      time.Duration
}

// MonitoringManager counts predictions and samples process resources.
type MonitoringManager struct {
	predictions uint64
	rejected    uint64
	failed      uint64
	startedAt   time.Time
	proc        *process.Process
}

func NewMonitoringManager() (*MonitoringManager, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &MonitoringManager{startedAt: time.Now(), proc: p}, nil
}

func (mm *MonitoringManager) IncrPredictions() {
	atomic.AddUint64(&mm.predictions, 1)
}

func (mm *MonitoringManager) IncrRejected() {
	atomic.AddUint64(&mm.rejected, 1)
}

func (mm *MonitoringManager) IncrFailed() {
	atomic.AddUint64(&mm.failed, 1)
}

// Snapshot reads the counters and the current process usage.
func (mm *MonitoringManager) Snapshot() (MonitoringStats, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats := MonitoringStats{
		Predictions: atomic.LoadUint64(&mm.predictions),
		Rejected:    atomic.LoadUint64(&mm.rejected),
		Failed:      atomic.LoadUint64(&mm.failed),
		AllocMemMb:  m.Alloc / 1024 / 1024,
		NumGC:       m.NumGC,
		Goroutines:  runtime.NumGoroutine(),
		Uptime:      time.Since(mm.startedAt),
	}

	memInfo, err := mm.proc.MemoryInfo()
	if err != nil {
		return stats, err
	}
	stats.RSSBytes = memInfo.RSS

	cpu, err := mm.proc.CPUPercent()
	if err != nil {
		return stats, err
	}
	stats.CPUPercent = cpu
	return stats, nil
}
