package workers

import (
	"context"
	"log/slog"
	"time"

	"sentiment-lab/observability"
)

// HeartbeatWorker periodically logs the specialist counters and process usage.
type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats, err := w.monitoring.Snapshot()
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Heartbeat",
				"predictions", stats.Predictions,
				"rejected", stats.Rejected,
				"failed", stats.Failed,
				"rss_bytes", stats.RSSBytes,
				"cpu_percent", stats.CPUPercent,
				"alloc_mb", stats.AllocMemMb,
				"goroutines", stats.Goroutines,
				"uptime", stats.Uptime.Round(time.Second))
		}
	}
}
