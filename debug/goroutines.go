package debug

// Debug runtime logger. Started only when config.Debug is true.
// Emits goroutine count, heap usage and the filter graph counters at a fixed
// interval so recomputation storms show up next to memory growth.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartGoroutineLogger launches a ticker that logs runtime samples and, when
// stats is non-nil, its result under the "graph" key. stats is called from the
// ticker goroutine and must be safe for that.
func StartGoroutineLogger(interval time.Duration, logger *slog.Logger, stats func() any) {
	go RunGoroutineLogger(context.Background(), interval, logger, stats)
}

// RunGoroutineLogger logs until ctx is cancelled.
func RunGoroutineLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, stats func() any) {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			logSample(logger, stats)
		}
	}
}

func logSample(logger *slog.Logger, stats func() any) {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Uint64("goroutines", samples[0].Value.Uint64()),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
	}
	if stats != nil {
		attrs = append(attrs, slog.Any("graph", stats()))
	}
	logger.Info("runtime-sample", attrs...)
}
