package quill

import (
	"log/slog"
	"time"
)

// FrameStats holds the result of one Plugin.Update call.
type FrameStats struct {
	Frame      uint64
	Circles    ReconcileStats
	Rectangles ReconcileStats
	Lines      ReconcileStats
	Duration   time.Duration
}

// Visible returns the number of entities shown this frame across all kinds.
func (s FrameStats) Visible() int {
	return s.Circles.Updated + s.Circles.Created +
		s.Rectangles.Updated + s.Rectangles.Created +
		s.Lines.Updated + s.Lines.Created
}

// PoolSize returns the combined size of all three pools.
func (s FrameStats) PoolSize() int {
	return s.Circles.PoolSize + s.Rectangles.PoolSize + s.Lines.PoolSize
}

// debugLog writes per-frame stats at debug level.
func (p *Plugin) debugLog(stats FrameStats) {
	if !p.debug {
		return
	}
	Logger().Debug("quill frame",
		slog.Uint64("frame", stats.Frame),
		slog.Duration("reconcile", stats.Duration),
		slog.Int("visible", stats.Visible()),
		slog.Int("pool", stats.PoolSize()),
	)
}

// logPoolGrowth reports pool growth. Subscribed to ReconcileEventType.
func logPoolGrowth(stats ReconcileStats) {
	if stats.Created == 0 {
		return
	}
	Logger().Info("quill pool grew",
		slog.String("kind", stats.Kind.String()),
		slog.Int("created", stats.Created),
		slog.Int("pool", stats.PoolSize),
	)
}

// debugMaxPoolSize is the pool size above which debug mode warns. Pools
// never shrink, so a runaway draw loop shows up here first.
const debugMaxPoolSize = 10000

func debugCheckPoolSize(stats ReconcileStats) {
	if stats.PoolSize > debugMaxPoolSize {
		Logger().Warn("quill pool exceeds threshold",
			slog.String("kind", stats.Kind.String()),
			slog.Int("pool", stats.PoolSize),
			slog.Int("threshold", debugMaxPoolSize),
		)
	}
}
