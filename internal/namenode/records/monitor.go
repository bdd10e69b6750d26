package records

import (
	"context"
	"log/slog"
	"time"
)

// Monitor periodically tombstones datanodes whose heartbeats have gone
// stale. The threshold must exceed the emitter interval, which
// config.Validate enforces.
type Monitor struct {
	Records   *Records
	Threshold time.Duration
	Interval  time.Duration
}

// Run ticks until ctx is cancelled. Each pass flips alive=false on every
// registry entry past the threshold; a later heartbeat revives it.
func (m *Monitor) Run(ctx context.Context) error {
	log := slog.With("component", "liveness-monitor")
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if flipped := m.Records.MarkDead(m.Threshold); len(flipped) > 0 {
				log.Warn("datanodes went stale", "addrs", flipped, "threshold", m.Threshold)
			}
		}
	}
}
