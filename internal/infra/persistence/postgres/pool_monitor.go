package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// poolMonitor reports when requests had to wait for a pooled connection.
// Login bursts hold connections while bcrypt runs, so waits show up here first.
type poolMonitor struct {
	stats    func() sql.DBStats
	logger   *slog.Logger
	interval time.Duration
}

func newPoolMonitor(db *sql.DB, logger *slog.Logger) *poolMonitor {
	return &poolMonitor{stats: db.Stats, logger: logger, interval: poolMonitorInterval}
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			if level, attrs, waited := poolWait(prev, cur); waited {
				m.logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait describes the waits between two samples. waited is false when nobody waited.
func poolWait(prev, cur sql.DBStats) (level slog.Level, attrs []slog.Attr, waited bool) {
	count := cur.WaitCount - prev.WaitCount
	if count <= 0 {
		return slog.LevelDebug, nil, false
	}
	total := cur.WaitDuration - prev.WaitDuration

	level = slog.LevelDebug
	if total >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("wait_count", count),
		slog.Duration("wait_total", total),
		slog.Duration("wait_avg", total/time.Duration(count)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	}, true
}
