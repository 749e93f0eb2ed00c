package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Close is safe to call multiple times.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	log.Info().Msg("[DATABASE] Closing connection pool")
	db.Pool.Close()
	db.Pool = nil
}

// PoolStats is a snapshot of the pool counters used by the monitor and /health.
type PoolStats struct {
	AcquireCount         int64         `json:"acquire_count"`
	AcquireDuration      time.Duration `json:"-"`
	AcquiredConns        int32         `json:"acquired_conns"`
	CanceledAcquireCount int64         `json:"canceled_acquire_count"`
	IdleConns            int32         `json:"idle_conns"`
	MaxConns             int32         `json:"max_conns"`
	TotalConns           int32         `json:"total_conns"`
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		AcquiredConns:        raw.AcquiredConns(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		IdleConns:            raw.IdleConns(),
		MaxConns:             raw.MaxConns(),
		TotalConns:           raw.TotalConns(),
	}, nil
}

// AvgAcquireDuration returns 0 before the first acquire.
func (s *PoolStats) AvgAcquireDuration() time.Duration {
	if s.AcquireCount == 0 {
		return 0
	}
	return s.AcquireDuration / time.Duration(s.AcquireCount)
}

// Warnings lists the pool conditions worth alerting on.
func (s *PoolStats) Warnings() []string {
	var warnings []string

	if s.MaxConns > 0 {
		utilization := float64(s.AcquiredConns) / float64(s.MaxConns) * 100
		if utilization > 80 {
			warnings = append(warnings, fmt.Sprintf("high pool utilization: %.1f%% (%d/%d)",
				utilization, s.AcquiredConns, s.MaxConns))
		}
	}

	if avg := s.AvgAcquireDuration(); avg > 100*time.Millisecond {
		warnings = append(warnings, fmt.Sprintf("high acquire latency: %v", avg))
	}

	if s.AcquireCount > 0 && s.CanceledAcquireCount > 0 {
		cancelRate := float64(s.CanceledAcquireCount) / float64(s.AcquireCount) * 100
		if cancelRate > 5 {
			warnings = append(warnings, fmt.Sprintf("high cancel rate: %.1f%%", cancelRate))
		}
	}

	return warnings
}

// MonitorPoolHealth logs pool warnings every interval until ctx is done.
// Run it in its own goroutine.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("[MONITOR] Failed to get stats")
				continue
			}
			for _, w := range stats.Warnings() {
				log.Warn().Str("warning", w).Msg("[MONITOR] Pool health")
			}

		case <-ctx.Done():
			log.Info().Msg("[MONITOR] Stopping pool health monitoring")
			return
		}
	}
}
