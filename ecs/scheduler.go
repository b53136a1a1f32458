package ecs

import (
	"context"
	"time"
)

// ManagerStats provides statistics about the registry and its update loop.
type ManagerStats struct {
	EntityCount    int
	ComponentCount int
	SystemCount    int
	TotalUpdates   int64
	Systems        []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Id             SystemId
	Name           string
	Concurrent     bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newSystemStats(name string) systemStatsInternal {
	return systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (s *systemStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration

	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

// Stats returns a snapshot of the registry counters and per-system execution
// statistics, in system registration order. It returns the zero value while
// the Manager is not initialized.
func (m *Manager) Stats() ManagerStats {
	if !m.initialized {
		return ManagerStats{}
	}

	stats := ManagerStats{
		EntityCount:    m.entities.len(),
		ComponentCount: m.components.Len(),
		SystemCount:    m.systems.len(),
		TotalUpdates:   m.updates,
		Systems:        make([]SystemStats, 0, m.systems.len()),
	}

	for _, entry := range m.systems.entries {
		internal := entry.stats

		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems = append(stats.Systems, SystemStats{
			Id:             entry.id,
			Name:           internal.name,
			Concurrent:     entry.system.Concurrent(),
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
	}

	return stats
}

// Run calls Update at the given interval, passing the measured time since the
// previous tick in seconds, until the context is cancelled or the Manager is
// destroyed (possibly by one of its own systems).
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if err := m.checkInitialized("run"); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if !m.initialized {
				return nil
			}
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := m.Update(float32(dt)); err != nil {
				return err
			}
			if !m.initialized {
				return nil
			}
		}
	}
}
