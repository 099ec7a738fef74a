package appender

import (
	"sync/atomic"

	"github.com/alfmunny/EVA02/core"
)

// Stats tracks appender statistics
type Stats struct {
	// dropped is indexed by level; out-of-range levels count as UnknownLevel
	dropped [core.FatalLevel + 1]atomic.Uint64
	// processed counts events written successfully
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func levelSlot(level core.Level) int {
	if level < core.UnknownLevel || level > core.FatalLevel {
		return int(core.UnknownLevel)
	}
	return int(level)
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	s.dropped[levelSlot(level)].Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	return s.dropped[levelSlot(level)].Load()
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return s.processed.Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, len(s.dropped))
	for i := range s.dropped {
		dropped[core.Level(i)] = s.dropped[i].Load()
	}
	return Snapshot{
		DroppedTotal:   dropped,
		ProcessedTotal: s.GetProcessed(),
	}
}
