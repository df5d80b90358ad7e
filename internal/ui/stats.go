package ui

import (
	"fmt"
	"sync/atomic"
)

// Stats is updated by fetch workers and read by the progress bar.
type Stats struct {
	Cached  atomic.Int64
	Missing atomic.Int64
	Failed  atomic.Int64
	Bytes   atomic.Int64
}

func (s *Stats) Record(cached, found bool, failed bool, bytes int64) {
	s.Bytes.Add(bytes)

	switch {
	case failed:
		s.Failed.Add(1)
	case !found:
		s.Missing.Add(1)
	}

	if cached {
		s.Cached.Add(1)
	}
}

// Counters formats the running totals for the progress bar.
func (s *Stats) Counters() string {
	return fmt.Sprintf(" | cached %d | no table %d | failed %d",
		s.Cached.Load(), s.Missing.Load(), s.Failed.Load())
}
