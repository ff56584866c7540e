package scrollkit

import "go.uber.org/atomic"

// Stats is a snapshot of a WrapContentHelper's activity counters.
type Stats struct {
	Refreshes int64 // Refresh calls that reached the container
	Renders   int64 // RenderFunc invocations
	Wraps     int64 // init callbacks received from the container
}

// counters may be read from another goroutine (a debug overlay, for
// instance) while the UI thread updates them.
type counters struct {
	refreshes atomic.Int64
	renders   atomic.Int64
	wraps     atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Refreshes: c.refreshes.Load(),
		Renders:   c.renders.Load(),
		Wraps:     c.wraps.Load(),
	}
}
