// Package metrics collects per-tool request counters for the gateway.
package metrics

import (
	"sync"
	"time"
)

type Collector struct {
	mu      sync.Mutex
	started time.Time
	tools   map[string]*toolStats
	blocked int64 // requests refused by the secret scan or rate limiter
}

type toolStats struct {
	requests int64
	errors   int64
	elapsed  time.Duration
}

// Snapshot is the JSON shape served at /metrics.
type Snapshot struct {
	UptimeSeconds float64              `json:"uptime_seconds"`
	Blocked       int64                `json:"blocked"`
	Tools         map[string]ToolStats `json:"tools"`
}

type ToolStats struct {
	Requests  int64   `json:"requests"`
	Errors    int64   `json:"errors"`
	AvgMillis float64 `json:"avg_millis"`
}

func NewCollector() *Collector {
	return &Collector{
		started: time.Now(),
		tools:   make(map[string]*toolStats),
	}
}

// Record counts one dispatched request for a tool. Unknown tool names are
// recorded under their literal value so misrouted traffic stays visible.
func (c *Collector) Record(tool string, isError bool, elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.tools[tool]
	if !ok {
		stats = &toolStats{}
		c.tools[tool] = stats
	}
	stats.requests++
	if isError {
		stats.errors++
	}
	stats.elapsed += elapsed
}

// RecordBlocked counts a request refused before dispatch.
func (c *Collector) RecordBlocked() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocked++
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		UptimeSeconds: time.Since(c.started).Seconds(),
		Blocked:       c.blocked,
		Tools:         make(map[string]ToolStats, len(c.tools)),
	}
	for name, stats := range c.tools {
		avg := 0.0
		if stats.requests > 0 {
			avg = float64(stats.elapsed.Milliseconds()) / float64(stats.requests)
		}
		snap.Tools[name] = ToolStats{
			Requests:  stats.requests,
			Errors:    stats.errors,
			AvgMillis: avg,
		}
	}
	return snap
}
