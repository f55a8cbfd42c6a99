// Package perf collects frame timing for the scroll animation. It is off
// unless MARQUEE_PROFILE is set, and then logs a summary every
// MARQUEE_PROFILE_INTERVAL_MS milliseconds.
package perf

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyrewlee/marquee/internal/logging"
)

const (
	sampleWindow      = 256
	defaultIntervalMs = 5000
)

// series keeps totals plus a ring of recent samples for percentiles.
type series struct {
	count   int64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	samples [sampleWindow]time.Duration
	next    int
	full    bool
}

func (s *series) add(d time.Duration) {
	s.count++
	s.total += d
	if s.count == 1 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.samples[s.next] = d
	s.next++
	if s.next == sampleWindow {
		s.next = 0
		s.full = true
	}
}

func (s *series) window() []time.Duration {
	n := s.next
	if s.full {
		n = sampleWindow
	}
	out := make([]time.Duration, n)
	copy(out, s.samples[:n])
	return out
}

// Stat summarizes one timing series since the last snapshot.
type Stat struct {
	Name  string
	Count int64
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
	P50   time.Duration
	P95   time.Duration
}

// Counter is a named event count since the last snapshot.
type Counter struct {
	Name  string
	Value int64
}

var (
	enabled     atomic.Bool
	logInterval atomic.Int64
	lastLog     atomic.Int64

	mu       sync.Mutex
	stats    = map[string]*series{}
	counters = map[string]int64{}
)

func init() {
	enabled.Store(isEnabled())
	logInterval.Store(int64(defaultLogInterval()))
}

// Enabled reports whether profiling is enabled.
func Enabled() bool {
	return enabled.Load()
}

// Time returns a function that records elapsed time when invoked.
func Time(name string) func() {
	if !enabled.Load() {
		return func() {}
	}
	start := time.Now()
	return func() {
		Record(name, time.Since(start))
	}
}

// Record adds a duration sample to the named series.
func Record(name string, d time.Duration) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	s, ok := stats[name]
	if !ok {
		s = &series{}
		stats[name] = s
	}
	s.add(d)
	mu.Unlock()

	maybeLog()
}

// Count increments a named counter by delta.
func Count(name string, delta int64) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	counters[name] += delta
	mu.Unlock()

	maybeLog()
}

// Snapshot returns the collected stats and counters sorted by name, and
// resets them.
func Snapshot() ([]Stat, []Counter) {
	mu.Lock()
	current, currentCounters := stats, counters
	stats = map[string]*series{}
	counters = map[string]int64{}
	mu.Unlock()

	out := make([]Stat, 0, len(current))
	for name, s := range current {
		if s.count == 0 {
			continue
		}
		window := s.window()
		sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
		out = append(out, Stat{
			Name:  name,
			Count: s.count,
			Avg:   time.Duration(int64(s.total) / s.count),
			Min:   s.min,
			Max:   s.max,
			P50:   percentile(window, 0.50),
			P95:   percentile(window, 0.95),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	outCounters := make([]Counter, 0, len(currentCounters))
	for name, v := range currentCounters {
		if v != 0 {
			outCounters = append(outCounters, Counter{Name: name, Value: v})
		}
	}
	sort.Slice(outCounters, func(i, j int) bool { return outCounters[i].Name < outCounters[j].Name })
	return out, outCounters
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p float64) time.Duration {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	pos := int(math.Ceil(p*float64(n))) - 1
	pos = max(0, min(pos, n-1))
	return sorted[pos]
}

func maybeLog() {
	interval := time.Duration(logInterval.Load())
	if interval <= 0 {
		return
	}
	now := time.Now().UnixNano()
	last := lastLog.Load()
	if last != 0 && time.Duration(now-last) < interval {
		return
	}
	if !lastLog.CompareAndSwap(last, now) {
		return
	}
	logSnapshot("PERF")
}

// Flush logs a summary immediately. If reason is provided, it is included
// in the log prefix.
func Flush(reason string) {
	if !enabled.Load() {
		return
	}
	prefix := "PERF SUMMARY"
	if strings.TrimSpace(reason) != "" {
		prefix = fmt.Sprintf("PERF SUMMARY %s", reason)
	}
	logSnapshot(prefix)
}

func logSnapshot(prefix string) {
	all, allCounters := Snapshot()
	for _, s := range all {
		logging.Info(
			"%s %s count=%d avg=%s p50=%s p95=%s min=%s max=%s",
			prefix, s.Name, s.Count, s.Avg, s.P50, s.P95, s.Min, s.Max,
		)
	}
	for _, c := range allCounters {
		logging.Info("%s %s count=%d", prefix, c.Name, c.Value)
	}
}

func isEnabled() bool {
	raw := strings.TrimSpace(os.Getenv("MARQUEE_PROFILE"))
	if raw == "" {
		return false
	}
	switch strings.ToLower(raw) {
	case "0", "false", "no":
		return false
	default:
		return true
	}
}

func defaultLogInterval() time.Duration {
	interval := defaultIntervalMs
	if raw := strings.TrimSpace(os.Getenv("MARQUEE_PROFILE_INTERVAL_MS")); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			interval = val
		}
	}
	return time.Duration(interval) * time.Millisecond
}

// EnableForTest forces collection on with periodic logging disabled. It
// returns a function restoring the previous settings.
func EnableForTest() func() {
	prevEnabled := enabled.Load()
	prevInterval := logInterval.Load()
	enabled.Store(true)
	logInterval.Store(0)
	lastLog.Store(0)
	Snapshot()
	return func() {
		enabled.Store(prevEnabled)
		logInterval.Store(prevInterval)
		Snapshot()
	}
}
