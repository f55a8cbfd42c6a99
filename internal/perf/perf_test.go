package perf

import (
	"testing"
	"time"
)

func TestPercentile(t *testing.T) {
	sorted := []time.Duration{1, 2, 3, 4, 5}
	if got := percentile(sorted, 0.95); got != 5 {
		t.Fatalf("expected p95=5, got %d", got)
	}
	if got := percentile(sorted, 0.50); got != 3 {
		t.Fatalf("expected p50=3, got %d", got)
	}
	if got := percentile(nil, 0.95); got != 0 {
		t.Fatalf("expected 0 for empty window, got %d", got)
	}
}

func TestSnapshotSortsAndResets(t *testing.T) {
	defer EnableForTest()()

	Record("view", 50*time.Millisecond)
	Record("frame", 10*time.Millisecond)
	Record("view", 150*time.Millisecond)
	Count("restarts", 1)
	Count("frames", 2)

	stats, counters := Snapshot()
	if len(stats) != 2 || len(counters) != 2 {
		t.Fatalf("expected 2 stats and 2 counters, got %d and %d", len(stats), len(counters))
	}
	if stats[0].Name != "frame" || stats[0].Count != 1 || stats[0].Avg != 10*time.Millisecond {
		t.Fatalf("unexpected stats for frame: %+v", stats[0])
	}
	if stats[1].Name != "view" || stats[1].Min != 50*time.Millisecond || stats[1].Max != 150*time.Millisecond {
		t.Fatalf("unexpected stats for view: %+v", stats[1])
	}
	if counters[0].Name != "frames" || counters[0].Value != 2 {
		t.Fatalf("unexpected counter: %+v", counters[0])
	}

	stats, counters = Snapshot()
	if len(stats) != 0 || len(counters) != 0 {
		t.Fatalf("expected reset to clear snapshots, got stats=%d counters=%d", len(stats), len(counters))
	}
}

func TestRingWindowWraps(t *testing.T) {
	defer EnableForTest()()

	for i := 0; i < sampleWindow+10; i++ {
		Record("tick", time.Millisecond)
	}
	Record("tick", time.Second)
	stats, _ := Snapshot()
	if stats[0].Count != sampleWindow+11 {
		t.Fatalf("expected full count, got %d", stats[0].Count)
	}
	if stats[0].Max != time.Second || stats[0].P50 != time.Millisecond {
		t.Fatalf("unexpected window stats %+v", stats[0])
	}
}

func TestDisabledRecordsNothing(t *testing.T) {
	restore := EnableForTest()
	enabled.Store(false)
	defer restore()

	Record("view", time.Millisecond)
	Count("frames", 1)
	Time("update")()
	stats, counters := Snapshot()
	if len(stats) != 0 || len(counters) != 0 {
		t.Fatalf("expected no samples while disabled")
	}
}

func TestIsEnabledAndIntervalEnv(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"no":    false,
		"1":     true,
		"true":  true,
		"yes":   true,
	}
	for raw, expected := range cases {
		t.Setenv("MARQUEE_PROFILE", raw)
		if got := isEnabled(); got != expected {
			t.Fatalf("isEnabled(%q)=%v, want %v", raw, got, expected)
		}
	}

	t.Setenv("MARQUEE_PROFILE_INTERVAL_MS", "")
	if got := defaultLogInterval(); got != defaultIntervalMs*time.Millisecond {
		t.Fatalf("expected default interval, got %s", got)
	}

	t.Setenv("MARQUEE_PROFILE_INTERVAL_MS", "250")
	if got := defaultLogInterval(); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms interval, got %s", got)
	}
}
