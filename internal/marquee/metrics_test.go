package marquee

import (
	"testing"
	"time"
)

func TestGapForShortContentFillsViewport(t *testing.T) {
	for viewport := 1; viewport <= 60; viewport++ {
		for content := 1; content < viewport; content++ {
			gap := GapFor(content, viewport, 3)
			if gap < 3 {
				t.Fatalf("GapFor(%d, %d, 3) = %d, below minimum", content, viewport, gap)
			}
			if viewport-content >= 3 && content+gap != viewport {
				t.Fatalf("GapFor(%d, %d, 3) = %d, want content+gap == viewport", content, viewport, gap)
			}
		}
	}
}

func TestGapForTallContentUsesMinimum(t *testing.T) {
	tests := []struct {
		content, viewport, min int
	}{
		{100, 100, 10},
		{101, 100, 10},
		{500, 20, 0},
		{40, 12, 4},
	}
	for _, tt := range tests {
		if got := GapFor(tt.content, tt.viewport, tt.min); got != tt.min {
			t.Fatalf("GapFor(%d, %d, %d) = %d, want %d", tt.content, tt.viewport, tt.min, got, tt.min)
		}
	}
	if got := GapFor(50, 10, -4); got != 0 {
		t.Fatalf("expected negative minimum to clamp to 0, got %d", got)
	}
}

func TestTarget(t *testing.T) {
	if got := Target(500, 0, 10); got != -510 {
		t.Fatalf("Target(500, 0, 10) = %v, want -510", got)
	}
	if got := Target(300, 4, 10); got != -306 {
		t.Fatalf("Target(300, 4, 10) = %v, want -306", got)
	}
}

func TestDurationFor(t *testing.T) {
	short := DurationFor(100, 0, 0)
	long := DurationFor(200, 0, 0)
	if long <= short {
		t.Fatalf("expected duration to grow with height: %v <= %v", long, short)
	}
	if long != 2*short {
		t.Fatalf("expected proportional scaling, got %v and %v", short, long)
	}

	for _, h := range []int{1, 100, 5000} {
		if got := DurationFor(h, 7*time.Second, 0); got != 7*time.Second {
			t.Fatalf("DurationFor(%d) with explicit duration = %v", h, got)
		}
	}

	if got := DurationFor(10, 0, 100*time.Millisecond); got != time.Second {
		t.Fatalf("expected 1s for 10 rows at 100ms, got %v", got)
	}
}

func TestScrollStateString(t *testing.T) {
	if Idle.String() != "idle" || Looping.String() != "looping" {
		t.Fatalf("unexpected state names %q %q", Idle, Looping)
	}
}
