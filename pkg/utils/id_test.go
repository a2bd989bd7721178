package utils

import (
	"testing"
	"time"
)

func TestIDGeneratorMonotonicWithinSameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1_718_000_000_000)
	gen := NewIDGeneratorWithClock(func() time.Time { return fixed })

	first := gen.Next()
	second := gen.Next()
	third := gen.Next()

	if first != fixed.UnixMilli() {
		t.Fatalf("first id = %d, want timestamp %d", first, fixed.UnixMilli())
	}
	if second != first+1 || third != first+2 {
		t.Fatalf("ids not strictly increasing: %d %d %d", first, second, third)
	}
}

func TestIDGeneratorFollowsClock(t *testing.T) {
	now := time.UnixMilli(1_000)
	gen := NewIDGeneratorWithClock(func() time.Time { return now })

	_ = gen.Next()
	now = now.Add(5 * time.Second)
	if got := gen.Next(); got != 6_000 {
		t.Fatalf("got %d, want 6000", got)
	}
}
