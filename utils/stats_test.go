package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 10*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average %.1f, want 100", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-100) > 1e-9 {
		t.Fatalf("gen/sec %.3f, want 100", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("moving average %.3f, want 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 {
		t.Fatalf("total generations %d, want 2", s.TotalGenerations)
	}
}
