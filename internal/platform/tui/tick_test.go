package tui

import (
	"math"
	"testing"
	"time"
)

func TestDeltaTicks(t *testing.T) {
	base := time.Now()

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first frame", time.Time{}, base, 1},
		{"nominal frame", base, base.Add(nominalFrame), 1},
		{"half frame", base, base.Add(nominalFrame / 2), 0.5},
		{"two frames", base, base.Add(2 * nominalFrame), 2},
		{"stall is capped", base, base.Add(time.Second), maxDeltaTicks},
		{"clock went backwards", base, base.Add(-time.Millisecond), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deltaTicks(tt.prev, tt.now)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("deltaTicks = %v, want %v", got, tt.want)
			}
		})
	}
}
