package view

import (
	"testing"
	"time"
)

func Test_Profiler_Distribution(t *testing.T) {
	p := NewProfiler()
	for i := 1; i <= 100; i++ {
		p.Add(time.Duration(i) * time.Millisecond)
	}
	d := p.Distribution([]float64{0.99, 0.5, 0.01})
	//sorted slowest first: the 99th percentile is among the fastest samples
	if d[0] >= d[1] || d[1] >= d[2] {
		t.Errorf("distribution not ordered: %v", d)
	}
	if d[2] != 99*time.Millisecond {
		t.Errorf("1st percentile = %v, want 99ms", d[2])
	}
	if d[0] != 1*time.Millisecond {
		t.Errorf("99th percentile = %v, want 1ms", d[0])
	}
}

func Test_Profiler_Empty(t *testing.T) {
	//printing with no samples must not panic
	NewProfiler().Print()
}
