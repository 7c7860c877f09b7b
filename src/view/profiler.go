package view

import (
	"fmt"
	"sort"
	"time"
)

//Profiler collects per-step durations and reports their distribution
type Profiler struct {
	samples []time.Duration
}

func NewProfiler() *Profiler {
	return &Profiler{}
}

//Add records the duration of one simulation step
func (p *Profiler) Add(d time.Duration) {
	p.samples = append(p.samples, d)
}

//Distribution returns the step time at each of the given percentiles
//the slowest steps come first
func (p *Profiler) Distribution(percentiles []float64) []time.Duration {
	sorted := make([]time.Duration, len(p.samples))
	copy(sorted, p.samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	out := make([]time.Duration, 0, len(percentiles))
	for _, pc := range percentiles {
		i := int(pc * float64(len(sorted)))
		if i >= len(sorted) {
			i = len(sorted) - 1
		}
		out = append(out, sorted[i])
	}
	return out
}

//Print writes the percentile table to stdout
func (p *Profiler) Print() {
	if len(p.samples) == 0 {
		return
	}
	percentiles := []float64{0.99, 0.95, 0.70, 0.5, 0.3, 0.05, 0.01}
	fmt.Printf("Step time distribution over %v steps:\n", len(p.samples))
	fmt.Printf("%10s | %12s\n", "percentile", "step time")
	for i, d := range p.Distribution(percentiles) {
		fmt.Printf("%10v | %12v\n", percentiles[i]*100, d.Round(time.Microsecond))
	}
}
