package components

import "time"

// PerfClass is the governor's frame rate classification.
type PerfClass int

const (
	PerfNormal PerfClass = iota
	PerfMildlyLagging
	PerfLagging
)

func (c PerfClass) String() string {
	switch c {
	case PerfMildlyLagging:
		return "mildly-lagging"
	case PerfLagging:
		return "lagging"
	default:
		return "normal"
	}
}

// PerformanceData is owned by the Performance Governor.
type PerformanceData struct {
	Samples       []float64
	Lagging       bool
	MildlyLagging bool
	Reduction     float64
	LowThreshold  float64
	LastSample    time.Duration
	MeanFPS       float64
}

// Class returns the current classification.
func (p *PerformanceData) Class() PerfClass {
	switch {
	case p.Lagging:
		return PerfLagging
	case p.MildlyLagging:
		return PerfMildlyLagging
	default:
		return PerfNormal
	}
}
