package systems

import (
	"log"
	"math"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
)

func newPerformance(settings cfg.Settings, quality cfg.RenderQualityTier) components.PerformanceData {
	low := cfg.ResolvePreset(settings.Difficulty).LowFPSThreshold
	if low <= 0 {
		low = cfg.Perf.DefaultLowFPS
	}
	reduction := cfg.Perf.BaselineReduction
	if quality.PerformanceMode() {
		tier := quality.Preset()
		low = tier.LowFPSThreshold
		reduction = tier.InitialReduction
	}
	return components.PerformanceData{
		Samples:      make([]float64, 0, cfg.Perf.WindowSize),
		Reduction:    reduction,
		LowThreshold: low,
	}
}

// Classify maps a mean frame rate onto the governor's three classes.
func Classify(mean, low, medium float64) components.PerfClass {
	switch {
	case mean < low:
		return components.PerfLagging
	case mean < medium:
		return components.PerfMildlyLagging
	default:
		return components.PerfNormal
	}
}

// PushSample records one frame rate sample and applies the transition rules.
func PushSample(p *components.PerformanceData, fps float64) components.PerfClass {
	p.Samples = append(p.Samples, fps)
	if over := len(p.Samples) - cfg.Perf.WindowSize; over > 0 {
		p.Samples = append(p.Samples[:0], p.Samples[over:]...)
	}

	sum := 0.0
	for _, v := range p.Samples {
		sum += v
	}
	p.MeanFPS = sum / float64(len(p.Samples))

	wasLagging, wasMild := p.Lagging, p.MildlyLagging
	class := Classify(p.MeanFPS, p.LowThreshold, cfg.Perf.MediumFPSThreshold)
	p.Lagging = class == components.PerfLagging
	p.MildlyLagging = class == components.PerfMildlyLagging

	// Factors apply on entering a class, so a steady frame rate settles as
	// soon as its class does.
	switch class {
	case components.PerfLagging:
		if !wasLagging {
			p.Reduction = math.Min(p.Reduction*cfg.Perf.LagFactor, cfg.Perf.MaxReduction)
			log.Printf("[perf] critical: %.1f fps, spawn reduction x%.2f", p.MeanFPS, p.Reduction)
		}
	case components.PerfMildlyLagging:
		if !wasLagging && !wasMild {
			p.Reduction = math.Min(p.Reduction*cfg.Perf.MildFactor, cfg.Perf.MaxReduction*cfg.Perf.MildCapRatio)
			log.Printf("[perf] warning: %.1f fps, spawn reduction x%.2f", p.MeanFPS, p.Reduction)
		}
	default:
		if wasLagging || wasMild {
			p.Reduction = math.Max(p.Reduction*cfg.Perf.RecoveryFactor, cfg.Perf.BaselineReduction)
			log.Printf("[perf] recovered: %.1f fps, spawn reduction x%.2f", p.MeanFPS, p.Reduction)
		}
	}
	return class
}

// UpdatePerformance samples the measured frame rate once per sample interval
// of simulation time.
func UpdatePerformance(s *State) {
	if s.Input.FPS <= 0 {
		return
	}
	if s.Now-s.Perf.LastSample < cfg.Perf.SampleInterval {
		return
	}
	s.Perf.LastSample = s.Now
	PushSample(&s.Perf, s.Input.FPS)
}
