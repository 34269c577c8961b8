package systems

import (
	"math"
	"testing"

	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
)

func TestSustainedLowFPSMarksLagging(t *testing.T) {
	p := newPerformance(cfg.DefaultSettings(), cfg.QualityFull)
	baseline := p.Reduction

	for _, fps := range []float64{20, 20, 20, 20, 20} {
		PushSample(&p, fps)
	}
	if !p.Lagging || p.Class() != components.PerfLagging {
		t.Fatalf("20 fps should classify as lagging, got %s", p.Class())
	}
	if p.Reduction <= baseline {
		t.Fatalf("reduction %f did not grow from baseline %f", p.Reduction, baseline)
	}
	if p.Reduction > cfg.Perf.MaxReduction {
		t.Fatalf("reduction %f exceeds cap %f", p.Reduction, cfg.Perf.MaxReduction)
	}
}

func TestRecoveryFloorsAtBaseline(t *testing.T) {
	p := newPerformance(cfg.DefaultSettings(), cfg.QualityFull)
	for i := 0; i < 5; i++ {
		PushSample(&p, 20)
	}
	lagged := p.Reduction

	for i := 0; i < 5; i++ {
		PushSample(&p, 60)
	}
	if p.Class() != components.PerfNormal {
		t.Fatalf("60 fps should recover to normal, got %s", p.Class())
	}
	if p.Reduction >= lagged || p.Reduction < cfg.Perf.BaselineReduction {
		t.Fatalf("reduction after recovery = %f (was %f)", p.Reduction, lagged)
	}

	for i := 0; i < 50; i++ {
		PushSample(&p, 60)
	}
	if p.Reduction < cfg.Perf.BaselineReduction {
		t.Fatalf("reduction %f dropped below baseline", p.Reduction)
	}
}

func TestMildLagIsCappedBelowMax(t *testing.T) {
	p := newPerformance(cfg.DefaultSettings(), cfg.QualityFull)
	for i := 0; i < 50; i++ {
		PushSample(&p, 45)
	}
	if p.Class() != components.PerfMildlyLagging {
		t.Fatalf("45 fps should be mildly lagging, got %s", p.Class())
	}
	if want := cfg.Perf.MaxReduction * cfg.Perf.MildCapRatio; p.Reduction > want+1e-9 {
		t.Fatalf("mild reduction %f exceeds %f", p.Reduction, want)
	}
}

func TestSampleWindowIsBounded(t *testing.T) {
	p := newPerformance(cfg.DefaultSettings(), cfg.QualityFull)
	for i := 0; i < 20; i++ {
		PushSample(&p, float64(i))
	}
	if len(p.Samples) != cfg.Perf.WindowSize {
		t.Fatalf("window holds %d samples, want %d", len(p.Samples), cfg.Perf.WindowSize)
	}
	if p.MeanFPS != 17 {
		t.Fatalf("mean = %f, want 17", p.MeanFPS)
	}
}

func TestPerformanceModeRaisesInitialReduction(t *testing.T) {
	settings := cfg.DefaultSettings()
	settings.PerformanceMode = true
	settings.PerformanceTier = 2

	p := newPerformance(settings, settings.QualityTier())
	if p.Reduction != cfg.QualityDisabled.Preset().InitialReduction {
		t.Fatalf("reduction = %f, want tier preset", p.Reduction)
	}
}

func TestUpdatePerformanceSamplesOncePerInterval(t *testing.T) {
	s, _ := newTestState(t)
	s.Input.FPS = 20

	for i := 0; i < 90; i++ {
		s.Now += frame
		UpdatePerformance(s)
	}
	if len(s.Perf.Samples) != 1 {
		t.Fatalf("samples after 1.5s = %d, want 1", len(s.Perf.Samples))
	}
}

func TestConstantFrameRateSettlesWithinWindow(t *testing.T) {
	tiers := []cfg.RenderQualityTier{cfg.QualityFull, cfg.QualityReduced, cfg.QualityDisabled}
	for _, quality := range tiers {
		for _, fps := range []float64{20, 45, 60} {
			settings := cfg.DefaultSettings()
			if quality != cfg.QualityFull {
				settings.PerformanceMode = true
			}
			p := newPerformance(settings, quality)

			var settled float64
			for i := 1; i <= 20; i++ {
				PushSample(&p, fps)
				if i == cfg.Perf.WindowSize {
					settled = p.Reduction
				}
				if i > cfg.Perf.WindowSize && p.Reduction != settled {
					t.Fatalf("tier %v at %.0f fps: reduction moved to %f on sample %d (settled at %f)",
						quality, fps, p.Reduction, i, settled)
				}
			}
			if settled < cfg.Perf.BaselineReduction || settled > cfg.Perf.MaxReduction {
				t.Fatalf("tier %v at %.0f fps: reduction %f out of range", quality, fps, settled)
			}
		}
	}
}

func TestReenteringLagAppliesFactorAgain(t *testing.T) {
	p := newPerformance(cfg.DefaultSettings(), cfg.QualityFull)
	for i := 0; i < 5; i++ {
		PushSample(&p, 20)
	}
	if p.Reduction != cfg.Perf.LagFactor {
		t.Fatalf("reduction after entering lag = %f, want %f", p.Reduction, cfg.Perf.LagFactor)
	}

	for i := 0; i < 5; i++ {
		PushSample(&p, 60)
	}
	recovered := p.Reduction
	for i := 0; i < 5; i++ {
		PushSample(&p, 20)
	}
	// The window mean passes through mild lag on its way down.
	if want := recovered * cfg.Perf.MildFactor * cfg.Perf.LagFactor; math.Abs(p.Reduction-want) > 1e-9 {
		t.Fatalf("reduction after second lag = %f, want %f", p.Reduction, want)
	}
}
