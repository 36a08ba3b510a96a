package coaching_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/usecase/coaching"
)

func TestSurfaceWeakMetrics(t *testing.T) {
	th := coaching.DefaultThresholds()

	t.Run("fixed impact order", func(t *testing.T) {
		names := coaching.SurfaceWeakMetricNamesForTest(weakAnalysis(), th)
		gt.Equal(t, names, []string{
			"vision.eye_contact",
			"voice.fillers",
			"voice.wpm",
			"voice.energy",
			"language.grammar_score",
			"language.confidence",
			"vision.smile_ratio",
		})
	})

	t.Run("empty when nothing crosses a threshold", func(t *testing.T) {
		names := coaching.SurfaceWeakMetricNamesForTest(strongAnalysis(), th)
		gt.A(t, names).Length(0)
	})

	t.Run("threshold boundary is not weak", func(t *testing.T) {
		combined := strongAnalysis()
		combined.Vision.EyeContact = th.MinEyeContact
		combined.Voice.Fillers = th.MaxFillers
		combined.Voice.WPM = th.MinWPM

		names := coaching.SurfaceWeakMetricNamesForTest(combined, th)
		gt.A(t, names).Length(0)
	})

	t.Run("fast speech surfaces pace", func(t *testing.T) {
		combined := strongAnalysis()
		combined.Voice.WPM = 190

		names := coaching.SurfaceWeakMetricNamesForTest(combined, th)
		gt.Equal(t, names, []string{"voice.wpm"})
	})

	t.Run("custom thresholds shift the boundary", func(t *testing.T) {
		strict := coaching.DefaultThresholds()
		strict.MaxFillers = 1

		combined := strongAnalysis()
		gt.A(t, coaching.SurfaceWeakMetricNamesForTest(combined, th)).Length(0)
		gt.Equal(t, coaching.SurfaceWeakMetricNamesForTest(combined, strict), []string{"voice.fillers"})
	})
}

func TestProgressDelta(t *testing.T) {
	t.Run("metrics present on one side only are omitted", func(t *testing.T) {
		prior := map[string]float64{"voice.wpm": 130, "vision.eye_contact": 0.4}
		current := map[string]float64{"voice.wpm": 145, "voice.pitch_hz": 180}

		delta := coaching.ComputeDeltaForTest(prior, current)
		gt.V(t, len(delta)).Equal(1)

		d, ok := delta["voice.wpm"]
		gt.True(t, ok)
		gt.V(t, d.Previous).Equal(130.0)
		gt.V(t, d.Current).Equal(145.0)
		gt.V(t, d.Change).Equal(15.0)
	})

	t.Run("empty when nothing overlaps", func(t *testing.T) {
		delta := coaching.ComputeDeltaForTest(
			map[string]float64{"voice.wpm": 130},
			map[string]float64{"voice.energy": 0.05},
		)
		gt.V(t, len(delta)).Equal(0)
	})
}

func TestRenderProgressNote(t *testing.T) {
	t.Run("speaking pace is the headline metric", func(t *testing.T) {
		note := coaching.RenderProgressNoteForTest(model.ProgressDelta{
			"voice.wpm":          {Previous: 130, Current: 145, Change: 15},
			"vision.eye_contact": {Previous: 0.4, Current: 0.6, Change: 0.2},
		})
		gt.V(t, note).Equal("Speaking pace: 130 → 145 WPM (+15)")
	})

	t.Run("falls back to the alphabetically first metric", func(t *testing.T) {
		note := coaching.RenderProgressNoteForTest(model.ProgressDelta{
			"vision.eye_contact":  {Previous: 0.4, Current: 0.6, Change: 0.2},
			"language.confidence": {Previous: 0.5, Current: 0.7, Change: 0.2},
		})
		gt.V(t, note).Equal("language.confidence: 0.50 → 0.70 (+0.20)")
	})

	t.Run("empty delta renders nothing", func(t *testing.T) {
		gt.V(t, coaching.RenderProgressNoteForTest(model.ProgressDelta{})).Equal("")
	})
}
