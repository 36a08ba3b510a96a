package coaching

import (
	"context"
	"fmt"

	"github.com/orator-dev/orator/pkg/model"
)

// weakMetric is one surfaced improvement area. Surfacing is deterministic:
// metrics are checked in fixed impact order (eye contact, fillers, and pace
// affect interview outcomes most, per the coaching rubric) and each maps to a
// fixed feedback template and a fixed exercise search query.
type weakMetric struct {
	Name     string // flattened metric name, e.g. "voice.wpm"
	Feedback string
	Query    string
}

// surfaceWeakMetrics returns the weak metrics of the analysis in priority
// order. Empty iff no metric crosses its threshold. Both the aggregator and
// the recommender derive their work from this one function, so the two
// parallel tasks agree without sharing state.
func surfaceWeakMetrics(combined *model.CombinedAnalysis, th *Thresholds) []weakMetric {
	var weak []weakMetric

	if v := combined.Vision; v != nil && v.EyeContact < th.MinEyeContact {
		weak = append(weak, weakMetric{
			Name: "vision.eye_contact",
			Feedback: fmt.Sprintf("Eye contact at %.0f%% — look toward the camera at least %.0f%% of the time.",
				v.EyeContact*100, th.MinEyeContact*100),
			Query: "techniques improve eye contact video interviews",
		})
	}

	if v := combined.Voice; v != nil && v.Fillers > th.MaxFillers {
		weak = append(weak, weakMetric{
			Name: "voice.fillers",
			Feedback: fmt.Sprintf("Used %d filler words — pause silently instead of filling gaps with \"um\" or \"like\".",
				v.Fillers),
			Query: "interview exercises reduce filler words",
		})
	}

	if v := combined.Voice; v != nil && (v.WPM < th.MinWPM || v.WPM > th.MaxWPM) {
		var fb string
		if v.WPM < th.MinWPM {
			fb = fmt.Sprintf("Speaking pace at %.0f WPM is below the %.0f-%.0f WPM range — practice tightening your answers.",
				v.WPM, th.MinWPM, th.MaxWPM)
		} else {
			fb = fmt.Sprintf("Speaking pace at %.0f WPM is above the %.0f-%.0f WPM range — slow down and breathe between points.",
				v.WPM, th.MinWPM, th.MaxWPM)
		}
		weak = append(weak, weakMetric{
			Name:     "voice.wpm",
			Feedback: fb,
			Query:    "exercises control speaking rate presentations",
		})
	}

	if v := combined.Voice; v != nil && v.Energy < th.MinEnergy {
		weak = append(weak, weakMetric{
			Name:     "voice.energy",
			Feedback: fmt.Sprintf("Vocal energy at %.3f RMS is low — project your voice as if addressing the back of the room.", v.Energy),
			Query:    "vocal projection exercises speaking energy",
		})
	}

	if v := combined.Language; v != nil && v.GrammarScore < th.MinGrammar {
		weak = append(weak, weakMetric{
			Name: "language.grammar_score",
			Feedback: fmt.Sprintf("Grammar score at %.2f — practice completing sentences before starting new ones.",
				v.GrammarScore),
			Query: "exercises improve spoken grammar interviews",
		})
	}

	if v := combined.Language; v != nil && v.Confidence < th.MinConfidence {
		weak = append(weak, weakMetric{
			Name: "language.confidence",
			Feedback: fmt.Sprintf("Confidence score at %.2f — replace hedging phrases with direct statements.",
				v.Confidence),
			Query: "exercises speak confidently job interviews",
		})
	}

	if v := combined.Vision; v != nil && v.SmileRatio < th.MinSmileRatio {
		weak = append(weak, weakMetric{
			Name: "vision.smile_ratio",
			Feedback: fmt.Sprintf("Smiling only %.0f%% of the time — warm up with a smile when greeting and closing.",
				v.SmileRatio*100),
			Query: "exercises natural smile video interviews",
		})
	}

	return weak
}

// aggregate synthesizes the analysis into prioritized feedback, plus the
// identified strengths and the top focus areas.
func (uc *UseCase) aggregate(ctx context.Context, combined *model.CombinedAnalysis) (feedback, strengths, priorities []string, err error) {
	weak := surfaceWeakMetrics(combined, uc.thresholds)

	feedback = make([]string, 0, len(weak))
	for _, w := range weak {
		feedback = append(feedback, w.Feedback)
	}

	for i, w := range weak {
		if i >= 3 {
			break
		}
		priorities = append(priorities, w.Name)
	}

	strengths = findStrengths(combined, uc.thresholds)
	return feedback, strengths, priorities, nil
}

// SurfaceWeakMetricNamesForTest is a test helper that exposes the surfaced
// metric names in priority order
func SurfaceWeakMetricNamesForTest(combined *model.CombinedAnalysis, th *Thresholds) []string {
	weak := surfaceWeakMetrics(combined, th)
	names := make([]string, 0, len(weak))
	for _, w := range weak {
		names = append(names, w.Name)
	}
	return names
}

// findStrengths reports up to three metrics comfortably inside their ideal band.
func findStrengths(combined *model.CombinedAnalysis, th *Thresholds) []string {
	var strengths []string
	add := func(s string) {
		if len(strengths) < 3 {
			strengths = append(strengths, s)
		}
	}

	if v := combined.Vision; v != nil && v.EyeContact >= th.StrongEyeContact {
		add(fmt.Sprintf("Strong eye contact at %.0f%%.", v.EyeContact*100))
	}
	if v := combined.Voice; v != nil && v.Fillers <= th.StrongMaxFillers {
		add(fmt.Sprintf("Clean delivery with only %d filler words.", v.Fillers))
	}
	if v := combined.Voice; v != nil && v.WPM >= th.MinWPM && v.WPM <= th.MaxWPM {
		add(fmt.Sprintf("Well-paced delivery at %.0f WPM.", v.WPM))
	}
	if v := combined.Voice; v != nil && v.Energy >= th.StrongEnergy {
		add("Energetic vocal delivery.")
	}
	if v := combined.Language; v != nil && v.GrammarScore >= th.StrongGrammar {
		add(fmt.Sprintf("Well-formed sentences (grammar score %.2f).", v.GrammarScore))
	}
	if v := combined.Language; v != nil && v.Confidence >= th.StrongConfidence {
		add(fmt.Sprintf("Confident language (score %.2f).", v.Confidence))
	}

	return strengths
}
