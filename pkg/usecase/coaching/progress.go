package coaching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/utils/logging"
)

// computeDelta compares two flattened metric maps. Metrics present in only
// one side are omitted, never treated as zero.
func computeDelta(prior, current map[string]float64) model.ProgressDelta {
	delta := make(model.ProgressDelta)
	for name, cur := range current {
		prev, ok := prior[name]
		if !ok {
			continue
		}
		delta[name] = model.MetricDelta{
			Previous: prev,
			Current:  cur,
			Change:   cur - prev,
		}
	}
	return delta
}

// renderProgressNote builds the human-readable progress line. Speaking pace
// is the headline metric when tracked; otherwise the alphabetically first
// delta keeps the note deterministic.
func renderProgressNote(delta model.ProgressDelta) string {
	if d, ok := delta["voice.wpm"]; ok {
		return fmt.Sprintf("Speaking pace: %.0f → %.0f WPM (%+.0f)", d.Previous, d.Current, d.Change)
	}

	names := make([]string, 0, len(delta))
	for name := range delta {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	d := delta[names[0]]
	return fmt.Sprintf("%s: %.2f → %.2f (%+.2f)", names[0], d.Previous, d.Current, d.Change)
}

// lookupProgress fetches the user's most recent prior session and computes the
// per-metric delta against the current analysis. A store read failure degrades
// to "no prior session": progress tracking is an enhancement, not a
// requirement for the run.
func (uc *UseCase) lookupProgress(ctx context.Context, userID model.UserID, before time.Time, current *model.CombinedAnalysis) (model.ProgressDelta, *string) {
	prior, err := uc.repo.LatestPrior(ctx, userID, before)
	if err != nil {
		logging.From(ctx).Warn("failed to look up prior session, treating as first session",
			"user_id", userID, "error", err)
		return nil, nil
	}
	if prior == nil || prior.Analysis == nil {
		return nil, nil
	}

	delta := computeDelta(prior.Analysis.Flatten(), current.Flatten())
	if len(delta) == 0 {
		return nil, nil
	}

	note := renderProgressNote(delta)
	return delta, &note
}

// Test helpers - exported versions of private functions for testing

// ComputeDeltaForTest is a test helper that exposes computeDelta
func ComputeDeltaForTest(prior, current map[string]float64) model.ProgressDelta {
	return computeDelta(prior, current)
}

// RenderProgressNoteForTest is a test helper that exposes renderProgressNote
func RenderProgressNoteForTest(delta model.ProgressDelta) string {
	return renderProgressNote(delta)
}
