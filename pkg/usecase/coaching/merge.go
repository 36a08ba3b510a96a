package coaching

import (
	"time"

	"github.com/orator-dev/orator/pkg/model"
)

// mergeResult combines analysis, coaching outputs, and progress into the final
// SessionResult. Pure aggregation: absent progress means a null progress field
// and an omitted delta, never an error.
func mergeResult(
	sessionID model.SessionID,
	userID model.UserID,
	videoPath string,
	timestamp time.Time,
	combined *model.CombinedAnalysis,
	coach *coachOutput,
	delta model.ProgressDelta,
	progressNote *string,
	eval *model.EvalScores,
) *model.SessionResult {
	result := &model.SessionResult{
		SessionID:        sessionID,
		UserID:           userID,
		VideoPath:        videoPath,
		Timestamp:        timestamp,
		CombinedAnalysis: combined,
		Feedback:         coach.Feedback,
		Recommendations:  coach.Recommendations,
		Strengths:        coach.Strengths,
		Priorities:       coach.Priorities,
		Progress:         progressNote,
		Delta:            delta,
		Eval:             eval,
	}

	// JSON output renders empty lists, not nulls.
	if result.Feedback == nil {
		result.Feedback = []string{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Priorities == nil {
		result.Priorities = []string{}
	}

	return result
}
