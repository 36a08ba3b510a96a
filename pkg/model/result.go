package model

import "time"

// EvalScores holds quality scores for the produced feedback, both in [0, 1].
type EvalScores struct {
	RelevanceScore float64 `json:"relevance_score" firestore:"relevance_score"`
	Actionability  float64 `json:"actionability" firestore:"actionability"`
}

// SessionResult is the final output of a coaching run. It is constructed once
// by the result merger, returned to the caller, and persisted as part of the
// SessionRecord.
type SessionResult struct {
	SessionID SessionID `json:"session_id" firestore:"session_id"`
	UserID    UserID    `json:"user_id" firestore:"user_id"`
	VideoPath string    `json:"video_path" firestore:"video_path"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`

	*CombinedAnalysis `firestore:"analysis"`

	Feedback        []string `json:"feedback" firestore:"feedback"`
	Recommendations []string `json:"recommendations" firestore:"recommendations"`
	Strengths       []string `json:"strengths" firestore:"strengths"`
	Priorities      []string `json:"priorities" firestore:"priorities"`

	// Progress is a human-readable note about the change since the prior
	// session; null for a user's first session.
	Progress *string `json:"progress" firestore:"progress"`

	// Delta holds per-metric changes since the prior session; omitted for a
	// user's first session.
	Delta ProgressDelta `json:"progress_delta,omitempty" firestore:"progress_delta,omitempty"`

	// Eval holds feedback quality scores; null when evaluation was skipped or failed.
	Eval *EvalScores `json:"eval" firestore:"eval"`
}
