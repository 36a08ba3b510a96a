package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionID string

// NewSessionID generates a new unique SessionID
func NewSessionID() SessionID {
	return SessionID("session_" + uuid.New().String())
}

type UserID string

// SessionRecord is the persisted outcome of one coaching run, keyed by
// (UserID, SessionID). Records are append-only: a new run creates a new
// record and never mutates a past one.
type SessionRecord struct {
	UserID    UserID            `json:"user_id" firestore:"user_id"`
	SessionID SessionID         `json:"session_id" firestore:"session_id"`
	VideoPath string            `json:"video_path" firestore:"video_path"`
	Analysis  *CombinedAnalysis `json:"analysis" firestore:"analysis"`
	Result    *SessionResult    `json:"result" firestore:"result"`
	CreatedAt time.Time         `json:"created_at" firestore:"created_at"`
}

// MetricDelta is the change of a single metric between two sessions.
type MetricDelta struct {
	Previous float64 `json:"previous" firestore:"previous"`
	Current  float64 `json:"current" firestore:"current"`
	Change   float64 `json:"change" firestore:"change"`
}

// ProgressDelta maps metric name (e.g. "voice.wpm") to its change since the
// user's most recent prior session. Metrics present in only one of the two
// sessions are omitted, never treated as zero. Nil when no prior session exists.
type ProgressDelta map[string]MetricDelta
