package repository

import (
	"context"
	"time"

	"github.com/orator-dev/orator/pkg/model"
)

// Repository defines the interface for session record persistence. The store
// is append-only: PutSession creates a record for a new (user, session) pair
// and writes after the first are last-writer-wins for that pair.
type Repository interface {
	// PutSession saves a session record
	PutSession(ctx context.Context, record *model.SessionRecord) error

	// GetSession retrieves a session record by user and session ID
	GetSession(ctx context.Context, userID model.UserID, sessionID model.SessionID) (*model.SessionRecord, error)

	// ListSessions retrieves all records for a user, newest first
	ListSessions(ctx context.Context, userID model.UserID) ([]*model.SessionRecord, error)

	// LatestPrior returns the user's most recent record created strictly
	// before the given time, or nil (without error) when none exists.
	LatestPrior(ctx context.Context, userID model.UserID, before time.Time) (*model.SessionRecord, error)
}
