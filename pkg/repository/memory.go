package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
)

// memoryRepo implements Repository in process memory. Used by tests and by
// `run --store memory` dry runs where nothing should be persisted.
type memoryRepo struct {
	mu       sync.RWMutex
	sessions map[model.UserID]map[model.SessionID]*model.SessionRecord
}

// NewMemory creates a new in-memory session repository
func NewMemory() Repository {
	return &memoryRepo{
		sessions: make(map[model.UserID]map[model.SessionID]*model.SessionRecord),
	}
}

func (r *memoryRepo) PutSession(ctx context.Context, record *model.SessionRecord) error {
	if record.UserID == "" || record.SessionID == "" {
		return goerr.Wrap(model.ErrStore, "user ID and session ID are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	userSessions, ok := r.sessions[record.UserID]
	if !ok {
		userSessions = make(map[model.SessionID]*model.SessionRecord)
		r.sessions[record.UserID] = userSessions
	}

	copied := *record
	userSessions[record.SessionID] = &copied
	return nil
}

func (r *memoryRepo) GetSession(ctx context.Context, userID model.UserID, sessionID model.SessionID) (*model.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.sessions[userID][sessionID]
	if !ok {
		return nil, goerr.Wrap(model.ErrStore, "session not found",
			goerr.V("user_id", userID), goerr.V("session_id", sessionID))
	}

	copied := *record
	return &copied, nil
}

func (r *memoryRepo) ListSessions(ctx context.Context, userID model.UserID) ([]*model.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.SessionRecord, 0, len(r.sessions[userID]))
	for _, record := range r.sessions[userID] {
		copied := *record
		records = append(records, &copied)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

func (r *memoryRepo) LatestPrior(ctx context.Context, userID model.UserID, before time.Time) (*model.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *model.SessionRecord
	for _, record := range r.sessions[userID] {
		if !record.CreatedAt.Before(before) {
			continue
		}
		if latest == nil || record.CreatedAt.After(latest.CreatedAt) {
			latest = record
		}
	}

	if latest == nil {
		return nil, nil
	}

	copied := *latest
	return &copied, nil
}
