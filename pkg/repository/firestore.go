package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "users"
	sessionsCollection = "sessions"
)

// firestoreRepo implements Repository on Firestore. One document per
// (user, session); document writes are atomic, which gives the append-only
// store its per-record write atomicity.
type firestoreRepo struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore-backed session repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (Repository, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project", projectID), goerr.V("database", databaseID))
	}

	return &firestoreRepo{client: client}, nil
}

func (r *firestoreRepo) sessions(userID model.UserID) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(string(userID)).Collection(sessionsCollection)
}

func (r *firestoreRepo) PutSession(ctx context.Context, record *model.SessionRecord) error {
	if record.UserID == "" || record.SessionID == "" {
		return goerr.Wrap(model.ErrStore, "user ID and session ID are required")
	}

	doc := r.sessions(record.UserID).Doc(string(record.SessionID))
	if _, err := doc.Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to save session record",
			goerr.V("user_id", record.UserID), goerr.V("session_id", record.SessionID))
	}

	return nil
}

func (r *firestoreRepo) GetSession(ctx context.Context, userID model.UserID, sessionID model.SessionID) (*model.SessionRecord, error) {
	snap, err := r.sessions(userID).Doc(string(sessionID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrStore, "session not found",
				goerr.V("user_id", userID), goerr.V("session_id", sessionID))
		}
		return nil, goerr.Wrap(err, "failed to get session record",
			goerr.V("user_id", userID), goerr.V("session_id", sessionID))
	}

	var record model.SessionRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session record")
	}

	return &record, nil
}

func (r *firestoreRepo) ListSessions(ctx context.Context, userID model.UserID) ([]*model.SessionRecord, error) {
	it := r.sessions(userID).OrderBy("created_at", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var records []*model.SessionRecord
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list session records", goerr.V("user_id", userID))
		}

		var record model.SessionRecord
		if err := snap.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode session record")
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *firestoreRepo) LatestPrior(ctx context.Context, userID model.UserID, before time.Time) (*model.SessionRecord, error) {
	it := r.sessions(userID).
		Where("created_at", "<", before).
		OrderBy("created_at", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query prior session", goerr.V("user_id", userID))
	}

	var record model.SessionRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session record")
	}

	return &record, nil
}
