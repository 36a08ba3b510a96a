package coaching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/utils/logging"
)

// RunInput contains parameters for one coaching session run
type RunInput struct {
	VideoPath string
	UserID    model.UserID
	SessionID model.SessionID // auto-generated when empty
}

// Run executes a complete coaching session: sequential analysis, parallel
// coaching, progress lookup, evaluation, merge, and persistence. The coach
// stage never starts before the analysis pipeline has fully completed.
func (uc *UseCase) Run(ctx context.Context, input RunInput) (*model.SessionResult, error) {
	if input.VideoPath == "" {
		return nil, goerr.Wrap(model.ErrConfig, "video path is required")
	}
	if input.UserID == "" {
		return nil, goerr.Wrap(model.ErrConfig, "user ID is required")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = model.NewSessionID()
	}

	logger := logging.From(ctx)
	logger.Info("starting coaching session",
		"session_id", sessionID, "user_id", input.UserID, "video", input.VideoPath)

	startedAt := time.Now()

	combined, err := uc.RunAnalysis(ctx, input.VideoPath)
	if err != nil {
		return nil, err
	}

	// Strict stage barrier: a cancellation between stages abandons the run
	// before any coach work starts.
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "run cancelled", goerr.V("session_id", sessionID))
	}

	coach, err := uc.RunCoach(ctx, combined)
	if err != nil {
		return nil, err
	}

	delta, progressNote := uc.lookupProgress(ctx, input.UserID, startedAt, combined)

	var eval *model.EvalScores
	if uc.evaluate {
		scores, err := uc.evaluateFeedback(ctx, combined, coach)
		if err != nil {
			if ctx.Err() != nil {
				return nil, goerr.Wrap(err, "run cancelled", goerr.V("session_id", sessionID))
			}
			logger.Warn("feedback evaluation failed", "error", err)
		} else {
			eval = scores
		}
	}

	result := mergeResult(sessionID, input.UserID, input.VideoPath, startedAt,
		combined, coach, delta, progressNote, eval)

	record := &model.SessionRecord{
		UserID:    input.UserID,
		SessionID: sessionID,
		VideoPath: input.VideoPath,
		Analysis:  combined,
		Result:    result,
		CreatedAt: startedAt,
	}
	if err := uc.repo.PutSession(ctx, record); err != nil {
		return nil, goerr.Wrap(err, "failed to persist session record",
			goerr.V("session_id", sessionID), goerr.V("user_id", input.UserID))
	}

	uc.saveArtifacts(ctx, record)

	logger.Info("coaching session complete", "session_id", sessionID)
	return result, nil
}

// saveArtifacts writes the transcript and result JSON to the artifact bucket.
// Best effort: the session result is already persisted in the repository.
func (uc *UseCase) saveArtifacts(ctx context.Context, record *model.SessionRecord) {
	if uc.storage == nil {
		return
	}

	logger := logging.From(ctx)
	prefix := fmt.Sprintf("sessions/%s/%s", record.UserID, record.SessionID)

	if record.Analysis != nil && record.Analysis.Voice != nil {
		if err := uc.putArtifact(ctx, prefix+"/transcript.txt", []byte(record.Analysis.Voice.Transcript)); err != nil {
			logger.Warn("failed to save transcript artifact", "error", err)
		}
	}

	data, err := json.MarshalIndent(record.Result, "", "  ")
	if err != nil {
		logger.Warn("failed to marshal result artifact", "error", err)
		return
	}
	if err := uc.putArtifact(ctx, prefix+"/result.json", data); err != nil {
		logger.Warn("failed to save result artifact", "error", err)
	}
}

func (uc *UseCase) putArtifact(ctx context.Context, key string, data []byte) error {
	w, err := uc.storage.Put(ctx, key)
	if err != nil {
		return goerr.Wrap(err, "failed to open artifact writer", goerr.V("key", key))
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write artifact", goerr.V("key", key))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close artifact writer", goerr.V("key", key))
	}
	return nil
}
