package chat

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/repository"
	"google.golang.org/genai"
)

// Session manages an interactive follow-up conversation about a stored
// coaching session result.
type Session struct {
	gemini adapter.Gemini
	record *model.SessionRecord

	contents []*genai.Content
}

// NewInput contains parameters for creating a follow-up chat session
type NewInput struct {
	Repo      repository.Repository
	Gemini    adapter.Gemini
	UserID    model.UserID
	SessionID model.SessionID
}

func New(ctx context.Context, input NewInput) (*Session, error) {
	record, err := input.Repo.GetSession(ctx, input.UserID, input.SessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load session record")
	}

	return &Session{
		gemini: input.Gemini,
		record: record,
	}, nil
}

func (s *Session) Send(ctx context.Context, message string) (string, error) {
	resultJSON, err := json.MarshalIndent(s.record.Result, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal session result")
	}

	systemPrompt := "You are a communication coach discussing a completed interview " +
		"analysis with the candidate. Refer to the following session result when " +
		"answering, cite exact metric values, and keep answers short and practical.\n\n" +
		"Session Result:\n" + string(resultJSON)

	userContent := genai.NewContentFromText(message, genai.RoleUser)
	s.contents = append(s.contents, userContent)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, ""),
	}

	resp, err := s.gemini.GenerateContent(ctx, s.contents, config)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content")
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		s.contents = append(s.contents, resp.Candidates[0].Content)
	}

	return adapter.ResponseText(resp), nil
}
