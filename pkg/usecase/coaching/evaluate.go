package coaching

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"google.golang.org/genai"
)

//go:embed prompt/evaluate.md
var evaluatePromptRaw string

var evalResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"relevance_score": {Type: genai.TypeNumber, Description: "How well the feedback matches the metrics, in [0,1]"},
		"actionability":   {Type: genai.TypeNumber, Description: "How actionable the feedback is, in [0,1]"},
	},
	Required: []string{"relevance_score", "actionability"},
}

// evaluateFeedback scores the produced coaching for relevance and
// actionability. Callers treat failure as non-fatal: eval becomes null.
func (uc *UseCase) evaluateFeedback(ctx context.Context, combined *model.CombinedAnalysis, coach *coachOutput) (*model.EvalScores, error) {
	metricsJSON, err := json.MarshalIndent(combined.Flatten(), "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal metrics")
	}

	var sb strings.Builder
	sb.WriteString(evaluatePromptRaw)
	sb.WriteString("\n\n## Metrics\n\n")
	sb.Write(metricsJSON)
	sb.WriteString("\n\n## Feedback\n\n")
	for _, fb := range coach.Feedback {
		sb.WriteString("- " + fb + "\n")
	}
	sb.WriteString("\n## Recommendations\n\n")
	for _, rec := range coach.Recommendations {
		sb.WriteString("- " + rec + "\n")
	}

	contents := []*genai.Content{
		genai.NewContentFromText(sb.String(), genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   evalResponseSchema,
	}

	resp, err := uc.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "evaluation inference failed")
	}

	var scores model.EvalScores
	if err := json.Unmarshal([]byte(adapter.ResponseText(resp)), &scores); err != nil {
		return nil, goerr.Wrap(err, "malformed evaluation response")
	}

	return &scores, nil
}
