package analyzer

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"google.golang.org/genai"
)

//go:embed prompt/language.md
var languagePromptRaw string

// languageMaxTokens bounds the transcript handed to language inference.
const languageMaxTokens = 2000

type languageAnalyzer struct {
	gemini adapter.Gemini
}

// NewLanguage creates the language modality analyzer. Sentence statistics,
// filler count, and vocabulary diversity are computed from the transcript;
// grammar, confidence, and sentiment come from inference over the compacted
// transcript.
func NewLanguage(gemini adapter.Gemini) LanguageAnalyzer {
	return &languageAnalyzer{gemini: gemini}
}

type languageResponse struct {
	GrammarScore float64 `json:"grammar_score"`
	Confidence   float64 `json:"confidence"`
	Sentiment    string  `json:"sentiment"`
}

var languageResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"grammar_score": {Type: genai.TypeNumber, Description: "Grammatical quality in [0,1]"},
		"confidence":    {Type: genai.TypeNumber, Description: "Speaker confidence based on linguistic patterns in [0,1]"},
		"sentiment": {
			Type:        genai.TypeString,
			Description: "Overall tone",
			Enum:        []string{"positive", "negative", "neutral"},
		},
	},
	Required: []string{"grammar_score", "confidence", "sentiment"},
}

func (a *languageAnalyzer) Analyze(ctx context.Context, input *Input) (*model.LanguageMetrics, error) {
	if input.Transcript == "" {
		return nil, goerr.Wrap(model.ErrAnalysis, "empty transcript", goerr.V("modality", model.ModalityLanguage))
	}

	compacted := Compact(input.Transcript, languageMaxTokens)

	contents := []*genai.Content{
		genai.NewContentFromText(languagePromptRaw+"\n\n## Transcript\n\n"+compacted, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   languageResponseSchema,
	}

	resp, err := a.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "language inference failed",
			goerr.V("modality", model.ModalityLanguage))
	}

	var parsed languageResponse
	if err := json.Unmarshal([]byte(adapter.ResponseText(resp)), &parsed); err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "malformed language response",
			goerr.V("modality", model.ModalityLanguage))
	}

	sentiment := model.Sentiment(parsed.Sentiment)
	switch sentiment {
	case model.SentimentPositive, model.SentimentNegative, model.SentimentNeutral:
	default:
		sentiment = model.SentimentNeutral
	}

	// Sentence statistics use the full transcript, not the compacted one.
	sentences := SplitSentences(input.Transcript)
	var avgLen float64
	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += CountWords(s)
		}
		avgLen = float64(total) / float64(len(sentences))
	}

	return &model.LanguageMetrics{
		GrammarScore:      parsed.GrammarScore,
		Confidence:        parsed.Confidence,
		FillerWords:       CountFillers(input.Transcript),
		SentenceCount:     len(sentences),
		AvgSentenceLength: avgLen,
		VocabDiversity:    VocabDiversity(input.Transcript),
		Sentiment:         sentiment,
	}, nil
}
