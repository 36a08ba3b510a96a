package analyzer

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"google.golang.org/genai"
)

//go:embed prompt/voice.md
var voicePromptRaw string

type voiceAnalyzer struct {
	gemini adapter.Gemini
}

// NewVoice creates the voice modality analyzer. Pace, word count, and filler
// count come from the transcript and duration; pitch and energy come from
// audio inference.
func NewVoice(gemini adapter.Gemini) VoiceAnalyzer {
	return &voiceAnalyzer{gemini: gemini}
}

type voiceResponse struct {
	PitchHz float64 `json:"pitch_hz"`
	Energy  float64 `json:"energy"`
}

var voiceResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"pitch_hz": {Type: genai.TypeNumber, Description: "Average fundamental frequency in Hz"},
		"energy":   {Type: genai.TypeNumber, Description: "Average vocal energy as RMS amplitude in [0,1]"},
	},
	Required: []string{"pitch_hz", "energy"},
}

func (a *voiceAnalyzer) Analyze(ctx context.Context, input *Input) (*model.VoiceMetrics, error) {
	if input.Transcript == "" {
		return nil, goerr.Wrap(model.ErrAnalysis, "empty transcript", goerr.V("modality", model.ModalityVoice))
	}
	if input.DurationSeconds <= 0 {
		return nil, goerr.Wrap(model.ErrAnalysis, "non-positive audio duration", goerr.V("modality", model.ModalityVoice))
	}

	data, err := os.ReadFile(input.AudioPath)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "failed to read audio file",
			goerr.V("modality", model.ModalityVoice), goerr.V("path", input.AudioPath))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(voicePromptRaw),
			genai.NewPartFromBytes(data, "audio/wav"),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   voiceResponseSchema,
	}

	resp, err := a.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "voice inference failed",
			goerr.V("modality", model.ModalityVoice))
	}

	var parsed voiceResponse
	if err := json.Unmarshal([]byte(adapter.ResponseText(resp)), &parsed); err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "malformed voice response",
			goerr.V("modality", model.ModalityVoice))
	}

	wordCount := CountWords(input.Transcript)

	return &model.VoiceMetrics{
		Transcript:      input.Transcript,
		WPM:             float64(wordCount) / (input.DurationSeconds / 60),
		PitchHz:         parsed.PitchHz,
		Energy:          parsed.Energy,
		Fillers:         CountFillers(input.Transcript),
		DurationSeconds: input.DurationSeconds,
		WordCount:       wordCount,
	}, nil
}
