package analyzer

import (
	"context"

	"github.com/orator-dev/orator/pkg/model"
)

// Input carries the prepared per-modality inputs of one run. Prepare builds it
// once so the three analyzers stay mutually independent: vision consumes the
// video, voice the audio and transcript, language the transcript alone.
type Input struct {
	VideoPath       string
	AudioPath       string
	Transcript      string
	DurationSeconds float64
}

// VisionAnalyzer extracts facial expression and non-verbal metrics from video.
type VisionAnalyzer interface {
	Analyze(ctx context.Context, input *Input) (*model.VisionMetrics, error)
}

// VoiceAnalyzer extracts vocal delivery metrics from audio and transcript.
type VoiceAnalyzer interface {
	Analyze(ctx context.Context, input *Input) (*model.VoiceMetrics, error)
}

// LanguageAnalyzer extracts linguistic metrics from the transcript.
type LanguageAnalyzer interface {
	Analyze(ctx context.Context, input *Input) (*model.LanguageMetrics, error)
}
