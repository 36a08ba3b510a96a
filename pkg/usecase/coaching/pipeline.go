package coaching

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/utils/logging"
)

// RunAnalysis executes the sequential analysis pipeline: prepare the inputs,
// then run the three modality analyzers. The analyzers share no data
// dependency, so order does not matter; any failure fails the whole pipeline
// and partial results are discarded. Coaching from an incomplete analysis is
// considered unreliable.
func (uc *UseCase) RunAnalysis(ctx context.Context, videoPath string) (*model.CombinedAnalysis, error) {
	logger := logging.From(ctx)

	input, err := uc.prepare(ctx, uc.gemini, videoPath)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrPipeline, err), "analysis pipeline failed",
			goerr.V("stage", "prepare"))
	}

	logger.Info("analysis input prepared",
		"video", videoPath,
		"duration_seconds", input.DurationSeconds,
		"transcript_chars", len(input.Transcript))

	vision, err := uc.vision.Analyze(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrPipeline, err), "analysis pipeline failed",
			goerr.V("modality", model.ModalityVision))
	}

	voice, err := uc.voice.Analyze(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrPipeline, err), "analysis pipeline failed",
			goerr.V("modality", model.ModalityVoice))
	}

	language, err := uc.language.Analyze(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrPipeline, err), "analysis pipeline failed",
			goerr.V("modality", model.ModalityLanguage))
	}

	combined := &model.CombinedAnalysis{
		Vision:   vision,
		Voice:    voice,
		Language: language,
	}

	logger.Info("analysis pipeline complete",
		"wpm", voice.WPM,
		"fillers", voice.Fillers,
		"eye_contact", vision.EyeContact,
		"grammar_score", language.GrammarScore)

	return combined, nil
}
