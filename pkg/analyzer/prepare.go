package analyzer

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/utils/logging"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"google.golang.org/genai"
)

//go:embed prompt/transcribe.md
var transcribePromptRaw string

// Prepare probes the video, extracts a mono 16kHz WAV audio track next to a
// temp dir, and transcribes it once. The resulting Input feeds all three
// analyzers without creating data dependencies between them.
func Prepare(ctx context.Context, gemini adapter.Gemini, videoPath string) (*Input, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return nil, goerr.Wrap(model.ErrAnalysis, "video file not found", goerr.V("path", videoPath))
	}

	duration, err := probeDuration(videoPath)
	if err != nil {
		return nil, err
	}

	audioPath, err := extractAudio(videoPath)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("audio track extracted", "path", audioPath, "duration", duration)

	transcript, err := transcribe(ctx, gemini, audioPath)
	if err != nil {
		return nil, err
	}

	return &Input{
		VideoPath:       videoPath,
		AudioPath:       audioPath,
		Transcript:      transcript,
		DurationSeconds: duration,
	}, nil
}

// probeDuration reads the container duration in seconds via ffprobe
func probeDuration(videoPath string) (float64, error) {
	probeJSON, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "failed to probe video", goerr.V("path", videoPath))
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(probeJSON), &probe); err != nil {
		return 0, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "failed to parse probe output", goerr.V("path", videoPath))
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil || duration <= 0 {
		return 0, goerr.Wrap(model.ErrAnalysis, "video has no readable duration", goerr.V("path", videoPath))
	}

	return duration, nil
}

// extractAudio writes the mono 16kHz WAV track to a temp file and returns its path
func extractAudio(videoPath string) (string, error) {
	dir, err := os.MkdirTemp("", "orator-audio-")
	if err != nil {
		return "", goerr.Wrap(err, "failed to create temp dir")
	}

	audioPath := filepath.Join(dir, "audio.wav")
	err = ffmpeg.Input(videoPath).
		Output(audioPath, ffmpeg.KwArgs{
			"vn": "",
			"ac": "1",
			"ar": "16000",
		}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return "", goerr.Wrap(errors.Join(model.ErrAnalysis, err), "failed to extract audio track", goerr.V("path", videoPath))
	}

	return audioPath, nil
}

// transcribe runs a single transcription pass over the extracted audio
func transcribe(ctx context.Context, gemini adapter.Gemini, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", goerr.Wrap(errors.Join(model.ErrAnalysis, err), "failed to read audio file", goerr.V("path", audioPath))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcribePromptRaw),
			genai.NewPartFromBytes(data, "audio/wav"),
		}, genai.RoleUser),
	}

	resp, err := gemini.GenerateContent(ctx, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return "", goerr.Wrap(errors.Join(model.ErrAnalysis, err), "failed to transcribe audio", goerr.V("path", audioPath))
	}

	transcript := strings.TrimSpace(adapter.ResponseText(resp))
	if transcript == "" {
		return "", goerr.Wrap(model.ErrAnalysis, "transcription produced no text", goerr.V("path", audioPath))
	}

	return transcript, nil
}
