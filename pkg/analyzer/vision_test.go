package analyzer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orator-dev/orator/pkg/analyzer"
	"github.com/orator-dev/orator/pkg/model"
	"google.golang.org/genai"
)

func writeTempVideo(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte("fake video payload"), 0600))
	return path
}

func TestVisionAnalyze(t *testing.T) {
	ctx := context.Background()

	visionJSON := `{"joy": 0.6, "sorrow": 0.05, "surprise": 0.1, "eye_contact": 0.75, "smile_ratio": 0.3, "head_nods": 4}`

	t.Run("maps response into fixed-schema metrics", func(t *testing.T) {
		mock := &mockGemini{
			generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse(visionJSON), nil
			},
		}

		vision := analyzer.NewVision(mock)
		metrics, err := vision.Analyze(ctx, &analyzer.Input{
			VideoPath:       writeTempVideo(t, "answer.mp4"),
			DurationSeconds: 90,
		})
		gt.NoError(t, err)

		gt.V(t, metrics.Expressions.Joy).Equal(0.6)
		gt.V(t, metrics.EyeContact).Equal(0.75)
		gt.V(t, metrics.SmileRatio).Equal(0.3)
		gt.V(t, metrics.HeadNods).Equal(4)
	})

	t.Run("frame count is capped", func(t *testing.T) {
		mock := &mockGemini{
			generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse(visionJSON), nil
			},
		}
		vision := analyzer.NewVision(mock)

		metrics, err := vision.Analyze(ctx, &analyzer.Input{
			VideoPath:       writeTempVideo(t, "long.mp4"),
			DurationSeconds: 300,
		})
		gt.NoError(t, err)
		gt.V(t, metrics.FramesAnalyzed).Equal(20)

		metrics, err = vision.Analyze(ctx, &analyzer.Input{
			VideoPath:       writeTempVideo(t, "short.mp4"),
			DurationSeconds: 0.4,
		})
		gt.NoError(t, err)
		gt.V(t, metrics.FramesAnalyzed).Equal(1)
	})

	t.Run("unsupported video format fails", func(t *testing.T) {
		vision := analyzer.NewVision(&mockGemini{})
		_, err := vision.Analyze(ctx, &analyzer.Input{
			VideoPath:       writeTempVideo(t, "answer.gif"),
			DurationSeconds: 30,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrAnalysis))
	})

	t.Run("missing video file fails", func(t *testing.T) {
		vision := analyzer.NewVision(&mockGemini{})
		_, err := vision.Analyze(ctx, &analyzer.Input{
			VideoPath: filepath.Join(t.TempDir(), "missing.mp4"),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrAnalysis))
	})

	t.Run("inference failure carries analysis error", func(t *testing.T) {
		mock := &mockGemini{
			generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, errors.New("model overloaded")
			},
		}

		vision := analyzer.NewVision(mock)
		_, err := vision.Analyze(ctx, &analyzer.Input{
			VideoPath:       writeTempVideo(t, "answer.mp4"),
			DurationSeconds: 30,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrAnalysis))
		gt.S(t, err.Error()).Contains("vision inference failed")
	})
}
