package coaching_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/repository"
	"github.com/orator-dev/orator/pkg/usecase/coaching"
)

func noRecommendations(ctx context.Context, combined *model.CombinedAnalysis) ([]string, error) {
	return nil, nil
}

func TestRunCoach(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects incomplete analysis", func(t *testing.T) {
		uc := coaching.New(repository.NewMemory(), &mockGemini{}, &mockSearch{})

		_, err := uc.RunCoach(ctx, &model.CombinedAnalysis{Vision: strongAnalysis().Vision})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("incomplete analysis")
	})

	t.Run("no feedback when no threshold is crossed", func(t *testing.T) {
		uc := coaching.New(repository.NewMemory(), &mockGemini{}, &mockSearch{},
			coaching.WithRecommender(noRecommendations),
		)

		out, err := uc.RunCoach(ctx, strongAnalysis())
		gt.NoError(t, err)
		gt.A(t, out.Feedback).Length(0)
		gt.A(t, out.Priorities).Length(0)
		gt.True(t, len(out.Strengths) > 0)
	})

	t.Run("weak metrics produce feedback and top priorities", func(t *testing.T) {
		uc := coaching.New(repository.NewMemory(), &mockGemini{}, &mockSearch{},
			coaching.WithRecommender(noRecommendations),
		)

		out, err := uc.RunCoach(ctx, weakAnalysis())
		gt.NoError(t, err)
		gt.A(t, out.Feedback).Length(7)
		gt.A(t, out.Priorities).Length(3)
		gt.V(t, out.Priorities[0]).Equal("vision.eye_contact")
		gt.V(t, out.Priorities[1]).Equal("voice.fillers")
		gt.V(t, out.Priorities[2]).Equal("voice.wpm")
	})

	t.Run("aggregator failure fails the stage", func(t *testing.T) {
		uc := coaching.New(repository.NewMemory(), &mockGemini{}, &mockSearch{},
			coaching.WithAggregator(func(ctx context.Context, combined *model.CombinedAnalysis) ([]string, []string, []string, error) {
				return nil, nil, nil, errors.New("synthesis broke")
			}),
			coaching.WithRecommender(noRecommendations),
		)

		out, err := uc.RunCoach(ctx, weakAnalysis())
		gt.Error(t, err)
		gt.Nil(t, out)
		gt.S(t, err.Error()).Contains("aggregator failed")
	})

	t.Run("recommender failure degrades to empty recommendations", func(t *testing.T) {
		uc := coaching.New(repository.NewMemory(), &mockGemini{}, &mockSearch{},
			coaching.WithRecommender(func(ctx context.Context, combined *model.CombinedAnalysis) ([]string, error) {
				return nil, errors.New("search backend down")
			}),
		)

		out, err := uc.RunCoach(ctx, weakAnalysis())
		gt.NoError(t, err)
		gt.A(t, out.Recommendations).Length(0)
		gt.True(t, len(out.Feedback) > 0)
	})

	t.Run("cancelled context fails the stage", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		uc := coaching.New(repository.NewMemory(), &mockGemini{}, &mockSearch{},
			coaching.WithRecommender(noRecommendations),
		)

		_, err := uc.RunCoach(cancelled, weakAnalysis())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
	})
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("one recommendation per weak metric with source", func(t *testing.T) {
		calls := 0
		search := &mockSearch{
			searchFunc: func(ctx context.Context, query string) ([]*adapter.SearchResult, error) {
				calls++
				return []*adapter.SearchResult{
					{
						Title:   "Practice drill",
						Snippet: "Daily exercise for " + query,
						URL:     "https://example.com/" + strings.ReplaceAll(query, " ", "-"),
					},
				}, nil
			},
		}

		uc := coaching.New(repository.NewMemory(), &mockGemini{}, search)
		out, err := uc.RunCoach(ctx, weakAnalysis())
		gt.NoError(t, err)

		gt.A(t, out.Recommendations).Length(7)
		gt.V(t, calls).Equal(7)
		for _, rec := range out.Recommendations {
			gt.S(t, rec).Contains("(source: https://example.com/")
		}
	})

	t.Run("duplicate sources are collapsed", func(t *testing.T) {
		search := &mockSearch{
			searchFunc: func(ctx context.Context, query string) ([]*adapter.SearchResult, error) {
				return []*adapter.SearchResult{
					{Snippet: "Record yourself and review weekly", URL: "https://example.com/one-guide"},
				}, nil
			},
		}

		uc := coaching.New(repository.NewMemory(), &mockGemini{}, search)
		out, err := uc.RunCoach(ctx, weakAnalysis())
		gt.NoError(t, err)
		gt.A(t, out.Recommendations).Length(1)
	})

	t.Run("all searches failing degrades the stage, not the run", func(t *testing.T) {
		search := &mockSearch{
			searchFunc: func(ctx context.Context, query string) ([]*adapter.SearchResult, error) {
				return nil, errors.New("no route to host")
			},
		}

		uc := coaching.New(repository.NewMemory(), &mockGemini{}, search)
		out, err := uc.RunCoach(ctx, weakAnalysis())
		gt.NoError(t, err)
		gt.A(t, out.Recommendations).Length(0)
		gt.A(t, out.Feedback).Length(7)
	})

	t.Run("no searches issued when nothing is weak", func(t *testing.T) {
		search := &mockSearch{
			searchFunc: func(ctx context.Context, query string) ([]*adapter.SearchResult, error) {
				t.Error("unexpected search call")
				return nil, nil
			},
		}

		uc := coaching.New(repository.NewMemory(), &mockGemini{}, search)
		out, err := uc.RunCoach(ctx, strongAnalysis())
		gt.NoError(t, err)
		gt.A(t, out.Recommendations).Length(0)
	})
}
