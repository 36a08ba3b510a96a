package coaching

import (
	"context"

	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/analyzer"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/repository"
)

// prepareFunc builds analyzer input from a video path
type prepareFunc func(ctx context.Context, gemini adapter.Gemini, videoPath string) (*analyzer.Input, error)

// aggregateFunc synthesizes analysis metrics into prioritized feedback
type aggregateFunc func(ctx context.Context, combined *model.CombinedAnalysis) (feedback, strengths, priorities []string, err error)

// recommendFunc sources practice exercises for weak metrics
type recommendFunc func(ctx context.Context, combined *model.CombinedAnalysis) ([]string, error)

// UseCase provides coaching session operations
type UseCase struct {
	repo    repository.Repository
	gemini  adapter.Gemini
	search  adapter.Search
	storage adapter.Storage

	vision   analyzer.VisionAnalyzer
	voice    analyzer.VoiceAnalyzer
	language analyzer.LanguageAnalyzer
	prepare  prepareFunc

	aggregator  aggregateFunc
	recommender recommendFunc

	thresholds *Thresholds
	evaluate   bool
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithStorage sets the optional artifact storage for transcripts and results
func WithStorage(storage adapter.Storage) Option {
	return func(uc *UseCase) {
		uc.storage = storage
	}
}

// WithThresholds overrides the default aggregator thresholds
func WithThresholds(th *Thresholds) Option {
	return func(uc *UseCase) {
		uc.thresholds = th
	}
}

// WithoutEvaluation disables the feedback quality evaluation step
func WithoutEvaluation() Option {
	return func(uc *UseCase) {
		uc.evaluate = false
	}
}

// WithAnalyzers replaces the modality analyzers; used by tests
func WithAnalyzers(vision analyzer.VisionAnalyzer, voice analyzer.VoiceAnalyzer, language analyzer.LanguageAnalyzer) Option {
	return func(uc *UseCase) {
		uc.vision = vision
		uc.voice = voice
		uc.language = language
	}
}

// WithPrepare replaces the input preparation step; used by tests
func WithPrepare(prepare prepareFunc) Option {
	return func(uc *UseCase) {
		uc.prepare = prepare
	}
}

// WithAggregator replaces the aggregator; used by tests
func WithAggregator(fn aggregateFunc) Option {
	return func(uc *UseCase) {
		uc.aggregator = fn
	}
}

// WithRecommender replaces the recommender; used by tests
func WithRecommender(fn recommendFunc) Option {
	return func(uc *UseCase) {
		uc.recommender = fn
	}
}

// New creates a new coaching UseCase instance
func New(repo repository.Repository, gemini adapter.Gemini, search adapter.Search, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:       repo,
		gemini:     gemini,
		search:     search,
		vision:     analyzer.NewVision(gemini),
		voice:      analyzer.NewVoice(gemini),
		language:   analyzer.NewLanguage(gemini),
		prepare:    analyzer.Prepare,
		thresholds: DefaultThresholds(),
		evaluate:   true,
	}

	uc.aggregator = uc.aggregate
	uc.recommender = uc.recommend

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
