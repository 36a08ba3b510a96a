package coaching

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// coachOutput is the fan-in result of the parallel coach stage.
type coachOutput struct {
	Feedback        []string
	Strengths       []string
	Priorities      []string
	Recommendations []string
}

// RunCoach executes the parallel coach stage: the aggregator and the
// recommender run concurrently against the same read-only analysis. The
// aggregator's feedback is the primary deliverable, so its failure fails the
// stage; recommender failure degrades to empty recommendations.
func (uc *UseCase) RunCoach(ctx context.Context, combined *model.CombinedAnalysis) (*coachOutput, error) {
	if !combined.Complete() {
		return nil, goerr.Wrap(model.ErrPipeline, "incomplete analysis handed to coach stage",
			goerr.V("stage", "coach"))
	}

	out := &coachOutput{}

	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		feedback, strengths, priorities, err := uc.aggregator(gctx, combined)
		if err != nil {
			return goerr.Wrap(err, "aggregator failed", goerr.V("stage", "aggregator"))
		}
		out.Feedback = feedback
		out.Strengths = strengths
		out.Priorities = priorities
		return gctx.Err()
	})

	eg.Go(func() error {
		recs, err := uc.recommender(gctx, combined)
		if err != nil {
			// Cancellation must propagate; a search backend failure must not.
			if gctx.Err() != nil {
				return gctx.Err()
			}
			logging.From(ctx).Warn("recommender degraded to no recommendations", "error", err)
			return nil
		}
		out.Recommendations = recs
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "coach stage failed", goerr.V("stage", "coach"))
	}

	return out, nil
}
