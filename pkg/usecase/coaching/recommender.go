package coaching

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/utils/logging"
)

// recommend sources one practice exercise per weak metric from the external
// search backend. Recommendations are deduplicated per metric (top result
// only) and across metrics by source URL.
func (uc *UseCase) recommend(ctx context.Context, combined *model.CombinedAnalysis) ([]string, error) {
	weak := surfaceWeakMetrics(combined, uc.thresholds)
	if len(weak) == 0 {
		return nil, nil
	}

	logger := logging.From(ctx)

	seen := make(map[string]bool)
	var recs []string
	var lastErr error

	for _, w := range weak {
		results, err := uc.search.Search(ctx, w.Query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("exercise search failed", "metric", w.Name, "error", err)
			lastErr = err
			continue
		}
		if len(results) == 0 {
			continue
		}

		top := results[0]
		if top.URL != "" && seen[top.URL] {
			continue
		}
		if top.URL != "" {
			seen[top.URL] = true
		}

		rec := top.Snippet
		if rec == "" {
			rec = top.Title
		}
		if top.URL != "" {
			rec = fmt.Sprintf("%s (source: %s)", rec, top.URL)
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 && lastErr != nil {
		return nil, goerr.Wrap(model.ErrRecommendation, "all exercise searches failed",
			goerr.V("stage", "recommender"), goerr.V("error", lastErr.Error()))
	}

	return recs, nil
}
