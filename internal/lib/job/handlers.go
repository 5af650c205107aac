package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleTrendingRefreshTask recomputes the top hashtags and logs them.
// It exists for operational smoke-testing: a cheap end-to-end exercise of
// the store through the stats source.
func (j *JobService) handleTrendingRefreshTask(ctx context.Context, t *asynq.Task) error {
	if j.trending == nil {
		return fmt.Errorf("trending source not initialized")
	}

	var payload TrendingRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshalling trending refresh payload: %w", err)
	}

	limit := payload.Limit
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	counts, err := j.trending.Trending(ctx, limit)
	if err != nil {
		return fmt.Errorf("refreshing trending hashtags: %w", err)
	}

	for _, hc := range counts {
		j.logger.Info().
			Str("task", TaskTrendingRefresh).
			Str("tag", hc.Tag).
			Int64("tweets", hc.Tweets).
			Msg("trending hashtag")
	}

	j.logger.Info().
		Str("task", TaskTrendingRefresh).
		Int("hashtags", len(counts)).
		Msg("trending refresh completed")

	return nil
}
