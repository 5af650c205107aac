package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/hibiken/asynq"
)

const (
	// TaskTrendingRefresh is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskTrendingRefresh = "stats:trending"

	// defaultTrendingLimit caps how many hashtags a refresh reports
	// when the payload doesn't say otherwise.
	defaultTrendingLimit = 10
)

// TrendingSource produces the hashtag usage counts the refresh task logs.
// The stats service implements it.
type TrendingSource interface {
	Trending(ctx context.Context, limit int) ([]model.HashtagCount, error)
}

// TrendingRefreshPayload is the JSON payload for the trending refresh task.
type TrendingRefreshPayload struct {
	Limit int `json:"limit"`
}

// NewTrendingRefreshTask constructs an Asynq task that recomputes the top
// hashtags. Retries up to 3 times, runs on the low queue, and is killed
// after 30 seconds.
func NewTrendingRefreshTask(limit int) (*asynq.Task, error) {
	payload, err := json.Marshal(TrendingRefreshPayload{Limit: limit})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskTrendingRefresh,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
