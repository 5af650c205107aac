package job

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTrendingSource struct {
	gotLimit int
	counts   []model.HashtagCount
}

func (s *stubTrendingSource) Trending(ctx context.Context, limit int) ([]model.HashtagCount, error) {
	s.gotLimit = limit
	return s.counts, nil
}

func TestNewTrendingRefreshTask(t *testing.T) {
	task, err := NewTrendingRefreshTask(5)
	require.NoError(t, err)

	assert.Equal(t, TaskTrendingRefresh, task.Type())

	var payload TrendingRefreshPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, 5, payload.Limit)
}

func TestHandleTrendingRefreshTask(t *testing.T) {
	log := zerolog.Nop()
	source := &stubTrendingSource{
		counts: []model.HashtagCount{{Tag: "sql", Tweets: 2}},
	}
	j := &JobService{logger: &log, trending: source}

	task, err := NewTrendingRefreshTask(3)
	require.NoError(t, err)

	require.NoError(t, j.handleTrendingRefreshTask(context.Background(), task))
	assert.Equal(t, 3, source.gotLimit)
}

func TestHandleTrendingRefreshTaskDefaultsLimit(t *testing.T) {
	log := zerolog.Nop()
	source := &stubTrendingSource{}
	j := &JobService{logger: &log, trending: source}

	task, err := NewTrendingRefreshTask(0)
	require.NoError(t, err)

	require.NoError(t, j.handleTrendingRefreshTask(context.Background(), task))
	assert.Equal(t, defaultTrendingLimit, source.gotLimit)
}

func TestHandleTrendingRefreshTaskNoSource(t *testing.T) {
	log := zerolog.Nop()
	j := &JobService{logger: &log}

	task, err := NewTrendingRefreshTask(1)
	require.NoError(t, err)

	require.Error(t, j.handleTrendingRefreshTask(context.Background(), task))
}
