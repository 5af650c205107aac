package service

import (
	"context"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/deppfellow/microblog/internal/repository"
)

// StatsService exposes aggregate statistics. The background trending
// refresh task consumes it through the job.TrendingSource interface.
type StatsService struct {
	hashtags repository.HashtagRepository
}

// NewStatsService constructs a StatsService.
func NewStatsService(hashtags repository.HashtagRepository) *StatsService {
	return &StatsService{hashtags: hashtags}
}

// Trending returns the most used hashtags with their tweet counts.
func (s *StatsService) Trending(ctx context.Context, limit int) ([]model.HashtagCount, error) {
	return s.hashtags.Trending(ctx, limit)
}
