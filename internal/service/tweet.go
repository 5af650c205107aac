package service

import (
	"context"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/deppfellow/microblog/internal/repository"
)

// TweetService serves tweet-scoped lookups: hashtags and like counts.
type TweetService struct {
	hashtags repository.HashtagRepository
	likes    repository.LikeRepository
}

// NewTweetService constructs a TweetService.
func NewTweetService(hashtags repository.HashtagRepository, likes repository.LikeRepository) *TweetService {
	return &TweetService{
		hashtags: hashtags,
		likes:    likes,
	}
}

// Hashtags returns the hashtags attached to the given tweet.
func (s *TweetService) Hashtags(ctx context.Context, tweetID int64) ([]model.Hashtag, error) {
	return s.hashtags.ListByTweet(ctx, tweetID)
}

// LikeCount returns the aggregate like count for the given tweet.
// A tweet nobody liked counts as 0.
func (s *TweetService) LikeCount(ctx context.Context, tweetID int64) (*model.LikeCount, error) {
	count, err := s.likes.CountByTweet(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	return &model.LikeCount{TweetID: tweetID, Likes: count}, nil
}
