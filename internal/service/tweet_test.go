package service

import (
	"context"
	"testing"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetServiceLikeCount(t *testing.T) {
	likes := &fakeLikeRepo{
		countByTweet: func(ctx context.Context, tweetID int64) (int64, error) {
			if tweetID == 10 {
				return 3, nil
			}
			return 0, nil
		},
	}

	svc := NewTweetService(&fakeHashtagRepo{}, likes)

	count, err := svc.LikeCount(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, &model.LikeCount{TweetID: 10, Likes: 3}, count)

	// A tweet nobody liked still produces a zero count, not an error.
	count, err = svc.LikeCount(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, &model.LikeCount{TweetID: 99, Likes: 0}, count)
}

func TestTweetServiceHashtags(t *testing.T) {
	hashtags := &fakeHashtagRepo{
		listByTweet: func(ctx context.Context, tweetID int64) ([]model.Hashtag, error) {
			return []model.Hashtag{
				{ID: 1, Tag: "sql"},
				{ID: 2, Tag: "compilers"},
			}, nil
		},
	}

	svc := NewTweetService(hashtags, &fakeLikeRepo{})

	got, err := svc.Hashtags(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sql", got[0].Tag)
	assert.Equal(t, "compilers", got[1].Tag)
}

func TestStatsServiceTrending(t *testing.T) {
	hashtags := &fakeHashtagRepo{
		trending: func(ctx context.Context, limit int) ([]model.HashtagCount, error) {
			assert.Equal(t, 5, limit)
			return []model.HashtagCount{{Tag: "sql", Tweets: 2}}, nil
		},
	}

	svc := NewStatsService(hashtags)

	got, err := svc.Trending(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []model.HashtagCount{{Tag: "sql", Tweets: 2}}, got)
}
