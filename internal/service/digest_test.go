package service

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/microblog/internal/errs"
	"github.com/deppfellow/microblog/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureUsers() []model.User {
	return []model.User{
		{ID: 1, Username: "albert"},
		{ID: 2, Username: "grace"},
		{ID: 3, Username: "edsger"},
	}
}

func fixtureTweets() []model.Tweet {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.Tweet{
		{ID: 10, AuthorID: 1, Body: "relativity holds up", CreatedAt: created},
		{ID: 11, AuthorID: 1, Body: "still thinking about light", CreatedAt: created.Add(time.Hour)},
	}
}

func TestUserDigest(t *testing.T) {
	users := &fakeUserRepo{
		list: func(ctx context.Context) ([]model.User, error) {
			return fixtureUsers(), nil
		},
		getByID: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: 1, Username: "albert"}, nil
		},
	}
	tweets := &fakeTweetRepo{
		listByAuthor: func(ctx context.Context, authorID int64) ([]model.Tweet, error) {
			return fixtureTweets(), nil
		},
	}
	hashtags := &fakeHashtagRepo{
		listByTweet: func(ctx context.Context, tweetID int64) ([]model.Hashtag, error) {
			assert.Equal(t, int64(10), tweetID, "hashtag lookup must target the first tweet")
			return []model.Hashtag{{ID: 5, Tag: "physics"}}, nil
		},
	}
	follows := &fakeFollowRepo{
		listFollowers: func(ctx context.Context, userID int64) ([]model.FollowerRef, error) {
			return []model.FollowerRef{{ID: 2, Username: "grace"}}, nil
		},
	}
	likes := &fakeLikeRepo{
		countByTweet: func(ctx context.Context, tweetID int64) (int64, error) {
			assert.Equal(t, int64(10), tweetID, "like count must target the first tweet")
			return 1, nil
		},
	}

	svc := NewDigestService(users, tweets, hashtags, follows, likes)

	digest, err := svc.UserDigest(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, digest)

	assert.Equal(t, &model.User{ID: 1, Username: "albert"}, digest.User)
	assert.Equal(t, fixtureUsers(), digest.AllUsers)
	assert.Equal(t, fixtureTweets(), digest.Tweets)

	require.NotNil(t, digest.FirstTweet)
	assert.Equal(t, int64(10), digest.FirstTweet.ID)

	assert.Equal(t, []model.Hashtag{{ID: 5, Tag: "physics"}}, digest.FirstTweetHashtags)
	assert.Equal(t, int64(1), digest.FirstTweetLikes)
	assert.Equal(t, []model.FollowerRef{{ID: 2, Username: "grace"}}, digest.Followers)
}

func TestUserDigestSingleTweetFixture(t *testing.T) {
	users := &fakeUserRepo{
		getByID: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: 1, Username: "albert"}, nil
		},
		list: func(ctx context.Context) ([]model.User, error) {
			return []model.User{{ID: 1, Username: "albert"}}, nil
		},
	}
	tweets := &fakeTweetRepo{
		listByAuthor: func(ctx context.Context, authorID int64) ([]model.Tweet, error) {
			return []model.Tweet{{ID: 1, AuthorID: 1, Body: "select * from brain"}}, nil
		},
	}
	hashtags := &fakeHashtagRepo{
		listByTweet: func(ctx context.Context, tweetID int64) ([]model.Hashtag, error) {
			return []model.Hashtag{{ID: 1, Tag: "sql"}}, nil
		},
	}

	svc := NewDigestService(users, tweets, hashtags, &fakeFollowRepo{}, &fakeLikeRepo{})

	digest, err := svc.UserDigest(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, digest.Tweets, 1)
	assert.Equal(t, int64(1), digest.Tweets[0].ID)
	require.Len(t, digest.FirstTweetHashtags, 1)
	assert.Equal(t, "sql", digest.FirstTweetHashtags[0].Tag)
	assert.Zero(t, digest.FirstTweetLikes)
	assert.Empty(t, digest.Followers)
}

func TestUserDigestNoTweets(t *testing.T) {
	users := &fakeUserRepo{
		getByID: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: 3, Username: "edsger"}, nil
		},
		list: func(ctx context.Context) ([]model.User, error) {
			return fixtureUsers(), nil
		},
	}
	hashtags := &fakeHashtagRepo{
		listByTweet: func(ctx context.Context, tweetID int64) ([]model.Hashtag, error) {
			t.Error("hashtag lookup must not run for a user with no tweets")
			return nil, nil
		},
	}
	likes := &fakeLikeRepo{
		countByTweet: func(ctx context.Context, tweetID int64) (int64, error) {
			t.Error("like count must not run for a user with no tweets")
			return 0, nil
		},
	}

	svc := NewDigestService(users, &fakeTweetRepo{}, hashtags, &fakeFollowRepo{}, likes)

	digest, err := svc.UserDigest(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, digest)

	assert.Nil(t, digest.FirstTweet)
	assert.Empty(t, digest.Tweets)
	assert.NotNil(t, digest.FirstTweetHashtags)
	assert.Empty(t, digest.FirstTweetHashtags)
	assert.Zero(t, digest.FirstTweetLikes)
}

func TestUserDigestUnknownUser(t *testing.T) {
	svc := NewDigestService(&fakeUserRepo{}, &fakeTweetRepo{}, &fakeHashtagRepo{}, &fakeFollowRepo{}, &fakeLikeRepo{})

	digest, err := svc.UserDigest(context.Background(), 99)
	require.Error(t, err)
	assert.Nil(t, digest)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestUserDigestPropagatesLookupError(t *testing.T) {
	boom := errors.New("connection reset")

	users := &fakeUserRepo{
		getByID: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: 1, Username: "albert"}, nil
		},
	}
	follows := &fakeFollowRepo{
		listFollowers: func(ctx context.Context, userID int64) ([]model.FollowerRef, error) {
			return nil, boom
		},
	}

	svc := NewDigestService(users, &fakeTweetRepo{}, &fakeHashtagRepo{}, follows, &fakeLikeRepo{})

	digest, err := svc.UserDigest(context.Background(), 1)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, digest)
}
