package service

import (
	"context"

	"github.com/deppfellow/microblog/internal/model"
)

// Hand-rolled repository fakes. Each field overrides one lookup; nil
// fields return empty results so tests only stub what they assert on.

type fakeUserRepo struct {
	list    func(ctx context.Context) ([]model.User, error)
	getByID func(ctx context.Context, id int64) (*model.User, error)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(ctx)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if f.getByID == nil {
		return nil, nil
	}
	return f.getByID(ctx, id)
}

type fakeTweetRepo struct {
	listByAuthor func(ctx context.Context, authorID int64) ([]model.Tweet, error)
}

func (f *fakeTweetRepo) ListByAuthor(ctx context.Context, authorID int64) ([]model.Tweet, error) {
	if f.listByAuthor == nil {
		return nil, nil
	}
	return f.listByAuthor(ctx, authorID)
}

type fakeHashtagRepo struct {
	listByTweet func(ctx context.Context, tweetID int64) ([]model.Hashtag, error)
	trending    func(ctx context.Context, limit int) ([]model.HashtagCount, error)
}

func (f *fakeHashtagRepo) ListByTweet(ctx context.Context, tweetID int64) ([]model.Hashtag, error) {
	if f.listByTweet == nil {
		return nil, nil
	}
	return f.listByTweet(ctx, tweetID)
}

func (f *fakeHashtagRepo) Trending(ctx context.Context, limit int) ([]model.HashtagCount, error) {
	if f.trending == nil {
		return nil, nil
	}
	return f.trending(ctx, limit)
}

type fakeFollowRepo struct {
	listFollowers func(ctx context.Context, userID int64) ([]model.FollowerRef, error)
}

func (f *fakeFollowRepo) ListFollowers(ctx context.Context, userID int64) ([]model.FollowerRef, error) {
	if f.listFollowers == nil {
		return nil, nil
	}
	return f.listFollowers(ctx, userID)
}

type fakeLikeRepo struct {
	countByTweet func(ctx context.Context, tweetID int64) (int64, error)
}

func (f *fakeLikeRepo) CountByTweet(ctx context.Context, tweetID int64) (int64, error) {
	if f.countByTweet == nil {
		return 0, nil
	}
	return f.countByTweet(ctx, tweetID)
}
