package service

import (
	"context"

	"github.com/deppfellow/microblog/internal/errs"
	"github.com/deppfellow/microblog/internal/lib/utils"
	"github.com/deppfellow/microblog/internal/model"
	"github.com/deppfellow/microblog/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DigestService builds the diagnostic aggregate for a user: the user
// record, the full user list, their tweets and followers, plus the
// hashtags and like count of their first tweet.
//
// It exists for manual smoke-testing, not as a production feed.
type DigestService struct {
	users    repository.UserRepository
	tweets   repository.TweetRepository
	hashtags repository.HashtagRepository
	follows  repository.FollowRepository
	likes    repository.LikeRepository
}

// NewDigestService constructs a DigestService.
func NewDigestService(
	users repository.UserRepository,
	tweets repository.TweetRepository,
	hashtags repository.HashtagRepository,
	follows repository.FollowRepository,
	likes repository.LikeRepository,
) *DigestService {
	return &DigestService{
		users:    users,
		tweets:   tweets,
		hashtags: hashtags,
		follows:  follows,
		likes:    likes,
	}
}

// UserDigest assembles the composite record for the given user.
//
// The four mutually independent lookups run concurrently under one
// errgroup; the hashtag and like lookups need the first tweet's id, so
// they run in a second group once the tweet list has landed. Each slice
// keeps the deterministic order its query imposes.
//
// A user with zero tweets yields an empty hashtag list, a zero like
// count, and a nil FirstTweet. An unknown user id yields a typed
// not-found error.
func (s *DigestService) UserDigest(ctx context.Context, userID int64) (*model.UserDigest, error) {
	var (
		user      *model.User
		allUsers  []model.User
		tweets    []model.Tweet
		followers []model.FollowerRef
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		user, err = s.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		allUsers, err = s.users.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		tweets, err = s.tweets.ListByAuthor(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		followers, err = s.follows.ListFollowers(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if user == nil {
		return nil, errs.NewNotFoundError("User not found", false, nil)
	}

	digest := &model.UserDigest{
		User:               user,
		AllUsers:           allUsers,
		Tweets:             tweets,
		FirstTweet:         utils.First(tweets),
		FirstTweetHashtags: []model.Hashtag{},
		Followers:          followers,
	}

	if digest.FirstTweet == nil {
		return digest, nil
	}

	firstID := digest.FirstTweet.ID

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		hashtags, err := s.hashtags.ListByTweet(gctx, firstID)
		if err != nil {
			return err
		}
		if hashtags != nil {
			digest.FirstTweetHashtags = hashtags
		}
		return nil
	})
	g.Go(func() (err error) {
		digest.FirstTweetLikes, err = s.likes.CountByTweet(gctx, firstID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return digest, nil
}
