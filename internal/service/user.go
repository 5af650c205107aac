package service

import (
	"context"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/deppfellow/microblog/internal/repository"
)

// UserService serves user lookups and everything hanging off a user:
// tweets, followers.
type UserService struct {
	users   repository.UserRepository
	tweets  repository.TweetRepository
	follows repository.FollowRepository
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository, tweets repository.TweetRepository, follows repository.FollowRepository) *UserService {
	return &UserService{
		users:   users,
		tweets:  tweets,
		follows: follows,
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Get returns the user with the given id, or (nil, nil) when absent.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Tweets returns the tweets authored by the given user.
func (s *UserService) Tweets(ctx context.Context, userID int64) ([]model.Tweet, error) {
	return s.tweets.ListByAuthor(ctx, userID)
}

// Followers returns the users following the given user.
func (s *UserService) Followers(ctx context.Context, userID int64) ([]model.FollowerRef, error) {
	return s.follows.ListFollowers(ctx, userID)
}
