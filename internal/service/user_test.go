package service

import (
	"context"
	"testing"

	"github.com/deppfellow/microblog/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceGet(t *testing.T) {
	users := &fakeUserRepo{
		getByID: func(ctx context.Context, id int64) (*model.User, error) {
			if id == 1 {
				return &model.User{ID: 1, Username: "albert"}, nil
			}
			return nil, nil
		},
	}

	svc := NewUserService(users, &fakeTweetRepo{}, &fakeFollowRepo{})

	user, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "albert", user.Username)

	// Absence is an empty result, not an error.
	user, err = svc.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserServiceTweetsUnknownAuthor(t *testing.T) {
	tweets := &fakeTweetRepo{
		listByAuthor: func(ctx context.Context, authorID int64) ([]model.Tweet, error) {
			return []model.Tweet{}, nil
		},
	}

	svc := NewUserService(&fakeUserRepo{}, tweets, &fakeFollowRepo{})

	got, err := svc.Tweets(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUserServiceFollowersPropagatesError(t *testing.T) {
	boom := errors.New("bad connection")

	follows := &fakeFollowRepo{
		listFollowers: func(ctx context.Context, userID int64) ([]model.FollowerRef, error) {
			return nil, boom
		},
	}

	svc := NewUserService(&fakeUserRepo{}, &fakeTweetRepo{}, follows)

	_, err := svc.Followers(context.Background(), 1)
	require.ErrorIs(t, err, boom)
}
