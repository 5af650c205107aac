package handler

import (
	"github.com/deppfellow/microblog/internal/errs"
	"github.com/deppfellow/microblog/internal/model"
	"github.com/deppfellow/microblog/internal/server"
	"github.com/deppfellow/microblog/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the user-scoped read endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListUsers returns every user. No pagination, no filtering.
func (h *UserHandler) ListUsers(c echo.Context, req *EmptyRequest) ([]model.User, error) {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// GetUser returns one user by id. The repository reports absence as an
// empty result; here that becomes a 404 so clients can tell the cases apart.
func (h *UserHandler) GetUser(c echo.Context, req *UserIDRequest) (*model.User, error) {
	user, err := h.users.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found", false, nil)
	}
	return user, nil
}

// ListUserTweets returns the tweets authored by a user, oldest first.
func (h *UserHandler) ListUserTweets(c echo.Context, req *UserIDRequest) ([]model.Tweet, error) {
	tweets, err := h.users.Tweets(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	return tweets, nil
}

// ListUserFollowers returns the users following a user.
func (h *UserHandler) ListUserFollowers(c echo.Context, req *UserIDRequest) ([]model.FollowerRef, error) {
	followers, err := h.users.Followers(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if followers == nil {
		followers = []model.FollowerRef{}
	}
	return followers, nil
}
