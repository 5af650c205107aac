package handler

import (
	"github.com/deppfellow/microblog/internal/model"
	"github.com/deppfellow/microblog/internal/server"
	"github.com/deppfellow/microblog/internal/service"
	"github.com/labstack/echo/v4"
)

// TweetHandler serves the tweet-scoped read endpoints.
type TweetHandler struct {
	Handler
	tweets *service.TweetService
}

// NewTweetHandler constructs a TweetHandler.
func NewTweetHandler(s *server.Server, tweets *service.TweetService) *TweetHandler {
	return &TweetHandler{
		Handler: NewHandler(s),
		tweets:  tweets,
	}
}

// ListTweetHashtags returns the hashtags attached to a tweet.
func (h *TweetHandler) ListTweetHashtags(c echo.Context, req *TweetIDRequest) ([]model.Hashtag, error) {
	hashtags, err := h.tweets.Hashtags(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if hashtags == nil {
		hashtags = []model.Hashtag{}
	}
	return hashtags, nil
}

// GetTweetLikeCount returns the like count for a tweet. A tweet nobody
// liked returns {likes: 0}, not an error.
func (h *TweetHandler) GetTweetLikeCount(c echo.Context, req *TweetIDRequest) (*model.LikeCount, error) {
	return h.tweets.LikeCount(c.Request().Context(), req.ID)
}
