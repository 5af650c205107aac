package router

import (
	"net/http"

	"github.com/deppfellow/microblog/internal/handler"
	"github.com/deppfellow/microblog/internal/middleware"
	"github.com/labstack/echo/v4"
)

// digestRPS caps how often a single client can hit the digest endpoint.
// The digest fans out into six queries, so it gets throttled harder than
// the plain lookups.
const digestRPS = 2

// registerAPIRoutes registers the versioned read API. Every endpoint is
// wrapped by handler.Handle so binding, validation, error funneling,
// and request logging behave the same across routes.
func registerAPIRoutes(r *echo.Echo, mw *middleware.Middlewares, h *handler.Handlers) {
	v1 := r.Group("/api/v1")

	newUserID := func() *handler.UserIDRequest { return &handler.UserIDRequest{} }
	newTweetID := func() *handler.TweetIDRequest { return &handler.TweetIDRequest{} }
	newEmpty := func() *handler.EmptyRequest { return &handler.EmptyRequest{} }

	// Users.
	v1.GET("/users", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK, newEmpty))
	v1.GET("/users/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK, newUserID))
	v1.GET("/users/:id/tweets", handler.Handle(h.Users.Handler, h.Users.ListUserTweets, http.StatusOK, newUserID))
	v1.GET("/users/:id/followers", handler.Handle(h.Users.Handler, h.Users.ListUserFollowers, http.StatusOK, newUserID))

	// Tweets.
	v1.GET("/tweets/:id/hashtags", handler.Handle(h.Tweets.Handler, h.Tweets.ListTweetHashtags, http.StatusOK, newTweetID))
	v1.GET("/tweets/:id/likes", handler.Handle(h.Tweets.Handler, h.Tweets.GetTweetLikeCount, http.StatusOK, newTweetID))

	// Diagnostic digest.
	v1.GET("/users/:id/digest",
		handler.Handle(h.Digest.Handler, h.Digest.GetUserDigest, http.StatusOK, newUserID),
		mw.RateLimit.Limit(digestRPS))
}
