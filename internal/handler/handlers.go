package handler

import (
	"github.com/deppfellow/microblog/internal/server"
	"github.com/deppfellow/microblog/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single
// container instead of a growing argument list.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Users   *UserHandler
	Tweets  *TweetHandler
	Digest  *DigestHandler
}

// NewHandlers constructs the handler container on top of the service
// layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Users:   NewUserHandler(s, services.Users),
		Tweets:  NewTweetHandler(s, services.Tweets),
		Digest:  NewDigestHandler(s, services.Digest),
	}
}
