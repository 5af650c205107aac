package handler

import (
	"github.com/deppfellow/microblog/internal/model"
	"github.com/deppfellow/microblog/internal/server"
	"github.com/deppfellow/microblog/internal/service"
	"github.com/labstack/echo/v4"
)

// DigestHandler serves the per-user diagnostic digest.
type DigestHandler struct {
	Handler
	digest *service.DigestService
}

// NewDigestHandler constructs a DigestHandler.
func NewDigestHandler(s *server.Server, digest *service.DigestService) *DigestHandler {
	return &DigestHandler{
		Handler: NewHandler(s),
		digest:  digest,
	}
}

// GetUserDigest assembles the full digest for one user. The service
// returns a not-found error when the user does not exist.
func (h *DigestHandler) GetUserDigest(c echo.Context, req *UserIDRequest) (*model.UserDigest, error) {
	return h.digest.UserDigest(c.Request().Context(), req.ID)
}
