package handler

import (
	"net/http"
	"os"

	"github.com/deppfellow/microblog/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OpenAPIHandler serves the interactive API docs UI. The page is a
// static HTML shell that loads the spec from /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI reads static/openapi.html and serves it. Caching is
// disabled so doc updates show up without a hard refresh.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := os.ReadFile("static/openapi.html")
	if err != nil {
		return errors.Wrap(err, "failed to read OpenAPI UI template")
	}

	return c.HTML(http.StatusOK, string(page))
}
