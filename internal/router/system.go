package router

import (
	"github.com/deppfellow/microblog/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API: health status, docs UI, and the static assets behind it.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)

	// Serve all files from ./static at /static/*.
	// Used for openapi.json and openapi.html.
	r.Static("/static", "static")

	// Docs UI endpoint (serves openapi.html).
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
