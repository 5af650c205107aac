// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/microblog/internal/handler"
	"github.com/deppfellow/microblog/internal/middleware"
	"github.com/deppfellow/microblog/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware chain and all
// route groups registered. The returned router is handed to the server
// as its http.Handler.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true

	// Every response carries application errors through the same funnel.
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request ID and New Relic transaction must exist
	// before the context enhancer builds the request-scoped logger.
	e.Use(middleware.RequestID())
	e.Use(mw.Tracing.NewRelicMiddleware())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Tracing.EnhanceTracing())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.Recover())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, mw, h)

	return e
}
