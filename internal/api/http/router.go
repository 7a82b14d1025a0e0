package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Router registers the operation routes on an echo instance.
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a router for the handler set.
func NewRouter(h *Handler, logger zerolog.Logger) *Router {
	return &Router{handler: h, logger: logger}
}

// Setup wires middleware and routes. One POST route per operation, matching
// the remote-procedure contract of the client.
func (r *Router) Setup(e *echo.Echo) {
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(r.requestLogger())

	e.GET("/health", r.handler.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/password/set", r.handler.SetPassword)
	v1.POST("/password/has", r.handler.HasPassword)
	v1.POST("/password/verify", r.handler.VerifyPassword)

	v1.POST("/character/add", r.handler.AddCharacter)
	v1.POST("/character/get", r.handler.GetCharacter)
	v1.POST("/character/set", r.handler.SetCharacter)
	v1.POST("/character/update", r.handler.UpdateCharacter)

	v1.GET("/systems", r.handler.Systems)
	v1.GET("/systems/:system/rules", r.handler.Rules)
}

func (r *Router) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			r.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
