// Package routers
package routers

import (
	"gateway-api/internal/handlers/inference"
	"gateway-api/internal/middleware"
	"gateway-api/internal/shared"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the echo instance with the base middleware chain, the
// operational endpoints and the gateway endpoint.
func NewRouter(ih *inference.InferenceHandler, metricsAPIKey string, log *zap.SugaredLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.NewCORSMiddleware())
	e.Use(middleware.NewTrackMiddleware(log))
	e.Use(middleware.NewRecoverMiddleware(log))

	e.GET("/ping", func(c echo.Context) error {
		return c.String(200, "")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), requireMetricsKey(metricsAPIKey))

	RegisterInferenceRoutes(e.Group(""), ih)
	return e
}

func requireMetricsKey(metricsAPIKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey, err := shared.ExtractBearerToken(c.Request().Header)
			if err != nil {
				return c.String(401, "Missing or invalid API key")
			}

			if metricsAPIKey == "" || apiKey != metricsAPIKey {
				return c.String(401, "Unauthorized API key")
			}
			return next(c)
		}
	}
}
