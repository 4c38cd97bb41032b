// Package http is the REST adapter of the workshop service. It serves the API
// described by the embedded OpenAPI document together with health, metrics
// and Swagger UI endpoints.
package http

import (
	"log/slog"
	"net/http"
	"sync"

	"workshop/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// APIPrefix is the path prefix of every validated API route.
const APIPrefix = "/api/v1"

var registerSwagger sync.Once

// swaggerDoc serves the OpenAPI document to Swagger UI as JSON.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// NewRouter builds the echo instance with all routes and middleware.
func NewRouter(server *Server, doc *openapi3.T, gatherer prometheus.Gatherer, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := RequestValidator(doc, APIPrefix)
	if err != nil {
		return nil, err
	}

	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(docJSON)})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}
