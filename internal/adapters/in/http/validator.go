package http

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks requests whose path starts with prefix against the
// OpenAPI document. Requests that match no operation are passed on so echo
// answers them with 404 or 405.
func RequestValidator(doc *openapi3.T, prefix string) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, prefix) {
				return next(c)
			}

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validateErr.Error())
			}

			return next(c)
		}
	}, nil
}
