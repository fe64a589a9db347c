package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// The API only serves reads, so preflights never advertise anything beyond these.
var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodOptions}, ", ")
	corsHeaders = strings.Join([]string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept}, ", ")
)

// CORS allows cross-origin reads from the given origins. "*" allows any origin.
// Requests from other origins pass through without CORS headers and OPTIONS
// preflights from them are rejected.
func CORS(origins []string) echo.MiddlewareFunc {
	wildcard := false
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			wildcard = true
			continue
		}
		if o != "" {
			allowed[o] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" {
				return next(c)
			}

			h := c.Response().Header()
			h.Add(echo.HeaderVary, echo.HeaderOrigin)

			_, listed := allowed[origin]
			switch {
			case listed:
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			case wildcard:
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			default:
				if c.Request().Method == http.MethodOptions {
					return c.NoContent(http.StatusForbidden)
				}
				return next(c)
			}

			if c.Request().Method == http.MethodOptions {
				h.Set(echo.HeaderAccessControlAllowMethods, corsMethods)
				h.Set(echo.HeaderAccessControlAllowHeaders, corsHeaders)
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
