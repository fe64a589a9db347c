package middleware

import (
	"time"

	applogger "TradingHours/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs HTTP requests; 5xx at error level.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []applogger.Field{
				applogger.String("method", req.Method),
				applogger.String("uri", req.RequestURI),
				applogger.String("remote", c.RealIP()),
				applogger.Int("status", c.Response().Status),
				applogger.Duration("latency", time.Since(start)),
			}
			if c.Response().Status >= 500 {
				l.Error("http request", append(fields, applogger.Error(err))...)
			} else {
				l.Info("http request", fields...)
			}
			return nil
		}
	}
}
