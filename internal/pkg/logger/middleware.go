package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with latency, status and caller identity
func EchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("user_id", userID),
				Int("status", c.Response().Status),
				Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, Err(err))
				l.Error("http request", fields...)
				return err
			}

			l.Info("http request", fields...)
			return nil
		}
	}
}
