package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs the stack trace and answers with a 500.
func PanicRecoveryMiddleware(l *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					l.Error("panic recovered",
						logger.Err(err),
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())),
					)

					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"success": false,
						"error":   "Internal server error",
					})
				}
			}()

			return next(c)
		}
	}
}
