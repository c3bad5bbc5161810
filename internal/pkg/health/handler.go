package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker verifies one dependency is reachable
type Checker func(ctx context.Context) error

// Service aggregates dependency health checks
type Service struct {
	serviceName string
	checkers    map[string]Checker
}

// NewService creates a health service for the named application
func NewService(serviceName string) *Service {
	return &Service{
		serviceName: serviceName,
		checkers:    make(map[string]Checker),
	}
}

// AddChecker registers a named dependency check
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// status is the health endpoint response body
type status struct {
	ServiceName string            `json:"service_name"`
	Status      string            `json:"status"`
	GoVersion   string            `json:"go_version"`
	Hostname    string            `json:"hostname"`
	ServerTime  time.Time         `json:"server_time"`
	Checks      map[string]string `json:"checks,omitempty"`
}

// RegisterEndpoints mounts /health and /health/live on the Echo instance
func (s *Service) RegisterEndpoints(e *echo.Echo) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, status{
			ServiceName: s.serviceName,
			Status:      "ok",
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		checks := make(map[string]string, len(s.checkers))
		healthy := true
		for name, check := range s.checkers {
			if err := check(ctx); err != nil {
				checks[name] = err.Error()
				healthy = false
			} else {
				checks[name] = "ok"
			}
		}

		code := http.StatusOK
		overall := "ok"
		if !healthy {
			code = http.StatusServiceUnavailable
			overall = "degraded"
		}

		return c.JSON(code, status{
			ServiceName: s.serviceName,
			Status:      overall,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
			Checks:      checks,
		})
	})
}
