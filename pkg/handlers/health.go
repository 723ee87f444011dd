package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go-controls/pkg/version"
)

// HealthChecker is implemented by each backing store
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	GitCommit    string            `json:"git_commit"`
	GoVersion    string            `json:"go_version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// HealthHandler reports "healthy" when every checker passes and "degraded" otherwise.
// Nil checkers are reported as "disabled".
func HealthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		info := version.Get()
		response := HealthResponse{
			Status:       "healthy",
			Version:      info.Version,
			GitCommit:    info.GitCommit,
			GoVersion:    info.GoVersion,
			Dependencies: make(map[string]string, len(checkers)),
		}

		for name, checker := range checkers {
			if checker == nil {
				response.Dependencies[name] = "disabled"
				continue
			}
			if err := checker.HealthCheck(ctx); err != nil {
				slog.Warn("Health check failed", "dependency", name, "error", err)
				response.Dependencies[name] = "unhealthy"
				response.Status = "degraded"
				continue
			}
			response.Dependencies[name] = "healthy"
		}

		status := http.StatusOK
		if response.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		JSONResponse(w, response, status)
	}
}
