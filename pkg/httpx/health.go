package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (RedisClient qualifies; the catalog and mailer use adapter funcs).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheckerFunc adapts a plain function to the HealthChecker interface.
type HealthCheckerFunc func(ctx context.Context) error

func (f HealthCheckerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Nil entries are skipped (e.g. Redis when caching is disabled).
type HealthChecks struct {
	Catalog HealthChecker
	Email   HealthChecker
	Redis   HealthChecker
}

type healthResponse struct {
	Status  string `json:"status"`
	Catalog string `json:"catalog"`
	Email   string `json:"email"`
	Redis   string `json:"redis,omitempty"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Catalog: "ok", Email: "ok"}

		if checks.Catalog != nil && checks.Catalog.Ping(ctx) != nil {
			resp.Status = "degraded"
			resp.Catalog = "empty"
		}
		if checks.Email != nil && checks.Email.Ping(ctx) != nil {
			resp.Status = "degraded"
			resp.Email = "not configured"
		}
		if checks.Redis != nil {
			resp.Redis = "ok"
			if checks.Redis.Ping(ctx) != nil {
				resp.Status = "degraded"
				resp.Redis = "unreachable"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
