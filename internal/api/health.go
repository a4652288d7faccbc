package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Probe is a named readiness check, e.g. a database or cache ping.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe, runs every Probe concurrently.
type HealthHandler struct {
	probes  []Probe
	timeout time.Duration
}

// NewHealthHandler constructs a HealthHandler. Probes with a nil Check are
// skipped.
func NewHealthHandler(probes ...Probe) *HealthHandler {
	return &HealthHandler{probes: probes, timeout: 2 * time.Second}
}

// ReadinessResponse is the body of GET /readyz.
type ReadinessResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks"`
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if every probe succeeds, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Description  Returns ready if postgres and the cache are reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  api.ReadinessResponse
	// @Failure      503  {object}  api.ReadinessResponse
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		resp := h.check(c.Request.Context())
		status := http.StatusOK
		if resp.Status != "ready" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, resp)
	})
}

func (h *HealthHandler) check(ctx context.Context) ReadinessResponse {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	results := make([]error, len(h.probes))
	var g errgroup.Group
	for i, p := range h.probes {
		if p.Check == nil {
			continue
		}
		g.Go(func() error {
			results[i] = p.Check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	resp := ReadinessResponse{Status: "ready", Checks: make(map[string]string, len(h.probes))}
	for i, p := range h.probes {
		switch {
		case p.Check == nil:
			resp.Checks[p.Name] = "skipped"
		case results[i] != nil:
			resp.Checks[p.Name] = "error: " + results[i].Error()
			resp.Status = "degraded"
		default:
			resp.Checks[p.Name] = "ok"
		}
	}
	return resp
}
