package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the console's own liveness endpoint and the
// backend connection test.
type HealthHandler struct {
	Probe HealthChecker
}

// Live handles GET /health.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

// ConnectionTest handles GET /api/connection-test, probing the backend
// health URL and reporting reachability.
func (h *HealthHandler) ConnectionTest(c *gin.Context) {
	reachable, latency, err := h.Probe.Check(c.Request.Context())
	body := gin.H{
		"reachable":  reachable,
		"latency_ms": latency.Milliseconds(),
	}
	if err != nil {
		body["error"] = err.Error()
	}
	status := 200
	if !reachable {
		status = 502
	}
	c.JSON(status, body)
}
