package http

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/guttosm/pickship/internal/service"
)

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	Check() error
}

// HealthCheckerFunc adapts a function to HealthChecker.
type HealthCheckerFunc func() error

// Check calls f.
func (f HealthCheckerFunc) Check() error {
	return f()
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers: make(map[string]HealthChecker),
	}
}

// RegisterChecker adds a named readiness check. Nil checkers are ignored.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	if checker == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Runs every registered check and reports 503 when any of them fails.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := http.StatusOK
	checks := make(map[string]interface{})

	h.mu.RLock()
	for name, checker := range h.checkers {
		if err := checker.Check(); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}
	h.mu.RUnlock()

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	c.JSON(status, gin.H{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks": checks,
	})
}

// canary is a tiny order whose manifest is known: one box holding both units.
var (
	canaryInventory = model.NewInventory(model.Item{Code: "CANARY", Name: "canary", Weight: 1})
	canaryOrder     = model.Order{Number: 0, LineItems: []model.LineItem{{Code: "CANARY", Quantity: 2}}}
)

// NewPackerCheck returns a readiness check that packs a canary order and verifies
// the result.
func NewPackerCheck(packer service.ManifestPacker) HealthChecker {
	return HealthCheckerFunc(func() error {
		m, err := packer.Pack(canaryOrder, canaryInventory, 2)
		if err != nil {
			return err
		}
		if m.BoxCount() != 1 || m.Weight != 2 {
			return fmt.Errorf("canary packed into %d boxes weighing %v", m.BoxCount(), m.Weight)
		}
		return nil
	})
}
