package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	validatorReady func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Validator string `json:"validator"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(validatorReady func() bool) *HealthController {
	return &HealthController{
		validatorReady: validatorReady,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	validatorStatus := "unavailable"
	if h.validatorReady != nil && h.validatorReady() {
		validatorStatus = "ready"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Validator: validatorStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
