package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthChecker func() bool
	datasetLoaded      func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Dataset   string `json:"dataset"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeHealthChecker, datasetLoaded func() bool) *HealthController {
	return &HealthController{
		storeHealthChecker: storeHealthChecker,
		datasetLoaded:      datasetLoaded,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.storeHealthChecker != nil && h.storeHealthChecker() {
		storeStatus = "connected"
	}

	datasetStatus := "not_loaded"
	if h.datasetLoaded != nil && h.datasetLoaded() {
		datasetStatus = "loaded"
	}

	response := HealthResponse{
		Status:    "ok",
		Store:     storeStatus,
		Dataset:   datasetStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
