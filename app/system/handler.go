package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves the liveness and version endpoints. Both sit outside
// the /v1 group and outside the response envelope.
type Handler struct {
	version     string
	environment string
}

func NewHandler(version, environment string) *Handler {
	return &Handler{
		version:     version,
		environment: environment,
	}
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Product Management API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	})
}

func (h *Handler) HandleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_version": h.version,
		"go_version":  runtime.Version(),
		"environment": h.environment,
	})
}
