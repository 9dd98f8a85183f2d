package handler

import (
	"net/http"

	"access-log-service/internal/service"
	"access-log-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService *service.HealthService
}

func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Home returns the static service banner
func (h *HealthHandler) Home(c *gin.Context) {
	utils.MessageResponse(c, http.StatusOK, service.HomeMessage)
}

// CheckHealth reports backend health; a failed database round-trip is a 500
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())

	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusInternalServerError
	}
	c.JSON(code, status)
}
