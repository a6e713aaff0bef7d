package handler

import (
	"net/http"

	"storelink/config"
	"storelink/internal/dto"
	"storelink/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthStatus *service.HealthService
	config       *config.Configuration
}

func NewHealthHandler(status *service.HealthService, config *config.Configuration) *HealthHandler {
	return &HealthHandler{healthStatus: status, config: config}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Readiness 依賴（MongoDB、Redis、PostgreSQL）最近一次探測結果
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady() {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
}

// Version 服務版本
// @Summary 服務版本
// @Tags Ops
// @Produce json
// @Success 200 {object} dto.VersionDto
// @Router /version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VersionDto{
		Name:    h.config.App.Name,
		Version: h.config.App.Version,
		Env:     h.config.App.Env,
	})
}
