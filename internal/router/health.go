package router

import (
	"storelink/internal/handler"

	"github.com/gin-gonic/gin"
)

type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(
	healthHandler *handler.HealthHandler,
) *HealthRouter {
	return &HealthRouter{
		healthHandler: healthHandler,
	}
}

func (healthRouter *HealthRouter) RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/healthz", healthRouter.healthHandler.Liveness)
	r.GET("/readyz", healthRouter.healthHandler.Readiness)
	r.GET("/version", healthRouter.healthHandler.Version)
}
