package router

import (
	"storelink/internal/handler"
	"storelink/internal/middleware"

	"github.com/gin-gonic/gin"
)

type StorefrontRouter struct {
	previewParams     *middleware.PreviewParams
	previewRateLimit  *middleware.PreviewRateLimit
	storefrontHandler *handler.StorefrontHandler
}

func NewStorefrontRouter(
	previewParams *middleware.PreviewParams,
	previewRateLimit *middleware.PreviewRateLimit,
	storefrontHandler *handler.StorefrontHandler,
) *StorefrontRouter {
	return &StorefrontRouter{
		previewParams:     previewParams,
		previewRateLimit:  previewRateLimit,
		storefrontHandler: storefrontHandler,
	}
}

// RegisterRoutes 預覽參數先放入 context，再進行限流
func (sr *StorefrontRouter) RegisterRoutes(r *gin.Engine) {
	storefront := r.Group("/storefront", sr.previewParams.Handler(), sr.previewRateLimit.Guard())
	{
		storefront.GET("/:storeCode/products/:productID", sr.storefrontHandler.ProductView)
	}
}
