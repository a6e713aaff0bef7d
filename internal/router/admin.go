package router

import (
	"storelink/internal/core"
	"storelink/internal/handler"
	"storelink/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	adminAuth       *middleware.AdminAuth
	storeURLHandler *handler.StoreURLHandler
	previewHandler  *handler.PreviewHandler
}

func NewAdminRouter(
	adminAuth *middleware.AdminAuth,
	storeURLHandler *handler.StoreURLHandler,
	previewHandler *handler.PreviewHandler,
) *AdminRouter {
	return &AdminRouter{
		adminAuth:       adminAuth,
		storeURLHandler: storeURLHandler,
		previewHandler:  previewHandler,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin", ar.adminAuth.Handler())
	{
		read := admin.Group("", ar.adminAuth.Handler(core.ScopeStoreURLRead))
		read.GET("/products/:productID/store-urls", ar.storeURLHandler.ProductURLs)
		read.POST("/products/view-actions", ar.storeURLHandler.ViewActions)
		read.GET("/cms-pages/:pageID/store-urls", ar.storeURLHandler.CmsPageURLs)
		read.GET("/categories/:categoryID/store-url", ar.storeURLHandler.CategoryURL)

		tokens := admin.Group("/preview-tokens", ar.adminAuth.Handler(core.ScopePreviewWrite))
		tokens.POST("", ar.previewHandler.Issue)
		tokens.POST("/verify", ar.previewHandler.Verify)
	}
}
