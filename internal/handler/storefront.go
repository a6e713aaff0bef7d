package handler

import (
	"context"

	"storelink/internal/dto"
	"storelink/internal/pkg/response"
	"storelink/internal/service"
	"storelink/internal/telemetry"
	"storelink/utils/validate"

	"github.com/gin-gonic/gin"
)

type productViewService interface {
	View(ctx context.Context, storeCode string, productID int) (*dto.StorefrontProductDto, error)
}

type StorefrontHandler struct {
	trace              *telemetry.Trace
	productViewService productViewService
}

func NewStorefrontHandler(trace *telemetry.Trace, productViewService *service.ProductViewService) *StorefrontHandler {
	return &StorefrontHandler{trace: trace, productViewService: productViewService}
}

// ProductView 前台商品頁
// @Summary 前台商品資料
// @Description 帶有效預覽參數時，停用商品可暫時顯示
// @Tags Storefront
// @Produce json
// @Param storeCode path string true "商店 code"
// @Param productID path int true "Product ID"
// @Param ist_preview query string false "預覽旗標"
// @Param ist_preview_token query string false "預覽 token"
// @Success 200 {object} dto.StorefrontProductDto
// @Failure 404 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /storefront/{storeCode}/products/{productID} [get]
func (h *StorefrontHandler) ProductView(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParsePositiveIntParam(c, "productID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	product, err := h.productViewService.View(ctx, c.Param("storeCode"), id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, product)
}
