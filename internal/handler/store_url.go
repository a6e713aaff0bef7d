package handler

import (
	"context"

	"storelink/internal/core"
	"storelink/internal/dto"
	"storelink/internal/pkg/response"
	"storelink/internal/service"
	"storelink/internal/telemetry"
	"storelink/utils/validate"

	"github.com/gin-gonic/gin"
)

type storeURLService interface {
	ListURLs(ctx context.Context, entityType core.EntityType, entityID int) ([]dto.StoreURLDto, error)
	CategoryURL(ctx context.Context, categoryID int, store string) (*dto.StoreURLDto, error)
	ProductViewActions(ctx context.Context, req *dto.ProductViewActionsDto) ([]dto.ViewActionRowDto, error)
}

type StoreURLHandler struct {
	trace           *telemetry.Trace
	storeURLService storeURLService
}

func NewStoreURLHandler(trace *telemetry.Trace, storeURLService *service.StoreURLService) *StoreURLHandler {
	return &StoreURLHandler{trace: trace, storeURLService: storeURLService}
}

// ProductURLs 商品在各商店的前台連結
// @Summary 取得商品各商店前台連結
// @Description 停用商品會附帶預覽參數
// @Tags Admin-StoreURL
// @Security BearerAuth
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {array} dto.StoreURLDto
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/products/{productID}/store-urls [get]
func (h *StoreURLHandler) ProductURLs(c *gin.Context) {
	h.listURLs(c, core.EntityTypeProduct, "productID")
}

// CmsPageURLs CMS 頁面在各商店的前台連結
// @Summary 取得 CMS 頁面各商店前台連結
// @Tags Admin-StoreURL
// @Security BearerAuth
// @Produce json
// @Param pageID path int true "CMS page ID"
// @Success 200 {array} dto.StoreURLDto
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/cms-pages/{pageID}/store-urls [get]
func (h *StoreURLHandler) CmsPageURLs(c *gin.Context) {
	h.listURLs(c, core.EntityTypeCmsPage, "pageID")
}

func (h *StoreURLHandler) listURLs(c *gin.Context, entityType core.EntityType, key string) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParsePositiveIntParam(c, key)
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	urls, err := h.storeURLService.ListURLs(ctx, entityType, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, urls)
}

// CategoryURL 分類的單一前台連結
// @Summary 取得分類前台連結
// @Description store 可為商店 id 或 code；未指定時依分類根節點選擇商店
// @Tags Admin-StoreURL
// @Security BearerAuth
// @Produce json
// @Param categoryID path int true "Category ID"
// @Param store query string false "商店 id 或 code"
// @Success 200 {object} dto.StoreURLDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/categories/{categoryID}/store-url [get]
func (h *StoreURLHandler) CategoryURL(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParsePositiveIntParam(c, "categoryID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	url, err := h.storeURLService.CategoryURL(ctx, id, c.Query("store"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, url)
}

// ViewActions 商品列表的「檢視」動作
// @Summary 產生商品列表檢視動作
// @Description 單一商店時 key 為 view，多商店時為 view_store_{id}
// @Tags Admin-StoreURL
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ProductViewActionsDto true "商品列表"
// @Success 200 {array} dto.ViewActionRowDto
// @Failure 400 {object} response.Response
// @Router /admin/products/view-actions [post]
func (h *StoreURLHandler) ViewActions(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ProductViewActionsDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	rows, err := h.storeURLService.ProductViewActions(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, rows)
}
