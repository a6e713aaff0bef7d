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

type previewService interface {
	Issue(ctx context.Context, req *dto.IssuePreviewTokenDto, subject, source string) (*dto.PreviewTokenResponseDto, error)
	Verify(ctx context.Context, req *dto.VerifyPreviewTokenDto) *dto.VerifyPreviewTokenResponseDto
}

type PreviewHandler struct {
	trace          *telemetry.Trace
	previewService previewService
}

func NewPreviewHandler(trace *telemetry.Trace, previewService *service.PreviewService) *PreviewHandler {
	return &PreviewHandler{trace: trace, previewService: previewService}
}

// Issue 簽發預覽 token
// @Summary 簽發商品預覽 token
// @Tags Admin-Preview
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.IssuePreviewTokenDto true "商品與商店"
// @Success 201 {object} dto.PreviewTokenResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/preview-tokens [post]
func (h *PreviewHandler) Issue(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.IssuePreviewTokenDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.previewService.Issue(ctx, &req, adminSubject(c), service.PreviewSourceAdminAPI)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Verify 驗證預覽 token
// @Summary 驗證商品預覽 token
// @Description 失敗時只回傳 valid=false，不說明原因
// @Tags Admin-Preview
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.VerifyPreviewTokenDto true "token 與商品、商店"
// @Success 200 {object} dto.VerifyPreviewTokenResponseDto
// @Failure 400 {object} response.Response
// @Router /admin/preview-tokens/verify [post]
func (h *PreviewHandler) Verify(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.VerifyPreviewTokenDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	response.Success(c, h.previewService.Verify(ctx, &req))
}

func adminSubject(c *gin.Context) string {
	if raw, ok := c.Get(core.ContextAdminClaimsKey); ok {
		if claims, ok := raw.(*core.AdminClaims); ok && claims != nil {
			return claims.Username
		}
	}
	return ""
}
