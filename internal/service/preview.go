package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"storelink/internal/core"
	fluentdModel "storelink/internal/database/fluentd/model"
	fluentdDb "storelink/internal/database/fluentd/repository"
	"storelink/internal/dto"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/preview"
	"storelink/internal/storeurl"
	"storelink/internal/telemetry"

	"go.uber.org/zap"
)

// 稽核紀錄的 source 欄位
const (
	PreviewSourceAdminAPI = "admin_api"
	PreviewSourceCLI      = "cli"
)

// PreviewService 管理端手動簽發與驗證預覽 token
type PreviewService struct {
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	tokens   *preview.TokenService
	params   preview.Params
	source   *CatalogSource
	products *storeurl.ProductResolver
	logRepo  *fluentdDb.LogRepository
	logger   *zap.Logger
}

func NewPreviewService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	tokens *preview.TokenService,
	params preview.Params,
	source *CatalogSource,
	products *storeurl.ProductResolver,
	logRepo *fluentdDb.LogRepository,
	logger *zap.Logger,
) *PreviewService {
	return &PreviewService{
		trace:    trace,
		metric:   metric,
		tokens:   tokens,
		params:   params,
		source:   source,
		products: products,
		logRepo:  logRepo,
		logger:   logger,
	}
}

// Issue 為 (商品, 商店) 簽發 token。
// 商品必須存在且所屬網站包含該商店，商店必須是啟用中的前台商店。
func (s *PreviewService) Issue(ctx context.Context, req *dto.IssuePreviewTokenDto, subject, source string) (*dto.PreviewTokenResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	// CLI 不經過 gin binding，需在轉換成 time.Duration 前檢查範圍
	if req.TTLSeconds < 0 || req.TTLSeconds > preview.MaxTTLSeconds {
		return nil, cErr.ValidateErr(fmt.Sprintf("ttlSeconds must be between 0 and %d", preview.MaxTTLSeconds))
	}

	websiteIDs, err := s.source.GetProductWebsiteIDs(ctx, req.ProductID)
	if errors.Is(err, storeurl.ErrEntityNotFound) {
		return nil, cErr.NotFound("product not found")
	}
	if err != nil {
		end(err)
		return nil, cErr.DatabaseError(err.Error())
	}

	store, err := s.source.GetStore(ctx, req.StoreID)
	if errors.Is(err, storeurl.ErrStoreNotFound) {
		return nil, cErr.UnknownStore("store does not exist")
	}
	if err != nil {
		end(err)
		return nil, cErr.DatabaseError(err.Error())
	}
	if store.IsAdmin() || !store.IsActive {
		return nil, cErr.PreviewUnavailable("store is not an active storefront")
	}
	if !slices.Contains(websiteIDs, store.WebsiteID) {
		return nil, cErr.PreviewUnavailable("product is not assigned to the store website")
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	token, expiresAt, err := s.tokens.GenerateWithTTL(req.ProductID, req.StoreID, ttl)
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("failed to generate preview token")
	}

	query := s.params.Query(token)
	resp := &dto.PreviewTokenResponseDto{
		Token:      token,
		ProductID:  req.ProductID,
		StoreID:    req.StoreID,
		ExpiresAt:  expiresAt.UTC(),
		FlagParam:  s.params.Flag,
		TokenParam: s.params.Token,
		Query:      query,
	}
	if url, err := s.products.CanonicalURL(ctx, req.ProductID, *store); err == nil {
		resp.URL = preview.AppendQuery(url, query)
	} else {
		s.logger.Debug("preview url unavailable",
			zap.Int("productId", req.ProductID),
			zap.Int("storeId", req.StoreID),
			zap.Error(err),
		)
	}

	s.trace.ApplyTraceAttributes(span, core.TracePreviewTokenMeta{
		Op:        "issue",
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		TTLSec:    int64(time.Until(expiresAt).Seconds()),
		Valid:     true,
	})
	s.metric.IncPreviewIssued(core.EntityTypeProduct)

	if err := s.logRepo.LogPreviewIssued(ctx, fluentdModel.PreviewIssuedLog{
		Subject:   subject,
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Source:    source,
		ExpiresAt: expiresAt.Unix(),
	}); err != nil {
		s.logger.Warn("failed to ship preview audit log", zap.Error(err))
	}
	return resp, nil
}

// Verify 只回傳是否有效，不透露失敗原因
func (s *PreviewService) Verify(ctx context.Context, req *dto.VerifyPreviewTokenDto) *dto.VerifyPreviewTokenResponseDto {
	_, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	valid := s.tokens.IsValid(req.Token, req.ProductID, req.StoreID)
	s.trace.ApplyTraceAttributes(span, core.TracePreviewTokenMeta{
		Op:        "verify",
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Valid:     valid,
	})
	if valid {
		s.metric.IncPreviewValidation("valid")
	} else {
		s.metric.IncPreviewValidation("invalid")
	}
	return &dto.VerifyPreviewTokenResponseDto{Valid: valid}
}
