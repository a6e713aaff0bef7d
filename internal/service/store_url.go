package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"storelink/internal/core"
	"storelink/internal/dto"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/storeurl"
	"storelink/internal/telemetry"

	"go.uber.org/zap"
)

const defaultActionsColumn = "actions"

type StoreURLService struct {
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	registry   *Registry
	categories *storeurl.CategoryResolver
	logger     *zap.Logger
}

func NewStoreURLService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	registry *Registry,
	categories *storeurl.CategoryResolver,
	logger *zap.Logger,
) *StoreURLService {
	return &StoreURLService{
		trace:      trace,
		metric:     metric,
		registry:   registry,
		categories: categories,
		logger:     logger,
	}
}

// ListURLs 回傳實體在所有可用商店的連結，依 sortOrder、商店名稱排序
func (s *StoreURLService) ListURLs(ctx context.Context, entityType core.EntityType, entityID int) ([]dto.StoreURLDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	resolver, ok := s.registry.Get(entityType)
	if !ok {
		return nil, cErr.BadRequestParams(fmt.Sprintf("unsupported entity type %q", entityType))
	}

	started := time.Now()
	urls, err := resolver.ResolveURLs(ctx, entityID)
	s.metric.ObserveResolution(entityType, started)
	if err != nil {
		end(err)
		return nil, toResolveError(err)
	}

	previews := 0
	for _, u := range urls {
		if u.IsPreview {
			previews++
		}
	}
	s.trace.ApplyTraceAttributes(span, core.TraceStoreURLMeta{
		EntityType:  string(entityType),
		EntityID:    entityID,
		ResultCount: len(urls),
		Previews:    previews,
	})
	for i := 0; i < previews; i++ {
		s.metric.IncPreviewIssued(entityType)
	}
	return toStoreURLDtos(urls), nil
}

// CategoryURL store 可為商店 id、code 或空字串
func (s *StoreURLService) CategoryURL(ctx context.Context, categoryID int, store string) (*dto.StoreURLDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	started := time.Now()
	url, err := s.categories.ResolveURL(ctx, categoryID, store)
	s.metric.ObserveResolution(core.EntityTypeCategory, started)
	if err != nil {
		end(err)
		return nil, toResolveError(err)
	}

	s.trace.ApplyTraceAttributes(span, core.TraceStoreURLMeta{
		EntityType:  string(core.EntityTypeCategory),
		EntityID:    categoryID,
		ResultCount: 1,
	})
	result := toStoreURLDto(*url)
	return &result, nil
}

// ProductViewActions 為商品列表每一列產生各商店的「檢視」動作；沒有連結的列略過
func (s *StoreURLService) ProductViewActions(ctx context.Context, req *dto.ProductViewActionsDto) ([]dto.ViewActionRowDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	column := req.Column
	if column == "" {
		column = defaultActionsColumn
	}

	rows := make([]dto.ViewActionRowDto, 0, len(req.Items))
	for index, item := range req.Items {
		if item.EntityID <= 0 {
			continue
		}
		urls, err := s.ListURLs(ctx, core.EntityTypeProduct, item.EntityID)
		if err != nil {
			end(err)
			return nil, err
		}
		if len(urls) == 0 {
			continue
		}
		rows = append(rows, dto.ViewActionRowDto{
			EntityID: item.EntityID,
			RowIndex: index,
			Column:   column,
			Actions:  buildViewActions(urls, item.Name, index),
		})
	}
	return rows, nil
}

func buildViewActions(urls []dto.StoreURLDto, productName string, rowIndex int) map[string]dto.ViewActionDto {
	single := len(urls) == 1
	ariaLabel := ""
	if productName != "" {
		ariaLabel = "View " + html.EscapeString(productName)
	}

	actions := make(map[string]dto.ViewActionDto, len(urls))
	for _, u := range urls {
		key := fmt.Sprintf("view_store_%d", u.StoreID)
		label := fmt.Sprintf("View (%s)", u.StoreName)
		if single {
			key = "view"
			label = "View"
		}
		actions[key] = dto.ViewActionDto{
			Href:      u.URL,
			Label:     label,
			AriaLabel: ariaLabel,
			Target:    "_blank",
			RowIndex:  rowIndex,
			StoreID:   u.StoreID,
		}
	}
	return actions
}

// toResolveError 非預期錯誤皆視為資料來源錯誤
func toResolveError(err error) error {
	var appErr *cErr.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, storeurl.ErrUnknownStore):
		return cErr.UnknownStore(err.Error())
	case errors.Is(err, storeurl.ErrNoStoreURL):
		return cErr.NotFound("no storefront url available")
	default:
		return cErr.DatabaseError(err.Error())
	}
}

func toStoreURLDto(u storeurl.StoreURL) dto.StoreURLDto {
	return dto.StoreURLDto{
		StoreID:   u.StoreID,
		StoreCode: u.StoreCode,
		StoreName: u.StoreName,
		URL:       u.URL,
		SortOrder: u.SortOrder,
		IsPreview: u.IsPreview,
	}
}

func toStoreURLDtos(urls []storeurl.StoreURL) []dto.StoreURLDto {
	result := make([]dto.StoreURLDto, 0, len(urls))
	for _, u := range urls {
		result = append(result, toStoreURLDto(u))
	}
	return result
}
