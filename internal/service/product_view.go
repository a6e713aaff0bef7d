package service

import (
	"context"
	"errors"
	"strconv"

	"storelink/internal/catalog"
	"storelink/internal/core"
	mongoDb "storelink/internal/database/mongodb/repository"
	"storelink/internal/dto"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/preview"
	"storelink/internal/storeurl"
	"storelink/internal/telemetry"

	"go.uber.org/zap"
)

// CatalogProductFetcher 組出已套用商店 scope 的商品快照
type CatalogProductFetcher struct {
	products productReader
	source   *CatalogSource
}

var _ catalog.Fetcher = (*CatalogProductFetcher)(nil)

func NewCatalogProductFetcher(productRepo *mongoDb.CatalogProductRepository, source *CatalogSource) *CatalogProductFetcher {
	return &CatalogProductFetcher{products: productRepo, source: source}
}

func (f *CatalogProductFetcher) FetchForRender(ctx context.Context, productID, storeID int) (*catalog.Product, error) {
	record, err := f.products.GetByID(ctx, productID)
	if isNoDocuments(err) {
		return nil, catalog.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	product := &catalog.Product{
		ID:         record.ID,
		SKU:        record.SKU,
		Status:     core.ProductStatusEnabled,
		Visibility: core.VisibilityBoth,
		WebsiteIDs: record.WebsiteIDs,
		StoreID:    storeID,
	}
	if value, found, err := f.attribute(ctx, productID, core.AttributeStatus, storeID); err != nil {
		return nil, err
	} else if found {
		if status, convErr := strconv.Atoi(value); convErr == nil {
			product.Status = core.ProductStatus(status)
		}
	}
	if value, found, err := f.attribute(ctx, productID, core.AttributeVisibility, storeID); err != nil {
		return nil, err
	} else if found {
		if visibility, convErr := strconv.Atoi(value); convErr == nil {
			product.Visibility = core.ProductVisibility(visibility)
		}
	}
	if product.Name, _, err = f.attribute(ctx, productID, core.AttributeName, storeID); err != nil {
		return nil, err
	}
	if product.URLKey, _, err = f.attribute(ctx, productID, core.AttributeURLKey, storeID); err != nil {
		return nil, err
	}
	return product, nil
}

func (f *CatalogProductFetcher) attribute(ctx context.Context, productID int, code string, storeID int) (string, bool, error) {
	return f.source.attributeWithDefault(ctx, core.EntityTypeProduct, productID, code, storeID)
}

// ProductViewService storefront 商品頁
type ProductViewService struct {
	trace   *telemetry.Trace
	metric  *telemetry.Metric
	stores  storeurl.StoreRegistry
	fetcher catalog.Fetcher
	logger  *zap.Logger
}

func NewProductViewService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	source *CatalogSource,
	fetcher *preview.GatedFetcher,
	logger *zap.Logger,
) *ProductViewService {
	return &ProductViewService{
		trace:   trace,
		metric:  metric,
		stores:  source,
		fetcher: fetcher,
		logger:  logger,
	}
}

// View 商品不可顯示時一律回傳 404，不區分停用、不可見或不屬於該網站
func (s *ProductViewService) View(ctx context.Context, storeCode string, productID int) (*dto.StorefrontProductDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	store, err := s.stores.GetStoreByCode(ctx, storeCode)
	if errors.Is(err, storeurl.ErrStoreNotFound) {
		return nil, cErr.NotFound("store not found")
	}
	if err != nil {
		end(err)
		return nil, cErr.DatabaseError(err.Error())
	}
	if store.IsAdmin() || !store.IsActive {
		return nil, cErr.NotFound("store not found")
	}

	product, err := s.fetcher.FetchForRender(ctx, productID, store.ID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return nil, cErr.NotFound("product not found")
	}
	if err != nil {
		end(err)
		return nil, cErr.DatabaseError(err.Error())
	}

	req, _ := preview.RequestFrom(ctx)
	s.trace.ApplyTraceAttributes(span, core.TracePreviewTokenMeta{
		Op:        "gate",
		ProductID: productID,
		StoreID:   store.ID,
		Valid:     product.Previewed,
		Elevated:  product.Previewed,
	})
	if req.Active() {
		if product.Previewed {
			s.metric.IncPreviewValidation("elevated")
		} else {
			s.metric.IncPreviewValidation("ignored")
		}
	}

	if !product.CanShow(store.WebsiteID) {
		return nil, cErr.NotFound("product not found")
	}
	return &dto.StorefrontProductDto{
		ID:        product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		URLKey:    product.URLKey,
		StoreID:   store.ID,
		StoreCode: store.Code,
		Previewed: product.Previewed,
	}, nil
}
