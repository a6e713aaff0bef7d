package storeurl

import (
	"context"
	"errors"
	"strconv"

	"storelink/internal/core"

	"go.uber.org/zap"
)

// ProductResolver 計算商品在各商店的 storefront 連結；停用商品附加預覽參數
type ProductResolver struct {
	resolver   *Resolver
	stores     StoreRegistry
	websites   ProductWebsites
	rewrites   RewriteFinder
	attributes AttributeReader
	routes     RouteBuilder
	logger     *zap.Logger
}

func NewProductResolver(
	resolver *Resolver,
	stores StoreRegistry,
	websites ProductWebsites,
	rewrites RewriteFinder,
	attributes AttributeReader,
	routes RouteBuilder,
	logger *zap.Logger,
) *ProductResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductResolver{
		resolver:   resolver,
		stores:     stores,
		websites:   websites,
		rewrites:   rewrites,
		attributes: attributes,
		routes:     routes,
		logger:     logger,
	}
}

func (p *ProductResolver) ResolveURLs(ctx context.Context, productID int) ([]StoreURL, error) {
	return p.resolver.Resolve(ctx, p, productID)
}

func (p *ProductResolver) EntityType() core.EntityType {
	return core.EntityTypeProduct
}

// CandidateStores 商品所屬各網站底下啟用中的商店；未知的商品或網站略過
func (p *ProductResolver) CandidateStores(ctx context.Context, productID int) ([]int, error) {
	websiteIDs, err := p.websites.GetProductWebsiteIDs(ctx, productID)
	if errors.Is(err, ErrEntityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var storeIDs []int
	for _, websiteID := range websiteIDs {
		stores, err := p.stores.GetWebsiteStores(ctx, websiteID)
		if errors.Is(err, ErrWebsiteNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, store := range stores {
			if store.IsActive {
				storeIDs = append(storeIDs, store.ID)
			}
		}
	}
	return uniqueIDs(storeIDs), nil
}

func (p *ProductResolver) CanonicalURL(ctx context.Context, productID int, store StoreDescriptor) (string, error) {
	path, err := rewritePath(ctx, p.rewrites, core.EntityTypeProduct, productID, store.ID)
	switch {
	case err == nil:
		return NormalizeURL(path, store.BaseURL), nil
	case !errors.Is(err, ErrRewriteNotFound):
		return "", err
	}

	return p.routes.BuildURL(store, core.RouteProductView, map[string]string{"id": itoa(productID)}, true)
}

// PreviewEligible 該商店的 status 原始值為停用時成立；查無值視為啟用
func (p *ProductResolver) PreviewEligible(ctx context.Context, productID int, store StoreDescriptor) bool {
	raw, ok, err := rawAttributeWithDefault(ctx, p.attributes, core.EntityTypeProduct, productID, core.AttributeStatus, store.ID)
	if err != nil {
		p.logger.Debug("product status lookup failed",
			zap.Int("productId", productID),
			zap.Int("storeId", store.ID),
			zap.Error(err),
		)
		return false
	}
	if !ok {
		return false
	}
	status, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return core.ProductStatus(status) == core.ProductStatusDisabled
}
