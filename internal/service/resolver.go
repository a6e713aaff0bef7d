package service

import (
	"time"

	"storelink/config"
	"storelink/internal/core"
	"storelink/internal/preview"
	"storelink/internal/storeurl"

	"go.uber.org/zap"
)

func ProvideTokenService(config *config.Configuration) (*preview.TokenService, error) {
	ttl := time.Duration(config.Preview.TTLSeconds) * time.Second
	return preview.NewTokenService(config.Preview.SecretKey, preview.WithTTL(ttl))
}

func ProvideRouteBuilder(config *config.Configuration) *storeurl.DefaultRouteBuilder {
	return storeurl.NewDefaultRouteBuilder(config.Catalog.SessionIDParam)
}

func ProvideResolver(
	source *CatalogSource,
	tokens *preview.TokenService,
	params preview.Params,
	logger *zap.Logger,
) *storeurl.Resolver {
	return storeurl.NewResolver(source, tokens, params, logger)
}

func ProvideProductResolver(
	resolver *storeurl.Resolver,
	source *CatalogSource,
	rewrites *RewriteIndex,
	routes *storeurl.DefaultRouteBuilder,
	logger *zap.Logger,
) *storeurl.ProductResolver {
	return storeurl.NewProductResolver(resolver, source, source, rewrites, source, routes, logger)
}

func ProvideCmsPageResolver(
	resolver *storeurl.Resolver,
	source *CatalogSource,
	rewrites *RewriteIndex,
	routes *storeurl.DefaultRouteBuilder,
) *storeurl.CmsPageResolver {
	return storeurl.NewCmsPageResolver(resolver, source, source, rewrites, routes)
}

func ProvideCategoryResolver(
	config *config.Configuration,
	resolver *storeurl.Resolver,
	source *CatalogSource,
	rewrites *RewriteIndex,
	routes *storeurl.DefaultRouteBuilder,
) *storeurl.CategoryResolver {
	suffix := config.Catalog.CategoryURLSuffix
	if suffix == "" {
		suffix = core.DefaultCategoryURLSuffix
	}
	return storeurl.NewCategoryResolver(resolver, source, source, rewrites, source, routes, suffix)
}

func ProvideGate(tokens *preview.TokenService, logger *zap.Logger) *preview.Gate {
	return preview.NewGate(tokens, logger)
}

func ProvideGatedFetcher(base *CatalogProductFetcher, gate *preview.Gate) *preview.GatedFetcher {
	return preview.NewGatedFetcher(base, gate)
}

// ProvideRegistryWithResolvers 註冊支援多商店清單的實體類型
func ProvideRegistryWithResolvers(
	products *storeurl.ProductResolver,
	pages *storeurl.CmsPageResolver,
) *Registry {
	reg := NewRegistry()
	reg.Register(core.EntityTypeProduct, products)
	reg.Register(core.EntityTypeCmsPage, pages)
	return reg
}
