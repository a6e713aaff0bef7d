package service

import (
	"storelink/internal/preview"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewReadinessProbe,
	NewCatalogSource,
	NewRewriteIndex,
	NewCatalogProductFetcher,
	preview.NewParams,
	ProvideTokenService,
	ProvideRouteBuilder,
	ProvideResolver,
	ProvideProductResolver,
	ProvideCmsPageResolver,
	ProvideCategoryResolver,
	ProvideGate,
	ProvideGatedFetcher,
	ProvideRegistryWithResolvers,
	NewStoreURLService,
	NewPreviewService,
	NewProductViewService,
)
