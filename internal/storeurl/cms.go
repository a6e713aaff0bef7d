package storeurl

import (
	"context"
	"errors"
	"slices"

	"storelink/internal/core"
)

// CmsPageResolver CMS 頁面在各商店的連結，不產生預覽
type CmsPageResolver struct {
	resolver *Resolver
	stores   StoreRegistry
	pages    CmsPageSource
	rewrites RewriteFinder
	routes   RouteBuilder
}

func NewCmsPageResolver(resolver *Resolver, stores StoreRegistry, pages CmsPageSource, rewrites RewriteFinder, routes RouteBuilder) *CmsPageResolver {
	return &CmsPageResolver{
		resolver: resolver,
		stores:   stores,
		pages:    pages,
		rewrites: rewrites,
		routes:   routes,
	}
}

func (c *CmsPageResolver) ResolveURLs(ctx context.Context, pageID int) ([]StoreURL, error) {
	return c.resolver.Resolve(ctx, c, pageID)
}

func (c *CmsPageResolver) EntityType() core.EntityType {
	return core.EntityTypeCmsPage
}

// CandidateStores 頁面指定的商店；未指定或包含 store 0 時展開為所有啟用中的前台商店
func (c *CmsPageResolver) CandidateStores(ctx context.Context, pageID int) ([]int, error) {
	storeIDs, err := c.pages.GetPageStoreIDs(ctx, pageID)
	if errors.Is(err, ErrEntityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	storeIDs = uniqueIDs(storeIDs)
	if len(storeIDs) > 0 && !slices.Contains(storeIDs, core.DefaultStoreID) {
		return storeIDs, nil
	}

	stores, err := c.stores.ListStores(ctx, false)
	if err != nil {
		return nil, err
	}
	expanded := make([]int, 0, len(stores))
	for _, store := range stores {
		if store.IsActive && !store.IsAdmin() {
			expanded = append(expanded, store.ID)
		}
	}
	return expanded, nil
}

// CanonicalURL rewrite → 頁面 identifier → cms/page/view；頁面不屬於該商店時略過
func (c *CmsPageResolver) CanonicalURL(ctx context.Context, pageID int, store StoreDescriptor) (string, error) {
	identifier, err := c.pages.GetPageIdentifier(ctx, pageID, store.ID)
	if err != nil {
		return "", err
	}

	path, err := rewritePath(ctx, c.rewrites, core.EntityTypeCmsPage, pageID, store.ID)
	switch {
	case err == nil:
		return NormalizeURL(path, store.BaseURL), nil
	case !errors.Is(err, ErrRewriteNotFound):
		return "", err
	}

	if identifier != "" {
		return NormalizeURL(identifier, store.BaseURL), nil
	}
	return c.routes.BuildURL(store, core.RouteCmsPageView, map[string]string{"page_id": itoa(pageID)}, true)
}

func (c *CmsPageResolver) PreviewEligible(context.Context, int, StoreDescriptor) bool {
	return false
}
