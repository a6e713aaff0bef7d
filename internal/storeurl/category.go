package storeurl

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"storelink/internal/core"
)

// CategoryResolver 分類只解析單一商店的連結
type CategoryResolver struct {
	resolver   *Resolver
	stores     StoreRegistry
	categories CategorySource
	rewrites   RewriteFinder
	attributes AttributeReader
	routes     RouteBuilder
	suffix     string
}

func NewCategoryResolver(
	resolver *Resolver,
	stores StoreRegistry,
	categories CategorySource,
	rewrites RewriteFinder,
	attributes AttributeReader,
	routes RouteBuilder,
	suffix string,
) *CategoryResolver {
	return &CategoryResolver{
		resolver:   resolver,
		stores:     stores,
		categories: categories,
		rewrites:   rewrites,
		attributes: attributes,
		routes:     routes,
		suffix:     suffix,
	}
}

// ResolveURL storeOverride 可為商店 id 或 code，空字串代表自動選擇。
// 沒有可用連結時回傳 ErrNoStoreURL。
func (c *CategoryResolver) ResolveURL(ctx context.Context, categoryID int, storeOverride string) (*StoreURL, error) {
	urls, err := c.resolver.Resolve(ctx, &categoryVariant{CategoryResolver: c, override: storeOverride}, categoryID)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, ErrNoStoreURL
	}
	return &urls[0], nil
}

// ResolveStore 依序：指定商店 → 根分類相符的商店（優先群組預設商店）→ 平台預設商店
func (c *CategoryResolver) ResolveStore(ctx context.Context, category *CategoryNode, storeOverride string) (*StoreDescriptor, error) {
	if storeOverride = strings.TrimSpace(storeOverride); storeOverride != "" {
		store, err := c.lookupOverride(ctx, storeOverride)
		if err != nil {
			return nil, err
		}
		if store.IsActive && !store.IsAdmin() {
			return store, nil
		}
	}

	if rootID := RootCategoryID(category.PathIDs); rootID != 0 {
		store, err := c.storeForRoot(ctx, rootID)
		if err != nil {
			return nil, err
		}
		if store != nil {
			return store, nil
		}
	}

	store, err := c.stores.GetDefaultStoreView(ctx)
	if errors.Is(err, ErrStoreNotFound) || errors.Is(err, ErrWebsiteNotFound) || errors.Is(err, ErrGroupNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !store.IsActive {
		return nil, nil
	}
	return store, nil
}

func (c *CategoryResolver) lookupOverride(ctx context.Context, override string) (*StoreDescriptor, error) {
	var (
		store *StoreDescriptor
		err   error
	)
	if id, convErr := strconv.Atoi(override); convErr == nil {
		store, err = c.stores.GetStore(ctx, id)
	} else {
		store, err = c.stores.GetStoreByCode(ctx, override)
	}
	if errors.Is(err, ErrStoreNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStore, override)
	}
	return store, err
}

func (c *CategoryResolver) storeForRoot(ctx context.Context, rootID int) (*StoreDescriptor, error) {
	stores, err := c.stores.ListStores(ctx, false)
	if err != nil {
		return nil, err
	}

	var candidate *StoreDescriptor
	for i := range stores {
		store := stores[i]
		if store.IsAdmin() || !store.IsActive || store.RootCategoryID != rootID {
			continue
		}
		if c.isGroupDefault(ctx, store) {
			return &store, nil
		}
		if candidate == nil {
			candidate = &store
		}
	}
	return candidate, nil
}

func (c *CategoryResolver) isGroupDefault(ctx context.Context, store StoreDescriptor) bool {
	group, err := c.stores.GetGroup(ctx, store.GroupID)
	if err != nil || group == nil {
		return false
	}
	return group.DefaultStoreID == store.ID
}

// RootCategoryID path 的第二層為根分類；只有一層時取第一層
func RootCategoryID(pathIDs []int) int {
	switch {
	case len(pathIDs) > 1:
		return pathIDs[1]
	case len(pathIDs) == 1:
		return pathIDs[0]
	default:
		return 0
	}
}

// BelongsToRoot rootID 為 0 時視為屬於所有商店
func BelongsToRoot(pathIDs []int, rootID int) bool {
	if rootID == 0 {
		return true
	}
	return slices.Contains(pathIDs, rootID)
}

type categoryVariant struct {
	*CategoryResolver
	override string
}

func (c *categoryVariant) EntityType() core.EntityType {
	return core.EntityTypeCategory
}

func (c *categoryVariant) CandidateStores(ctx context.Context, categoryID int) ([]int, error) {
	category, err := c.categories.GetCategory(ctx, categoryID)
	if errors.Is(err, ErrEntityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	store, err := c.ResolveStore(ctx, category, c.override)
	if err != nil || store == nil {
		return nil, err
	}
	if !BelongsToRoot(category.PathIDs, store.RootCategoryID) {
		return nil, nil
	}
	return []int{store.ID}, nil
}

// CanonicalURL rewrite → url_path → url_key + 後綴 → catalog/category/view
func (c *categoryVariant) CanonicalURL(ctx context.Context, categoryID int, store StoreDescriptor) (string, error) {
	rewrite, err := c.rewrites.FindOne(ctx, RewriteFilter{
		EntityID:     categoryID,
		EntityType:   core.EntityTypeCategory,
		StoreID:      store.ID,
		RedirectType: core.RedirectTypeNone,
	})
	switch {
	case err == nil && rewrite != nil && rewrite.RequestPath != "":
		return NormalizeURL(rewrite.RequestPath, store.BaseURL), nil
	case err != nil && !errors.Is(err, ErrRewriteNotFound):
		return "", err
	}

	urlPath, ok, err := rawAttributeWithDefault(ctx, c.attributes, core.EntityTypeCategory, categoryID, core.AttributeURLPath, store.ID)
	if err != nil {
		return "", err
	}
	if ok && urlPath != "" {
		return NormalizeURL(urlPath, store.BaseURL), nil
	}

	urlKey, ok, err := rawAttributeWithDefault(ctx, c.attributes, core.EntityTypeCategory, categoryID, core.AttributeURLKey, store.ID)
	if err != nil {
		return "", err
	}
	if ok && urlKey != "" {
		return NormalizeURL(urlKey+c.suffix, store.BaseURL), nil
	}

	return c.routes.BuildURL(store, core.RouteCategoryView, map[string]string{"id": itoa(categoryID)}, true)
}

func (c *categoryVariant) PreviewEligible(context.Context, int, StoreDescriptor) bool {
	return false
}
