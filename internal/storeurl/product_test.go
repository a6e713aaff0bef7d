package storeurl

import (
	"context"
	"strings"
	"testing"

	"storelink/internal/core"
	"storelink/internal/preview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	registry   *fakeRegistry
	rewrites   *fakeRewrites
	attributes *fakeAttributes
	websites   fakeWebsites
	tokens     *fakeTokens
	routes     RouteBuilder
}

func newProductFixture() *productFixture {
	registry := newFakeRegistry(
		StoreDescriptor{ID: 0, Code: core.AdminStoreCode, Name: "Admin", IsActive: true, BaseURL: "https://admin.example/"},
		store(1, "store1", "Store One", 1, 1),
		store(2, "store2", "Store Two", 1, 2),
	)
	return &productFixture{
		registry: registry,
		rewrites: &fakeRewrites{records: []UrlRewrite{
			{EntityID: 42, EntityType: core.EntityTypeProduct, StoreID: 1, RequestPath: "red-shoes.html"},
		}},
		attributes: newFakeAttributes(),
		websites:   fakeWebsites{42: {1}},
		tokens:     &fakeTokens{},
		routes:     NewDefaultRouteBuilder(""),
	}
}

func (f *productFixture) resolver() *ProductResolver {
	r := NewResolver(f.registry, f.tokens, preview.DefaultParams(), nil)
	return NewProductResolver(r, f.registry, f.websites, f.rewrites, f.attributes, f.routes, nil)
}

func TestProductResolver_RewriteAndGenericRoute(t *testing.T) {
	f := newProductFixture()
	f.attributes.set(core.EntityTypeProduct, 42, core.AttributeStatus, core.DefaultStoreID, "1")

	urls, err := f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []StoreURL{
		{StoreID: 1, StoreCode: "store1", StoreName: "Store One", URL: "https://store1.example/red-shoes.html", SortOrder: 1},
		{StoreID: 2, StoreCode: "store2", StoreName: "Store Two", URL: "https://store2.example/catalog/product/view/id/42", SortOrder: 2},
	}, urls)
	assert.Empty(t, f.tokens.calls)
}

func TestProductResolver_DisabledInOneStore(t *testing.T) {
	f := newProductFixture()
	f.attributes.set(core.EntityTypeProduct, 42, core.AttributeStatus, core.DefaultStoreID, "1")
	f.attributes.set(core.EntityTypeProduct, 42, core.AttributeStatus, 2, "2")

	urls, err := f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	assert.False(t, urls[0].IsPreview)
	assert.NotContains(t, urls[0].URL, "ist_preview")

	assert.True(t, urls[1].IsPreview)
	assert.Equal(t, "https://store2.example/catalog/product/view/id/42?ist_preview=1&ist_preview_token=tok-42-2", urls[1].URL)
	assert.Equal(t, []string{"tok-42-2"}, f.tokens.calls)
}

func TestProductResolver_DefaultScopeStatusApplies(t *testing.T) {
	f := newProductFixture()
	f.attributes.set(core.EntityTypeProduct, 42, core.AttributeStatus, core.DefaultStoreID, "2")
	f.attributes.set(core.EntityTypeProduct, 42, core.AttributeStatus, 1, "1")
	f.rewrites.records = append(f.rewrites.records, UrlRewrite{
		EntityID: 42, EntityType: core.EntityTypeProduct, StoreID: 2, RequestPath: "red-shoes.html?color=red",
	})

	urls, err := f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.False(t, urls[0].IsPreview)
	assert.True(t, urls[1].IsPreview)
	assert.True(t, strings.HasPrefix(urls[1].URL, "https://store2.example/red-shoes.html?color=red&ist_preview=1&ist_preview_token="))
}

func TestProductResolver_InvalidID(t *testing.T) {
	f := newProductFixture()
	for _, id := range []int{0, -1} {
		urls, err := f.resolver().ResolveURLs(context.Background(), id)
		require.NoError(t, err)
		assert.Empty(t, urls)
	}
}

func TestProductResolver_StoreFiltering(t *testing.T) {
	f := newProductFixture()
	inactive := store(3, "store3", "Store Three", 1, 0)
	inactive.IsActive = false
	f.registry.stores[3] = inactive
	f.registry.websites[1] = append(f.registry.websites[1], 3)
	f.registry.stores[4] = store(4, "store4", "Store Four", 2, 0)
	f.registry.websites[2] = []int{4}
	f.websites[42] = []int{1, 99, 2, 1}

	urls, err := f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)

	ids := make([]int, 0, len(urls))
	for _, u := range urls {
		ids = append(ids, u.StoreID)
		assert.NotEqual(t, core.DefaultStoreID, u.StoreID)
	}
	assert.Equal(t, []int{4, 1, 2}, ids)
}

func TestProductResolver_PrefersRewriteWithoutCategory(t *testing.T) {
	f := newProductFixture()
	f.rewrites.records = []UrlRewrite{
		{EntityID: 42, EntityType: core.EntityTypeProduct, StoreID: 1, RequestPath: "men/red-shoes.html", CategoryID: 7},
		{EntityID: 42, EntityType: core.EntityTypeProduct, StoreID: 1, RequestPath: "red-shoes.html"},
		{EntityID: 42, EntityType: core.EntityTypeProduct, StoreID: 1, RequestPath: "old.html", RedirectType: 301},
		{EntityID: 42, EntityType: core.EntityTypeProduct, StoreID: 2, RequestPath: "women/red-shoes.html", CategoryID: 8},
		{EntityID: 42, EntityType: core.EntityTypeProduct, StoreID: 2, RequestPath: "sale/red-shoes.html", CategoryID: 9},
	}

	urls, err := f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, "https://store1.example/red-shoes.html", urls[0].URL)
	assert.Equal(t, "https://store2.example/women/red-shoes.html", urls[1].URL)
}

func TestProductResolver_PerStoreFailuresAreSkipped(t *testing.T) {
	f := newProductFixture()
	f.rewrites.records = nil
	f.routes = failingRoutes{}

	urls, err := f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, urls)

	f = newProductFixture()
	f.rewrites.err = errBoom
	urls, err = f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, urls)

	f = newProductFixture()
	f.attributes.set(core.EntityTypeProduct, 42, core.AttributeStatus, 1, "2")
	f.tokens.err = errBoom
	urls, err = f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, 2, urls[0].StoreID)
}

func TestProductResolver_StatusLookupErrorMeansNoPreview(t *testing.T) {
	f := newProductFixture()
	f.attributes.err = errBoom

	urls, err := f.resolver().ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	for _, u := range urls {
		assert.False(t, u.IsPreview)
	}
}

func TestProductResolver_WithRealTokens(t *testing.T) {
	f := newProductFixture()
	f.attributes.set(core.EntityTypeProduct, 42, core.AttributeStatus, 2, "2")

	tokens, err := preview.NewTokenService("s3cret")
	require.NoError(t, err)
	r := NewResolver(f.registry, tokens, preview.DefaultParams(), nil)
	resolver := NewProductResolver(r, f.registry, f.websites, f.rewrites, f.attributes, f.routes, nil)

	urls, err := resolver.ResolveURLs(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	_, query, found := strings.Cut(urls[1].URL, "?")
	require.True(t, found)
	parts := strings.SplitN(query, "&", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "ist_preview=1", parts[0])
	token := strings.TrimPrefix(parts[1], "ist_preview_token=")
	assert.True(t, tokens.IsValid(token, 42, 2))
	assert.False(t, tokens.IsValid(token, 42, 1))
}
