package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"storelink/config"
	"storelink/internal/core"
	"storelink/internal/database/client"
	fluentdDb "storelink/internal/database/fluentd/repository"
	"storelink/internal/database/mongodb/model"
	"storelink/internal/preview"
	"storelink/internal/storeurl"
	"storelink/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var errBoom = errors.New("boom")

type memStores map[int]*model.CatalogStore

func (m memStores) GetByID(_ context.Context, id int) (*model.CatalogStore, error) {
	if store, ok := m[id]; ok {
		return store, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m memStores) GetByCode(_ context.Context, code string) (*model.CatalogStore, error) {
	for _, store := range m {
		if store.Code == code {
			return store, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m memStores) List(_ context.Context, filter bson.M) ([]*model.CatalogStore, error) {
	var result []*model.CatalogStore
	for _, store := range m {
		if websiteID, ok := filter["websiteId"]; ok && websiteID != store.WebsiteID {
			continue
		}
		result = append(result, store)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

type memGroups map[int]*model.StoreGroup

func (m memGroups) GetByID(_ context.Context, id int) (*model.StoreGroup, error) {
	if group, ok := m[id]; ok {
		return group, nil
	}
	return nil, mongo.ErrNoDocuments
}

type memWebsites map[int]*model.Website

func (m memWebsites) GetByID(_ context.Context, id int) (*model.Website, error) {
	if website, ok := m[id]; ok {
		return website, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m memWebsites) GetDefault(_ context.Context) (*model.Website, error) {
	for _, website := range m {
		if website.IsDefault {
			return website, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type memProducts map[int]*model.CatalogProduct

func (m memProducts) GetByID(_ context.Context, id int) (*model.CatalogProduct, error) {
	if product, ok := m[id]; ok {
		return product, nil
	}
	return nil, mongo.ErrNoDocuments
}

type attributeKey struct {
	entityType core.EntityType
	entityID   int
	code       string
	storeID    int
}

type memAttributes struct {
	values map[attributeKey]string
	err    error
}

func (m *memAttributes) set(entityID int, code string, storeID int, value string) {
	m.values[attributeKey{core.EntityTypeProduct, entityID, code, storeID}] = value
}

func (m *memAttributes) GetValue(_ context.Context, entityType core.EntityType, entityID int, code string, storeID int) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	value, ok := m.values[attributeKey{entityType, entityID, code, storeID}]
	return value, ok, nil
}

type memPages map[int]*model.CmsPage

func (m memPages) GetByID(_ context.Context, id int) (*model.CmsPage, error) {
	if page, ok := m[id]; ok {
		return page, nil
	}
	return nil, mongo.ErrNoDocuments
}

type memCategories map[int]*model.CatalogCategory

func (m memCategories) GetByID(_ context.Context, id int) (*model.CatalogCategory, error) {
	if category, ok := m[id]; ok {
		return category, nil
	}
	return nil, mongo.ErrNoDocuments
}

type memRewrites struct {
	rows []*model.UrlRewrite
	err  error
}

func (m *memRewrites) FindAll(_ context.Context, filter bson.M) ([]*model.UrlRewrite, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*model.UrlRewrite
	for _, row := range m.rows {
		if filter["entityType"] == row.EntityType &&
			filter["entityId"] == row.EntityID &&
			filter["storeId"] == row.StoreID &&
			filter["redirectType"] == row.RedirectType {
			result = append(result, row)
		}
	}
	return result, nil
}

func (m *memRewrites) FindOne(ctx context.Context, filter bson.M) (*model.UrlRewrite, error) {
	rows, err := m.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return rows[0], nil
}

// catalogFixture 網站 1 有兩個前台商店（default / french）與 admin；商品 42 屬於網站 1
type catalogFixture struct {
	stores     memStores
	groups     memGroups
	websites   memWebsites
	products   memProducts
	attributes *memAttributes
	pages      memPages
	categories memCategories
	rewrites   *memRewrites
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		stores: memStores{
			0: {ID: 0, Code: "admin", Name: "Admin", IsActive: true},
			1: {ID: 1, Code: "default", Name: "Default Store View", WebsiteID: 1, GroupID: 1, IsActive: true, SortOrder: 0, BaseURL: "https://shop.example/"},
			2: {ID: 2, Code: "french", Name: "French", WebsiteID: 1, GroupID: 1, IsActive: true, SortOrder: 1, BaseURL: "https://shop.example/fr/"},
			3: {ID: 3, Code: "outlet", Name: "Outlet", WebsiteID: 2, GroupID: 2, IsActive: true, SortOrder: 0, BaseURL: "https://outlet.example/"},
		},
		groups: memGroups{
			1: {ID: 1, WebsiteID: 1, Name: "Main", RootCategoryID: 2, DefaultStoreID: 1},
			2: {ID: 2, WebsiteID: 2, Name: "Outlet", RootCategoryID: 20, DefaultStoreID: 3},
		},
		websites: memWebsites{
			1: {ID: 1, Code: "base", DefaultGroupID: 1, IsDefault: true},
			2: {ID: 2, Code: "outlet", DefaultGroupID: 2},
		},
		products: memProducts{
			42: {ID: 42, SKU: "RS-42", WebsiteIDs: []int{1}},
			77: {ID: 77, SKU: "OUT-77", WebsiteIDs: []int{2}},
		},
		attributes: &memAttributes{values: map[attributeKey]string{}},
		pages: memPages{
			5: {ID: 5, Identifier: "about-us", IsActive: true, StoreIDs: []int{2}},
		},
		categories: memCategories{
			10: {ID: 10, ParentID: 2, Path: "1/2/10", Level: 2, Name: "Shoes", IsActive: true},
		},
		rewrites: &memRewrites{rows: []*model.UrlRewrite{
			{EntityType: string(core.EntityTypeProduct), EntityID: 42, StoreID: 1, RequestPath: "red-shoes.html"},
		}},
	}
	f.attributes.set(42, core.AttributeName, 0, "Red Shoes")
	f.attributes.set(42, core.AttributeStatus, 0, "1")
	f.attributes.set(42, core.AttributeVisibility, 0, "4")
	return f
}

func (f *catalogFixture) source() *CatalogSource {
	return &CatalogSource{
		stores:     f.stores,
		groups:     f.groups,
		websites:   f.websites,
		products:   f.products,
		attributes: f.attributes,
		pages:      f.pages,
		categories: f.categories,
	}
}

func (f *catalogFixture) rewriteIndex() *RewriteIndex {
	return &RewriteIndex{mongo: f.rewrites}
}

func newTestTokens(now func() time.Time) *preview.TokenService {
	tokens, err := preview.NewTokenService("test-secret", preview.WithClock(now))
	if err != nil {
		panic(err)
	}
	return tokens
}

type serviceHarness struct {
	fixture  *catalogFixture
	source   *CatalogSource
	tokens   *preview.TokenService
	products *storeurl.ProductResolver
	storeURL *StoreURLService
	preview  *PreviewService
	view     *ProductViewService
}

func newServiceHarness(f *catalogFixture) *serviceHarness {
	now := func() time.Time { return time.Unix(1_700_000_000, 0) }
	source := f.source()
	tokens := newTestTokens(now)
	params := preview.DefaultParams()
	routes := storeurl.NewDefaultRouteBuilder("")
	resolver := storeurl.NewResolver(source, tokens, params, nil)
	products := storeurl.NewProductResolver(resolver, source, source, f.rewriteIndex(), source, routes, nil)
	pages := storeurl.NewCmsPageResolver(resolver, source, source, f.rewriteIndex(), routes)
	categories := storeurl.NewCategoryResolver(resolver, source, source, f.rewriteIndex(), source, routes, core.DefaultCategoryURLSuffix)

	registry := NewRegistry()
	registry.Register(core.EntityTypeProduct, products)
	registry.Register(core.EntityTypeCmsPage, pages)

	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	logger := zap.NewNop()
	logRepo := fluentdDb.NewLogRepository(&config.Configuration{}, &client.NoopClient{})
	fetcher := preview.NewGatedFetcher(
		&CatalogProductFetcher{products: f.products, source: source},
		preview.NewGate(tokens, logger),
	)

	return &serviceHarness{
		fixture:  f,
		source:   source,
		tokens:   tokens,
		products: products,
		storeURL: NewStoreURLService(trace, metric, registry, categories, logger),
		preview:  NewPreviewService(trace, metric, tokens, params, source, products, logRepo, logger),
		view:     NewProductViewService(trace, metric, source, fetcher, logger),
	}
}
