package service

import (
	"context"
	"errors"

	"storelink/internal/core"
	"storelink/internal/database/mongodb/model"
	mongoDb "storelink/internal/database/mongodb/repository"
	"storelink/internal/storeurl"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type storeReader interface {
	GetByID(ctx context.Context, storeID int) (*model.CatalogStore, error)
	GetByCode(ctx context.Context, code string) (*model.CatalogStore, error)
	List(ctx context.Context, filter bson.M) ([]*model.CatalogStore, error)
}

type groupReader interface {
	GetByID(ctx context.Context, groupID int) (*model.StoreGroup, error)
}

type websiteReader interface {
	GetByID(ctx context.Context, websiteID int) (*model.Website, error)
	GetDefault(ctx context.Context) (*model.Website, error)
}

type productReader interface {
	GetByID(ctx context.Context, productID int) (*model.CatalogProduct, error)
}

type attributeValueReader interface {
	GetValue(ctx context.Context, entityType core.EntityType, entityID int, code string, storeID int) (string, bool, error)
}

type cmsPageReader interface {
	GetByID(ctx context.Context, pageID int) (*model.CmsPage, error)
}

type categoryReader interface {
	GetByID(ctx context.Context, categoryID int) (*model.CatalogCategory, error)
}

// CatalogSource 以 MongoDB 目錄資料實作 storeurl 需要的唯讀介面
type CatalogSource struct {
	stores     storeReader
	groups     groupReader
	websites   websiteReader
	products   productReader
	attributes attributeValueReader
	pages      cmsPageReader
	categories categoryReader
}

var (
	_ storeurl.StoreRegistry   = (*CatalogSource)(nil)
	_ storeurl.AttributeReader = (*CatalogSource)(nil)
	_ storeurl.ProductWebsites = (*CatalogSource)(nil)
	_ storeurl.CmsPageSource   = (*CatalogSource)(nil)
	_ storeurl.CategorySource  = (*CatalogSource)(nil)
)

func NewCatalogSource(
	storeRepo *mongoDb.CatalogStoreRepository,
	groupRepo *mongoDb.StoreGroupRepository,
	websiteRepo *mongoDb.WebsiteRepository,
	productRepo *mongoDb.CatalogProductRepository,
	attributeRepo *mongoDb.AttributeValueRepository,
	pageRepo *mongoDb.CmsPageRepository,
	categoryRepo *mongoDb.CatalogCategoryRepository,
) *CatalogSource {
	return &CatalogSource{
		stores:     storeRepo,
		groups:     groupRepo,
		websites:   websiteRepo,
		products:   productRepo,
		attributes: attributeRepo,
		pages:      pageRepo,
		categories: categoryRepo,
	}
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func (s *CatalogSource) GetStore(ctx context.Context, storeID int) (*storeurl.StoreDescriptor, error) {
	store, err := s.stores.GetByID(ctx, storeID)
	if isNoDocuments(err) {
		return nil, storeurl.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.describe(ctx, store)
}

func (s *CatalogSource) GetStoreByCode(ctx context.Context, code string) (*storeurl.StoreDescriptor, error) {
	store, err := s.stores.GetByCode(ctx, code)
	if isNoDocuments(err) {
		return nil, storeurl.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.describe(ctx, store)
}

func (s *CatalogSource) ListStores(ctx context.Context, includeAdmin bool) ([]storeurl.StoreDescriptor, error) {
	stores, err := s.stores.List(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return s.describeAll(ctx, stores, includeAdmin)
}

func (s *CatalogSource) GetWebsiteStores(ctx context.Context, websiteID int) ([]storeurl.StoreDescriptor, error) {
	if _, err := s.websites.GetByID(ctx, websiteID); err != nil {
		if isNoDocuments(err) {
			return nil, storeurl.ErrWebsiteNotFound
		}
		return nil, err
	}
	stores, err := s.stores.List(ctx, bson.M{"websiteId": websiteID})
	if err != nil {
		return nil, err
	}
	return s.describeAll(ctx, stores, false)
}

// GetDefaultStoreView 預設網站 → 預設群組 → 群組預設商店
func (s *CatalogSource) GetDefaultStoreView(ctx context.Context) (*storeurl.StoreDescriptor, error) {
	website, err := s.websites.GetDefault(ctx)
	if isNoDocuments(err) {
		return nil, storeurl.ErrWebsiteNotFound
	}
	if err != nil {
		return nil, err
	}
	group, err := s.groups.GetByID(ctx, website.DefaultGroupID)
	if isNoDocuments(err) {
		return nil, storeurl.ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.GetStore(ctx, group.DefaultStoreID)
}

func (s *CatalogSource) GetGroup(ctx context.Context, groupID int) (*storeurl.GroupDescriptor, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if isNoDocuments(err) {
		return nil, storeurl.ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &storeurl.GroupDescriptor{
		ID:             group.ID,
		WebsiteID:      group.WebsiteID,
		Name:           group.Name,
		RootCategoryID: group.RootCategoryID,
		DefaultStoreID: group.DefaultStoreID,
	}, nil
}

func (s *CatalogSource) GetRawAttribute(ctx context.Context, entityType core.EntityType, entityID int, code string, storeID int) (string, bool, error) {
	return s.attributes.GetValue(ctx, entityType, entityID, code, storeID)
}

// attributeWithDefault 商店 scope 沒有值時退回預設 scope
func (s *CatalogSource) attributeWithDefault(ctx context.Context, entityType core.EntityType, entityID int, code string, storeID int) (string, bool, error) {
	if storeID != core.DefaultStoreID {
		value, found, err := s.attributes.GetValue(ctx, entityType, entityID, code, storeID)
		if err != nil || found {
			return value, found, err
		}
	}
	return s.attributes.GetValue(ctx, entityType, entityID, code, core.DefaultStoreID)
}

func (s *CatalogSource) GetProductWebsiteIDs(ctx context.Context, productID int) ([]int, error) {
	product, err := s.products.GetByID(ctx, productID)
	if isNoDocuments(err) {
		return nil, storeurl.ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	return product.WebsiteIDs, nil
}

func (s *CatalogSource) GetPageStoreIDs(ctx context.Context, pageID int) ([]int, error) {
	page, err := s.pages.GetByID(ctx, pageID)
	if isNoDocuments(err) {
		return nil, storeurl.ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	return page.StoreIDs, nil
}

// GetPageIdentifier 頁面未指派到該商店時回傳 ErrEntityNotFound
func (s *CatalogSource) GetPageIdentifier(ctx context.Context, pageID, storeID int) (string, error) {
	page, err := s.pages.GetByID(ctx, pageID)
	if isNoDocuments(err) {
		return "", storeurl.ErrEntityNotFound
	}
	if err != nil {
		return "", err
	}
	if !page.AssignedTo(storeID) || page.Identifier == "" {
		return "", storeurl.ErrEntityNotFound
	}
	return page.Identifier, nil
}

func (s *CatalogSource) GetCategory(ctx context.Context, categoryID int) (*storeurl.CategoryNode, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if isNoDocuments(err) {
		return nil, storeurl.ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &storeurl.CategoryNode{ID: category.ID, PathIDs: category.PathIDs()}, nil
}

func (s *CatalogSource) describeAll(ctx context.Context, stores []*model.CatalogStore, includeAdmin bool) ([]storeurl.StoreDescriptor, error) {
	result := make([]storeurl.StoreDescriptor, 0, len(stores))
	for _, store := range stores {
		descriptor, err := s.describe(ctx, store)
		if err != nil {
			return nil, err
		}
		if !includeAdmin && descriptor.IsAdmin() {
			continue
		}
		result = append(result, *descriptor)
	}
	return result, nil
}

// describe 根分類取自商店所屬群組；群組不存在時為 0
func (s *CatalogSource) describe(ctx context.Context, store *model.CatalogStore) (*storeurl.StoreDescriptor, error) {
	descriptor := &storeurl.StoreDescriptor{
		ID:        store.ID,
		Code:      store.Code,
		Name:      store.Name,
		WebsiteID: store.WebsiteID,
		GroupID:   store.GroupID,
		IsActive:  store.IsActive,
		SortOrder: store.SortOrder,
		BaseURL:   store.BaseURL,
	}
	if store.GroupID == 0 {
		return descriptor, nil
	}
	group, err := s.groups.GetByID(ctx, store.GroupID)
	if isNoDocuments(err) {
		return descriptor, nil
	}
	if err != nil {
		return nil, err
	}
	descriptor.RootCategoryID = group.RootCategoryID
	return descriptor, nil
}
