package storeurl

import (
	"context"
	"errors"

	"storelink/internal/core"
)

var (
	ErrStoreNotFound   = errors.New("storeurl: store not found")
	ErrWebsiteNotFound = errors.New("storeurl: website not found")
	ErrGroupNotFound   = errors.New("storeurl: store group not found")
	ErrEntityNotFound  = errors.New("storeurl: entity not found")
	ErrRewriteNotFound = errors.New("storeurl: url rewrite not found")
	ErrRouting         = errors.New("storeurl: route could not be built")
	// ErrUnknownStore 指定的商店不存在（呼叫端輸入錯誤）
	ErrUnknownStore = errors.New("storeurl: requested store does not exist")
	// ErrNoStoreURL 分類在任何商店都沒有可用的 URL
	ErrNoStoreURL = errors.New("storeurl: no storefront url available")
)

// StoreDescriptor 商店視圖快照，解析過程中不會被修改
type StoreDescriptor struct {
	ID             int
	Code           string
	Name           string
	WebsiteID      int
	GroupID        int
	IsActive       bool
	SortOrder      int
	RootCategoryID int
	BaseURL        string
}

// IsAdmin store 0 / code "admin" 為後台商店
func (s StoreDescriptor) IsAdmin() bool {
	return s.ID == core.DefaultStoreID || s.Code == core.AdminStoreCode
}

type GroupDescriptor struct {
	ID             int
	WebsiteID      int
	Name           string
	RootCategoryID int
	DefaultStoreID int
}

// UrlRewrite url rewrite 索引中的一筆紀錄；CategoryID 為 0 代表沒有分類 metadata
type UrlRewrite struct {
	EntityID     int
	EntityType   core.EntityType
	StoreID      int
	RequestPath  string
	RedirectType int
	CategoryID   int
}

type RewriteFilter struct {
	EntityID     int
	EntityType   core.EntityType
	StoreID      int
	RedirectType int
}

// StoreURL 單一商店的 storefront 連結
type StoreURL struct {
	StoreID   int    `json:"storeId"`
	StoreCode string `json:"storeCode"`
	StoreName string `json:"storeName"`
	URL       string `json:"url"`
	SortOrder int    `json:"sortOrder"`
	IsPreview bool   `json:"isPreview"`
}

type StoreRegistry interface {
	GetStore(ctx context.Context, storeID int) (*StoreDescriptor, error)
	GetStoreByCode(ctx context.Context, code string) (*StoreDescriptor, error)
	ListStores(ctx context.Context, includeAdmin bool) ([]StoreDescriptor, error)
	GetWebsiteStores(ctx context.Context, websiteID int) ([]StoreDescriptor, error)
	GetDefaultStoreView(ctx context.Context) (*StoreDescriptor, error)
	GetGroup(ctx context.Context, groupID int) (*GroupDescriptor, error)
}

// RewriteFinder 依條件查詢 url rewrite；FindOne 查無資料時回傳 ErrRewriteNotFound
type RewriteFinder interface {
	FindAll(ctx context.Context, filter RewriteFilter) ([]UrlRewrite, error)
	FindOne(ctx context.Context, filter RewriteFilter) (*UrlRewrite, error)
}

// AttributeReader 讀取指定 scope 的原始屬性值，不做任何 scope 遞補
type AttributeReader interface {
	GetRawAttribute(ctx context.Context, entityType core.EntityType, entityID int, code string, storeID int) (string, bool, error)
}

type RouteBuilder interface {
	BuildURL(store StoreDescriptor, route string, params map[string]string, noSessionID bool) (string, error)
}

type ProductWebsites interface {
	GetProductWebsiteIDs(ctx context.Context, productID int) ([]int, error)
}

// CmsPageSource 頁面不存在（或不屬於該商店）時回傳 ErrEntityNotFound
type CmsPageSource interface {
	GetPageStoreIDs(ctx context.Context, pageID int) ([]int, error)
	GetPageIdentifier(ctx context.Context, pageID, storeID int) (string, error)
}

type CategoryNode struct {
	ID      int
	PathIDs []int
}

type CategorySource interface {
	GetCategory(ctx context.Context, categoryID int) (*CategoryNode, error)
}

// TokenGenerator 為停用商品簽發預覽 token
type TokenGenerator interface {
	Generate(productID, storeID int) (string, error)
}
