package core

// EntityType 對應 url rewrite 的 entity_type 欄位
type EntityType string

const (
	EntityTypeProduct  EntityType = "product"
	EntityTypeCmsPage  EntityType = "cms-page"
	EntityTypeCategory EntityType = "category"
)

const (
	// DefaultStoreID 為「所有商店視圖」虛擬商店，同時也是 admin store
	DefaultStoreID = 0
	AdminStoreCode = "admin"
)

// ProductStatus 對應 status 屬性的原始值
type ProductStatus int

const (
	ProductStatusEnabled  ProductStatus = 1
	ProductStatusDisabled ProductStatus = 2
)

// ProductVisibility 商品可見範圍
type ProductVisibility int

const (
	VisibilityNotVisible ProductVisibility = 1
	VisibilityInCatalog  ProductVisibility = 2
	VisibilityInSearch   ProductVisibility = 3
	VisibilityBoth       ProductVisibility = 4
)

// 屬性代碼
const (
	AttributeStatus     = "status"
	AttributeVisibility = "visibility"
	AttributeName       = "name"
	AttributeURLKey     = "url_key"
	AttributeURLPath    = "url_path"
)

// DefaultCategoryURLSuffix 未設定分類後綴時使用
const DefaultCategoryURLSuffix = ".html"

// 預設 storefront route
const (
	RouteProductView  = "catalog/product/view"
	RouteCmsPageView  = "cms/page/view"
	RouteCategoryView = "catalog/category/view"
)

// RedirectTypeNone url rewrite 中「非轉址」的值
const RedirectTypeNone = 0

// 預覽 query 參數預設名稱
const (
	PreviewFlagParam  = "ist_preview"
	PreviewTokenParam = "ist_preview_token"
)
