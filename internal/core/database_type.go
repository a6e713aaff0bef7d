package core

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBCatalog MongoDatabaseName = "catalog"
)

// MongoDB collections
const (
	MongoCollectionWebsites          MongoCollection = "store_websites"
	MongoCollectionStoreGroups       MongoCollection = "store_groups"
	MongoCollectionStores            MongoCollection = "stores"
	MongoCollectionUrlRewrites       MongoCollection = "url_rewrites"
	MongoCollectionProducts          MongoCollection = "catalog_products"
	MongoCollectionEntityAttributes  MongoCollection = "entity_attribute_values"
	MongoCollectionCmsPages          MongoCollection = "cms_pages"
	MongoCollectionCatalogCategories MongoCollection = "catalog_categories"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName     RedisKey = "storelink"     // 伺服器名稱
	RedisKeyPreviewAttempt RedisKey = "preview_check" // 預覽 token 驗證次數
)

const (
	FluentdRequest       FluentdSubTag = "request_log"
	FluentdResponse      FluentdSubTag = "response_log"
	FluentdPreviewIssued FluentdSubTag = "preview_issue_log"
)
