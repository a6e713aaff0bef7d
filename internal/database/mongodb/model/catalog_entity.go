package model

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogProduct 商品主檔；可依商店變動的值存在 entity_attribute_values
type CatalogProduct struct {
	ID         int       `json:"id" bson:"_id"`
	SKU        string    `json:"sku" bson:"sku"`
	TypeID     string    `json:"typeId" bson:"typeId"`
	WebsiteIDs []int     `json:"websiteIds" bson:"websiteIds"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

var CatalogProductIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: options.Index().SetName("uniq_sku").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "websiteIds", Value: 1}},
		Options: options.Index().SetName("idx_websiteIds"),
	},
}

// AttributeValue 單一 scope 的屬性原始值；storeId 0 為預設 scope
type AttributeValue struct {
	EntityType string `json:"entityType" bson:"entityType"`
	EntityID   int    `json:"entityId" bson:"entityId"`
	Code       string `json:"code" bson:"code"`
	StoreID    int    `json:"storeId" bson:"storeId"`
	Value      string `json:"value" bson:"value"`
}

var AttributeValueIndexes = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "entityType", Value: 1},
			{Key: "entityId", Value: 1},
			{Key: "code", Value: 1},
			{Key: "storeId", Value: 1},
		},
		Options: options.Index().SetName("uniq_entity_code_store").SetUnique(true),
	},
}

type CmsPage struct {
	ID         int       `json:"id" bson:"_id"`
	Identifier string    `json:"identifier" bson:"identifier"`
	Title      string    `json:"title" bson:"title"`
	IsActive   bool      `json:"isActive" bson:"isActive"`
	StoreIDs   []int     `json:"storeIds" bson:"storeIds"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// AssignedTo 未指定商店或包含 store 0 時視為所有商店
func (p *CmsPage) AssignedTo(storeID int) bool {
	if len(p.StoreIDs) == 0 {
		return true
	}
	for _, id := range p.StoreIDs {
		if id == 0 || id == storeID {
			return true
		}
	}
	return false
}

var CmsPageIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "identifier", Value: 1}, {Key: "storeIds", Value: 1}},
		Options: options.Index().SetName("idx_identifier_storeIds"),
	},
}

// CatalogCategory Path 為 "1/2/10" 形式的祖先 id 串
type CatalogCategory struct {
	ID       int    `json:"id" bson:"_id"`
	ParentID int    `json:"parentId" bson:"parentId"`
	Path     string `json:"path" bson:"path"`
	Level    int    `json:"level" bson:"level"`
	Name     string `json:"name" bson:"name"`
	IsActive bool   `json:"isActive" bson:"isActive"`
}

// PathIDs 解析 Path；無法解析的片段略過
func (c *CatalogCategory) PathIDs() []int {
	if c.Path == "" {
		return nil
	}
	parts := strings.Split(c.Path, "/")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

var CatalogCategoryIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "parentId", Value: 1}},
		Options: options.Index().SetName("idx_parentId"),
	},
	{
		Keys:    bson.D{{Key: "path", Value: 1}},
		Options: options.Index().SetName("idx_path"),
	},
}
