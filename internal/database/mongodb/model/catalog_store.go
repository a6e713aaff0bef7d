package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogStore 商店視圖；_id 沿用平台的整數 store id，0 為 admin
type CatalogStore struct {
	ID        int       `json:"id" bson:"_id"`
	Code      string    `json:"code" bson:"code"`
	Name      string    `json:"name" bson:"name"`
	WebsiteID int       `json:"websiteId" bson:"websiteId"`
	GroupID   int       `json:"groupId" bson:"groupId"`
	IsActive  bool      `json:"isActive" bson:"isActive"`
	SortOrder int       `json:"sortOrder" bson:"sortOrder"`
	BaseURL   string    `json:"baseUrl" bson:"baseUrl"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

var CatalogStoreIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetName("uniq_code").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "websiteId", Value: 1}, {Key: "isActive", Value: 1}},
		Options: options.Index().SetName("idx_websiteId_isActive"),
	},
	{
		Keys:    bson.D{{Key: "sortOrder", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("idx_sortOrder"),
	},
}

// StoreGroup 商店群組，決定根分類與群組預設商店
type StoreGroup struct {
	ID             int    `json:"id" bson:"_id"`
	WebsiteID      int    `json:"websiteId" bson:"websiteId"`
	Name           string `json:"name" bson:"name"`
	RootCategoryID int    `json:"rootCategoryId" bson:"rootCategoryId"`
	DefaultStoreID int    `json:"defaultStoreId" bson:"defaultStoreId"`
}

var StoreGroupIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "websiteId", Value: 1}},
		Options: options.Index().SetName("idx_websiteId"),
	},
}

type Website struct {
	ID             int    `json:"id" bson:"_id"`
	Code           string `json:"code" bson:"code"`
	Name           string `json:"name" bson:"name"`
	DefaultGroupID int    `json:"defaultGroupId" bson:"defaultGroupId"`
	IsDefault      bool   `json:"isDefault" bson:"isDefault"`
}

var WebsiteIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetName("uniq_code").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "isDefault", Value: 1}},
		Options: options.Index().SetName("idx_isDefault"),
	},
}
