package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UrlRewriteMetadata struct {
	CategoryID int `json:"categoryId,omitempty" bson:"category_id,omitempty"`
}

type UrlRewrite struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id"`
	EntityType   string              `json:"entityType" bson:"entityType"`
	EntityID     int                 `json:"entityId" bson:"entityId"`
	StoreID      int                 `json:"storeId" bson:"storeId"`
	RequestPath  string              `json:"requestPath" bson:"requestPath"`
	TargetPath   string              `json:"targetPath" bson:"targetPath"`
	RedirectType int                 `json:"redirectType" bson:"redirectType"`
	Metadata     *UrlRewriteMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

var UrlRewriteIndexes = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "entityType", Value: 1},
			{Key: "entityId", Value: 1},
			{Key: "storeId", Value: 1},
			{Key: "redirectType", Value: 1},
		},
		Options: options.Index().SetName("idx_entity_store_redirect"),
	},
	{
		Keys:    bson.D{{Key: "requestPath", Value: 1}, {Key: "storeId", Value: 1}},
		Options: options.Index().SetName("uniq_requestPath_storeId").SetUnique(true),
	},
}
