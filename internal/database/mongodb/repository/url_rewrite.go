package repository

import (
	"context"

	"storelink/internal/core"
	client "storelink/internal/database/client"
	"storelink/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UrlRewriteRepository struct {
	collection *mongo.Collection
}

func NewUrlRewriteRepository(mongoClient *client.MongoClient) *UrlRewriteRepository {
	repository := &UrlRewriteRepository{
		collection: mongoClient.Collection(core.MongoCollectionUrlRewrites),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.UrlRewriteIndexes)
	return repository
}

// FindAll 依 _id 遞增回傳，也就是寫入順序
func (repository *UrlRewriteRepository) FindAll(contextValue context.Context, filter bson.M) (_ []*model.UrlRewrite, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.UrlRewrite
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

// FindOne 查無資料時回傳 mongo.ErrNoDocuments
func (repository *UrlRewriteRepository) FindOne(contextValue context.Context, filter bson.M) (_ *model.UrlRewrite, returnedError error) {
	var rewrite model.UrlRewrite
	findOptions := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	if returnedError = repository.collection.FindOne(contextValue, filter, findOptions).Decode(&rewrite); returnedError != nil {
		return nil, returnedError
	}
	return &rewrite, nil
}
