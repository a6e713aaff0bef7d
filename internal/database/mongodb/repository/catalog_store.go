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

type CatalogStoreRepository struct {
	collection *mongo.Collection
}

func NewCatalogStoreRepository(mongoClient *client.MongoClient) *CatalogStoreRepository {
	repository := &CatalogStoreRepository{
		collection: mongoClient.Collection(core.MongoCollectionStores),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *CatalogStoreRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.CatalogStoreIndexes)
	return nil
}

func (repository *CatalogStoreRepository) GetByID(contextValue context.Context, storeID int) (_ *model.CatalogStore, returnedError error) {
	var store model.CatalogStore
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": storeID}).Decode(&store); returnedError != nil {
		return nil, returnedError
	}
	return &store, nil
}

func (repository *CatalogStoreRepository) GetByCode(contextValue context.Context, code string) (_ *model.CatalogStore, returnedError error) {
	var store model.CatalogStore
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"code": code}).Decode(&store); returnedError != nil {
		return nil, returnedError
	}
	return &store, nil
}

// List 依 sortOrder、_id 排序，確保呼叫端看到穩定的順序
func (repository *CatalogStoreRepository) List(contextValue context.Context, filter bson.M) (_ []*model.CatalogStore, returnedError error) {
	if filter == nil {
		filter = bson.M{}
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "_id", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.CatalogStore
	for cursor.Next(contextValue) {
		var store model.CatalogStore
		if decodeError := cursor.Decode(&store); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &store)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

type StoreGroupRepository struct {
	collection *mongo.Collection
}

func NewStoreGroupRepository(mongoClient *client.MongoClient) *StoreGroupRepository {
	repository := &StoreGroupRepository{
		collection: mongoClient.Collection(core.MongoCollectionStoreGroups),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.StoreGroupIndexes)
	return repository
}

func (repository *StoreGroupRepository) GetByID(contextValue context.Context, groupID int) (_ *model.StoreGroup, returnedError error) {
	var group model.StoreGroup
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": groupID}).Decode(&group); returnedError != nil {
		return nil, returnedError
	}
	return &group, nil
}

type WebsiteRepository struct {
	collection *mongo.Collection
}

func NewWebsiteRepository(mongoClient *client.MongoClient) *WebsiteRepository {
	repository := &WebsiteRepository{
		collection: mongoClient.Collection(core.MongoCollectionWebsites),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.WebsiteIndexes)
	return repository
}

func (repository *WebsiteRepository) GetByID(contextValue context.Context, websiteID int) (_ *model.Website, returnedError error) {
	var website model.Website
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": websiteID}).Decode(&website); returnedError != nil {
		return nil, returnedError
	}
	return &website, nil
}

// GetDefault 回傳標記為預設的網站
func (repository *WebsiteRepository) GetDefault(contextValue context.Context) (_ *model.Website, returnedError error) {
	var website model.Website
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"isDefault": true}).Decode(&website); returnedError != nil {
		return nil, returnedError
	}
	return &website, nil
}
