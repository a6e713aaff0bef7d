package repository

import (
	"context"

	"storelink/internal/core"
	client "storelink/internal/database/client"
	"storelink/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogProductRepository struct {
	collection *mongo.Collection
}

func NewCatalogProductRepository(mongoClient *client.MongoClient) *CatalogProductRepository {
	repository := &CatalogProductRepository{
		collection: mongoClient.Collection(core.MongoCollectionProducts),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.CatalogProductIndexes)
	return repository
}

func (repository *CatalogProductRepository) GetByID(contextValue context.Context, productID int) (_ *model.CatalogProduct, returnedError error) {
	var product model.CatalogProduct
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": productID}).Decode(&product); returnedError != nil {
		return nil, returnedError
	}
	return &product, nil
}

type AttributeValueRepository struct {
	collection *mongo.Collection
}

func NewAttributeValueRepository(mongoClient *client.MongoClient) *AttributeValueRepository {
	repository := &AttributeValueRepository{
		collection: mongoClient.Collection(core.MongoCollectionEntityAttributes),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.AttributeValueIndexes)
	return repository
}

// GetValue 只讀取指定 scope；沒有資料時 found 為 false
func (repository *AttributeValueRepository) GetValue(
	contextValue context.Context,
	entityType core.EntityType,
	entityID int,
	code string,
	storeID int,
) (value string, found bool, returnedError error) {
	filter := bson.M{
		"entityType": string(entityType),
		"entityId":   entityID,
		"code":       code,
		"storeId":    storeID,
	}
	var attribute model.AttributeValue
	returnedError = repository.collection.FindOne(contextValue, filter).Decode(&attribute)
	if returnedError == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if returnedError != nil {
		return "", false, returnedError
	}
	return attribute.Value, true, nil
}

type CmsPageRepository struct {
	collection *mongo.Collection
}

func NewCmsPageRepository(mongoClient *client.MongoClient) *CmsPageRepository {
	repository := &CmsPageRepository{
		collection: mongoClient.Collection(core.MongoCollectionCmsPages),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.CmsPageIndexes)
	return repository
}

func (repository *CmsPageRepository) GetByID(contextValue context.Context, pageID int) (_ *model.CmsPage, returnedError error) {
	var page model.CmsPage
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": pageID}).Decode(&page); returnedError != nil {
		return nil, returnedError
	}
	return &page, nil
}

type CatalogCategoryRepository struct {
	collection *mongo.Collection
}

func NewCatalogCategoryRepository(mongoClient *client.MongoClient) *CatalogCategoryRepository {
	repository := &CatalogCategoryRepository{
		collection: mongoClient.Collection(core.MongoCollectionCatalogCategories),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.CatalogCategoryIndexes)
	return repository
}

func (repository *CatalogCategoryRepository) GetByID(contextValue context.Context, categoryID int) (_ *model.CatalogCategory, returnedError error) {
	var category model.CatalogCategory
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": categoryID}).Decode(&category); returnedError != nil {
		return nil, returnedError
	}
	return &category, nil
}
