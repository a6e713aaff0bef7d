package service

import (
	"context"

	"storelink/internal/core"
	"storelink/internal/database/mongodb/model"
	mongoDb "storelink/internal/database/mongodb/repository"
	postgresDb "storelink/internal/database/postgres/repository"
	"storelink/internal/storeurl"

	"go.mongodb.org/mongo-driver/bson"
)

type mongoRewriteReader interface {
	FindAll(ctx context.Context, filter bson.M) ([]*model.UrlRewrite, error)
	FindOne(ctx context.Context, filter bson.M) (*model.UrlRewrite, error)
}

type postgresRewriteReader interface {
	Enabled() bool
	FindAll(ctx context.Context, filter postgresDb.UrlRewriteFilter) ([]*model.UrlRewrite, error)
	FindOne(ctx context.Context, filter postgresDb.UrlRewriteFilter) (*model.UrlRewrite, error)
}

// RewriteIndex 設定 Postgres DSN 時改讀 url_rewrite 資料表，否則讀 MongoDB
type RewriteIndex struct {
	mongo    mongoRewriteReader
	postgres postgresRewriteReader
}

var _ storeurl.RewriteFinder = (*RewriteIndex)(nil)

func NewRewriteIndex(mongoRepo *mongoDb.UrlRewriteRepository, postgresRepo *postgresDb.UrlRewriteRepository) *RewriteIndex {
	return &RewriteIndex{mongo: mongoRepo, postgres: postgresRepo}
}

func (r *RewriteIndex) usePostgres() bool {
	return r.postgres != nil && r.postgres.Enabled()
}

func (r *RewriteIndex) FindAll(ctx context.Context, filter storeurl.RewriteFilter) ([]storeurl.UrlRewrite, error) {
	var (
		rows []*model.UrlRewrite
		err  error
	)
	if r.usePostgres() {
		rows, err = r.postgres.FindAll(ctx, toPostgresFilter(filter))
	} else {
		rows, err = r.mongo.FindAll(ctx, toMongoFilter(filter))
	}
	if err != nil {
		return nil, err
	}
	result := make([]storeurl.UrlRewrite, 0, len(rows))
	for _, row := range rows {
		result = append(result, toRewrite(row))
	}
	return result, nil
}

func (r *RewriteIndex) FindOne(ctx context.Context, filter storeurl.RewriteFilter) (*storeurl.UrlRewrite, error) {
	var (
		row *model.UrlRewrite
		err error
	)
	if r.usePostgres() {
		row, err = r.postgres.FindOne(ctx, toPostgresFilter(filter))
		if postgresDb.IsNotFound(err) {
			return nil, storeurl.ErrRewriteNotFound
		}
	} else {
		row, err = r.mongo.FindOne(ctx, toMongoFilter(filter))
		if isNoDocuments(err) {
			return nil, storeurl.ErrRewriteNotFound
		}
	}
	if err != nil {
		return nil, err
	}
	rewrite := toRewrite(row)
	return &rewrite, nil
}

func toMongoFilter(filter storeurl.RewriteFilter) bson.M {
	return bson.M{
		"entityType":   string(filter.EntityType),
		"entityId":     filter.EntityID,
		"storeId":      filter.StoreID,
		"redirectType": filter.RedirectType,
	}
}

func toPostgresFilter(filter storeurl.RewriteFilter) postgresDb.UrlRewriteFilter {
	return postgresDb.UrlRewriteFilter{
		EntityType:   string(filter.EntityType),
		EntityID:     filter.EntityID,
		StoreID:      filter.StoreID,
		RedirectType: filter.RedirectType,
	}
}

func toRewrite(row *model.UrlRewrite) storeurl.UrlRewrite {
	rewrite := storeurl.UrlRewrite{
		EntityID:     row.EntityID,
		EntityType:   core.EntityType(row.EntityType),
		StoreID:      row.StoreID,
		RequestPath:  row.RequestPath,
		RedirectType: row.RedirectType,
	}
	if row.Metadata != nil {
		rewrite.CategoryID = row.Metadata.CategoryID
	}
	return rewrite
}
