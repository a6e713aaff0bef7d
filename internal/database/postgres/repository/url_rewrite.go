package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"storelink/config"
	client "storelink/internal/database/client"
	"storelink/internal/database/mongodb/model"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5"
)

const defaultRewriteTable = "url_rewrite"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// UrlRewriteFilter 與 MongoDB 版本使用相同欄位
type UrlRewriteFilter struct {
	EntityType   string
	EntityID     int
	StoreID      int
	RedirectType int
}

// UrlRewriteRepository 讀取平台匯出的 url_rewrite 資料表
type UrlRewriteRepository struct {
	client *client.PostgresClient
	table  string
}

func NewUrlRewriteRepository(config *config.Configuration, postgresClient *client.PostgresClient) (*UrlRewriteRepository, error) {
	table := defaultRewriteTable
	if config.Postgres.RewriteTable != "" {
		table = config.Postgres.RewriteTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid url rewrite table name %q", table)
	}
	return &UrlRewriteRepository{client: postgresClient, table: table}, nil
}

func (repository *UrlRewriteRepository) Enabled() bool {
	return repository != nil && repository.client.Enabled()
}

// FindAll 依 url_rewrite_id 遞增回傳；metadata 可為 NULL、空字串或 JSON
func (repository *UrlRewriteRepository) FindAll(contextValue context.Context, filter UrlRewriteFilter) (_ []*model.UrlRewrite, returnedError error) {
	rows, queryError := repository.client.Pool().Query(contextValue, repository.selectSQL(""), filter.EntityType, filter.EntityID, filter.StoreID, filter.RedirectType)
	if queryError != nil {
		return nil, queryError
	}
	defer rows.Close()

	var results []*model.UrlRewrite
	for rows.Next() {
		rewrite, scanError := scanRewrite(rows)
		if scanError != nil {
			return nil, scanError
		}
		results = append(results, rewrite)
	}
	if rowsError := rows.Err(); rowsError != nil {
		return nil, rowsError
	}
	return results, nil
}

// FindOne 查無資料時回傳 pgx.ErrNoRows
func (repository *UrlRewriteRepository) FindOne(contextValue context.Context, filter UrlRewriteFilter) (_ *model.UrlRewrite, returnedError error) {
	row := repository.client.Pool().QueryRow(contextValue, repository.selectSQL("LIMIT 1"), filter.EntityType, filter.EntityID, filter.StoreID, filter.RedirectType)
	rewrite, scanError := scanRewrite(row)
	if scanError != nil {
		return nil, scanError
	}
	return rewrite, nil
}

func (repository *UrlRewriteRepository) selectSQL(suffix string) string {
	return fmt.Sprintf(`SELECT entity_type, entity_id, store_id, request_path, target_path, redirect_type,
       COALESCE((NULLIF(metadata::text, '')::jsonb ->> 'category_id')::int, 0)
  FROM %s
 WHERE entity_type = $1 AND entity_id = $2 AND store_id = $3 AND redirect_type = $4
 ORDER BY url_rewrite_id ASC %s`, repository.table, suffix)
}

func scanRewrite(row pgx.Row) (*model.UrlRewrite, error) {
	var (
		rewrite    model.UrlRewrite
		categoryID int
	)
	if err := row.Scan(
		&rewrite.EntityType,
		&rewrite.EntityID,
		&rewrite.StoreID,
		&rewrite.RequestPath,
		&rewrite.TargetPath,
		&rewrite.RedirectType,
		&categoryID,
	); err != nil {
		return nil, err
	}
	if categoryID != 0 {
		rewrite.Metadata = &model.UrlRewriteMetadata{CategoryID: categoryID}
	}
	return &rewrite, nil
}

// IsNotFound 供上層判斷 FindOne 查無資料
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

var ProviderSet = wire.NewSet(NewUrlRewriteRepository)
