package client

import (
	"context"

	"storelink/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresClient 選用的 URL rewrite 索引連線；未設定 DSN 時 Pool 為 nil
type PostgresClient struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresClient(logger *zap.Logger, config *config.Configuration) (*PostgresClient, func(), error) {
	postgresClient := &PostgresClient{logger: logger}
	if !config.Postgres.Enabled() {
		return postgresClient, func() {}, nil
	}

	pgConfig, err := pgxpool.ParseConfig(config.Postgres.DSN)
	if err != nil {
		logger.Error("failed to parse postgres config", zap.Error(err))
		return nil, nil, err
	}
	if config.Postgres.MaxConns > 0 {
		pgConfig.MaxConns = config.Postgres.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgConfig)
	if err != nil {
		logger.Error("failed to connect to Postgres", zap.Error(err))
		return nil, nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		logger.Error("failed to ping Postgres", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Postgres")
	postgresClient.pool = pool

	cleanup := func() {
		logger.Info("closing the Postgres resources")
		postgresClient.Close()
	}
	return postgresClient, cleanup, nil
}

// NewPostgresClientFrom 包裝既有連線池（測試使用）
func NewPostgresClientFrom(logger *zap.Logger, pool *pgxpool.Pool) *PostgresClient {
	return &PostgresClient{pool: pool, logger: logger}
}

func (p *PostgresClient) Enabled() bool {
	return p != nil && p.pool != nil
}

func (p *PostgresClient) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *PostgresClient) Ping(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.pool.Ping(ctx)
}

func (p *PostgresClient) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
