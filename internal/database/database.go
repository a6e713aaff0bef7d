package database

import (
	client "storelink/internal/database/client"
	fluentdRepo "storelink/internal/database/fluentd/repository"
	mongoRepo "storelink/internal/database/mongodb/repository"
	postgresRepo "storelink/internal/database/postgres/repository"
	redisRepo "storelink/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewPostgresClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	postgresRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
