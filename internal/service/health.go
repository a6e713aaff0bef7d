package service

import (
	"context"
	"sync/atomic"
	"time"

	"storelink/internal/database/client"

	"go.uber.org/zap"
)

type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool
}

func NewHealthService() *HealthService {
	s := &HealthService{}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady() bool {
	return s.ready.Load()
}

// Pinger 依賴健康檢查
type Pinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 3 * time.Second

// ReadinessProbe 逐一 ping 依賴，全部成功才標記 ready
type ReadinessProbe struct {
	health  *HealthService
	pingers map[string]Pinger
	logger  *zap.Logger
}

func NewReadinessProbe(
	health *HealthService,
	mongoClient *client.MongoClient,
	redisClient *client.RedisClient,
	postgresClient *client.PostgresClient,
	logger *zap.Logger,
) *ReadinessProbe {
	pingers := map[string]Pinger{
		"mongodb": mongoClient,
		"redis":   redisClient,
	}
	if postgresClient.Enabled() {
		pingers["postgres"] = postgresClient
	}
	return NewReadinessProbeWith(health, pingers, logger)
}

// NewReadinessProbeWith 指定要探測的依賴；沒有依賴時直接視為 ready
func NewReadinessProbeWith(health *HealthService, pingers map[string]Pinger, logger *zap.Logger) *ReadinessProbe {
	if pingers == nil {
		pingers = map[string]Pinger{}
	}
	return &ReadinessProbe{health: health, pingers: pingers, logger: logger}
}

func (p *ReadinessProbe) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	for name, pinger := range p.pingers {
		if err := pinger.Ping(ctx); err != nil {
			p.health.SetReady(false)
			p.logger.Warn("dependency not ready", zap.String("dependency", name), zap.Error(err))
			return err
		}
	}
	p.health.SetReady(true)
	return nil
}

// Run 給 cron 使用
func (p *ReadinessProbe) Run() {
	_ = p.Check(context.Background())
}
