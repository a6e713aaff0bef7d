package cron

import (
	"context"

	"storelink/config"
	"storelink/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

// DefaultProbeSpec 每 15 秒檢查一次依賴
const DefaultProbeSpec = "*/15 * * * * *"

type Cron struct {
	logger *zap.Logger
	config *config.Configuration
	server *cron.Cron
	probe  *service.ReadinessProbe
}

// NewCron .
func NewCron(logger *zap.Logger, config *config.Configuration, probe *service.ReadinessProbe) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Cron{
		logger: logger,
		config: config,
		server: server,
		probe:  probe,
	}
}

// Run 先同步探測一次，讓 /readyz 在排程觸發前就有結果
func (c *Cron) Run() error {
	if c.probe != nil {
		c.probe.Run()
		spec := c.config.Cron.ProbeSpec
		if spec == "" {
			spec = DefaultProbeSpec
		}
		if _, err := c.server.AddFunc(spec, c.probe.Run); err != nil {
			return err
		}
		c.logger.Info("readiness probe scheduled", zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	select {
	case <-c.server.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
