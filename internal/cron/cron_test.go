package cron

import (
	"context"
	"testing"
	"time"

	"storelink/config"
	"storelink/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCronRunsProbeImmediately(t *testing.T) {
	health := service.NewHealthService()
	probe := service.NewReadinessProbeWith(health, nil, zap.NewNop())
	c := NewCron(zap.NewNop(), &config.Configuration{}, probe)

	require.NoError(t, c.Run())
	assert.True(t, health.IsReady())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, c.Stop(ctx))
}

func TestCronRejectsBadSpec(t *testing.T) {
	conf := &config.Configuration{}
	conf.Cron.ProbeSpec = "not a spec"
	probe := service.NewReadinessProbeWith(service.NewHealthService(), nil, zap.NewNop())
	c := NewCron(zap.NewNop(), conf, probe)

	assert.Error(t, c.Run())
}
