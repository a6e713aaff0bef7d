package telemetry

import (
	"context"
	"time"

	"storelink/config"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(ProvideTrace, NewMetric)

// ProvideTrace 建立 Trace，cleanup 時 flush 尚未送出的 span
func ProvideTrace(conf *config.Configuration) (*Trace, func(), error) {
	trace, err := NewTrace(conf)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = trace.Shutdown(ctx)
	}
	return trace, cleanup, nil
}
