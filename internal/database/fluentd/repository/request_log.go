package repository

import (
	"context"
	"encoding/json"
	"time"

	"storelink/config"
	"storelink/internal/core"
	"storelink/internal/database/client"
	"storelink/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Preview Log 到 Fluentd；nil 時所有方法皆為 no-op
type LogRepository struct {
	fluentdClient client.Client
	version       string
	now           func() time.Time
}

func NewLogRepository(config *config.Configuration, client client.Client) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version, now: time.Now}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if repository == nil {
		return nil
	}
	if req.LoggedAt == "" {
		req.LoggedAt = repository.loggedAt()
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if repository == nil {
		return nil
	}
	if resp.LoggedAt == "" {
		resp.LoggedAt = repository.loggedAt()
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogPreviewIssued(ctx context.Context, issued model.PreviewIssuedLog) error {
	if repository == nil {
		return nil
	}
	if issued.LoggedAt == "" {
		issued.LoggedAt = repository.loggedAt()
	}
	if issued.Version == "" {
		issued.Version = repository.version
	}
	return repository.post(ctx, core.FluentdPreviewIssued, issued)
}

func (repository *LogRepository) loggedAt() string {
	return repository.now().UTC().Format(loggedAtLayout)
}

// post 以 json tag 轉成 map 後送出
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}
