package service

import (
	"context"

	"storelink/internal/core"
	"storelink/internal/storeurl"
)

// URLListResolver 回傳實體在所有可用商店的連結
type URLListResolver interface {
	ResolveURLs(ctx context.Context, entityID int) ([]storeurl.StoreURL, error)
}

// Registry 依實體類型取得多商店連結解析器
type Registry struct {
	resolvers map[core.EntityType]URLListResolver
}

func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[core.EntityType]URLListResolver)}
}

func (r *Registry) Register(entityType core.EntityType, resolver URLListResolver) {
	r.resolvers[entityType] = resolver
}

func (r *Registry) Get(entityType core.EntityType) (URLListResolver, bool) {
	resolver, ok := r.resolvers[entityType]
	return resolver, ok
}
