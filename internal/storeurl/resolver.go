package storeurl

import (
	"context"

	"storelink/internal/core"
	"storelink/internal/preview"

	"go.uber.org/zap"
)

// Variant 各實體類型的差異點；其餘流程由 Resolver 共用
type Variant interface {
	EntityType() core.EntityType
	// CandidateStores 回傳候選商店 id，錯誤會直接中止整個解析
	CandidateStores(ctx context.Context, entityID int) ([]int, error)
	// CanonicalURL 回傳該商店的絕對網址，錯誤只會略過該商店
	CanonicalURL(ctx context.Context, entityID int, store StoreDescriptor) (string, error)
	// PreviewEligible 該商店是否需要附加預覽 token
	PreviewEligible(ctx context.Context, entityID int, store StoreDescriptor) bool
}

// Resolver 通用的「候選商店 → 過濾 → 網址 → 預覽 → 排序」流程
type Resolver struct {
	stores StoreRegistry
	tokens TokenGenerator
	params preview.Params
	logger *zap.Logger
}

func NewResolver(stores StoreRegistry, tokens TokenGenerator, params preview.Params, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{stores: stores, tokens: tokens, params: params, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, v Variant, entityID int) ([]StoreURL, error) {
	if entityID <= 0 {
		return []StoreURL{}, nil
	}

	storeIDs, err := v.CandidateStores(ctx, entityID)
	if err != nil {
		return nil, err
	}

	result := make([]StoreURL, 0, len(storeIDs))
	for _, storeID := range uniqueIDs(storeIDs) {
		if storeID == core.DefaultStoreID {
			continue
		}
		store, err := r.stores.GetStore(ctx, storeID)
		if err != nil {
			r.skip(v, entityID, storeID, "store lookup failed", err)
			continue
		}
		if !store.IsActive || store.IsAdmin() {
			continue
		}

		link, err := v.CanonicalURL(ctx, entityID, *store)
		if err != nil {
			r.skip(v, entityID, storeID, "canonical url unavailable", err)
			continue
		}

		isPreview := false
		if v.PreviewEligible(ctx, entityID, *store) {
			token, err := r.tokens.Generate(entityID, store.ID)
			if err != nil {
				r.skip(v, entityID, storeID, "preview token generation failed", err)
				continue
			}
			link = preview.AppendQuery(link, r.params.Query(token))
			isPreview = true
		}

		result = append(result, StoreURL{
			StoreID:   store.ID,
			StoreCode: store.Code,
			StoreName: store.Name,
			URL:       link,
			SortOrder: store.SortOrder,
			IsPreview: isPreview,
		})
	}

	SortStoreURLs(result)
	return result, nil
}

func (r *Resolver) skip(v Variant, entityID, storeID int, reason string, err error) {
	r.logger.Debug("store skipped",
		zap.String("entityType", string(v.EntityType())),
		zap.Int("entityId", entityID),
		zap.Int("storeId", storeID),
		zap.String("reason", reason),
		zap.Error(err),
	)
}

// rewritePath 以 FindAll 查詢並套用 tie-break
func rewritePath(ctx context.Context, finder RewriteFinder, entityType core.EntityType, entityID, storeID int) (string, error) {
	rewrites, err := finder.FindAll(ctx, RewriteFilter{
		EntityID:     entityID,
		EntityType:   entityType,
		StoreID:      storeID,
		RedirectType: core.RedirectTypeNone,
	})
	if err != nil {
		return "", err
	}
	rewrite, ok := pickRewrite(rewrites)
	if !ok || rewrite.RequestPath == "" {
		return "", ErrRewriteNotFound
	}
	return rewrite.RequestPath, nil
}
