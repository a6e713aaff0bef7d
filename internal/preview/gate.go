package preview

import (
	"context"

	"storelink/internal/catalog"
	"storelink/internal/core"

	"go.uber.org/zap"
)

type requestKey struct{}

// Request 目前請求帶入的預覽參數
type Request struct {
	Flag  string
	Token string
}

// Active flag 與 token 都非空才算預覽請求；flag 為 "0" 視同未帶
func (r Request) Active() bool {
	return r.Flag != "" && r.Flag != "0" && r.Token != ""
}

func WithRequest(ctx context.Context, r Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

func RequestFrom(ctx context.Context) (Request, bool) {
	r, ok := ctx.Value(requestKey{}).(Request)
	return r, ok
}

// Validator 驗證 token 的最小介面
type Validator interface {
	IsValid(token string, productID, storeID int) bool
}

// Gate 決定停用商品是否可在本次請求中暫時視為啟用
type Gate struct {
	validator Validator
	logger    *zap.Logger
}

func NewGate(validator Validator, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{validator: validator, logger: logger}
}

// Apply 回傳本次請求應使用的商品。
// 條件成立時回傳 status 改為啟用的複本，原物件與儲存資料都不會被修改。
func (g *Gate) Apply(ctx context.Context, product *catalog.Product, storeID int) (*catalog.Product, bool) {
	if product == nil {
		return nil, false
	}
	req, ok := RequestFrom(ctx)
	if !ok || !req.Active() {
		return product, false
	}
	if product.Status != core.ProductStatusDisabled {
		return product, false
	}
	if !g.validator.IsValid(req.Token, product.ID, storeID) {
		g.logger.Debug("preview token rejected",
			zap.Int("productId", product.ID),
			zap.Int("storeId", storeID),
		)
		return product, false
	}

	elevated := *product
	elevated.Status = core.ProductStatusEnabled
	elevated.Previewed = true
	return &elevated, true
}

// GatedFetcher 在 FetchForRender 前插入預覽檢查
type GatedFetcher struct {
	next catalog.Fetcher
	gate *Gate
}

func NewGatedFetcher(next catalog.Fetcher, gate *Gate) *GatedFetcher {
	return &GatedFetcher{next: next, gate: gate}
}

func (f *GatedFetcher) FetchForRender(ctx context.Context, productID, storeID int) (*catalog.Product, error) {
	product, err := f.next.FetchForRender(ctx, productID, storeID)
	if err != nil {
		return nil, err
	}
	product, _ = f.gate.Apply(ctx, product, storeID)
	return product, nil
}
