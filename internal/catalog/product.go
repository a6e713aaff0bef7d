package catalog

import (
	"context"
	"errors"
	"slices"

	"storelink/internal/core"
)

var ErrProductNotFound = errors.New("catalog: product not found")

// Product storefront 端渲染所需的商品快照（已套用商店範圍的屬性值）
type Product struct {
	ID         int                    `json:"id"`
	SKU        string                 `json:"sku"`
	Name       string                 `json:"name"`
	URLKey     string                 `json:"urlKey,omitempty"`
	Status     core.ProductStatus     `json:"status"`
	Visibility core.ProductVisibility `json:"visibility"`
	WebsiteIDs []int                  `json:"websiteIds"`
	StoreID    int                    `json:"storeId"`
	// Previewed 本次請求經預覽 token 暫時啟用，不會寫回儲存
	Previewed bool `json:"previewed,omitempty"`
}

func (p *Product) IsEnabled() bool {
	return p.Status != core.ProductStatusDisabled
}

// CanShow 商品是否可在指定網站的商品頁顯示
func (p *Product) CanShow(websiteID int) bool {
	if p == nil || p.ID <= 0 {
		return false
	}
	if !p.IsEnabled() {
		return false
	}
	if p.Visibility == core.VisibilityNotVisible {
		return false
	}
	return slices.Contains(p.WebsiteIDs, websiteID)
}

// Fetcher 為 storefront 取得待渲染的商品
type Fetcher interface {
	FetchForRender(ctx context.Context, productID, storeID int) (*Product, error)
}
