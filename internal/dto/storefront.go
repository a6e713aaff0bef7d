package dto

// StorefrontProductDto storefront 商品頁所需資料
type StorefrontProductDto struct {
	ID        int    `json:"id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	URLKey    string `json:"urlKey,omitempty"`
	StoreID   int    `json:"storeId"`
	StoreCode string `json:"storeCode"`
	Previewed bool   `json:"previewed"`
}

type VersionDto struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Env     string `json:"env"`
}
