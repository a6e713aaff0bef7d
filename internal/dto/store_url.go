package dto

// StoreURLDto 單一商店的 storefront 連結
type StoreURLDto struct {
	StoreID   int    `json:"storeId"`
	StoreCode string `json:"storeCode"`
	StoreName string `json:"storeName"`
	URL       string `json:"url"`
	SortOrder int    `json:"sortOrder"`
	IsPreview bool   `json:"isPreview"`
}

// 商品列表的一列
type ViewActionItemDto struct {
	EntityID int    `json:"entityId" binding:"required"`
	Name     string `json:"name" binding:"omitempty"`
}

// 商品列表「檢視」動作
type ProductViewActionsDto struct {
	Items []ViewActionItemDto `json:"items" binding:"required,dive"`
	// 回傳時使用的欄位名稱，預設 "actions"
	Column string `json:"column" binding:"omitempty"`
}

type ViewActionDto struct {
	Href      string `json:"href"`
	Label     string `json:"label"`
	AriaLabel string `json:"ariaLabel,omitempty"`
	Target    string `json:"target"`
	Hidden    bool   `json:"hidden"`
	RowIndex  int    `json:"rowIndex"`
	StoreID   int    `json:"storeId"`
}

// ViewActionRowDto 沒有任何連結的列不會出現
type ViewActionRowDto struct {
	EntityID int                      `json:"entityId"`
	RowIndex int                      `json:"rowIndex"`
	Column   string                   `json:"column"`
	Actions  map[string]ViewActionDto `json:"actions"`
}
