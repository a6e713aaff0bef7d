package dto

import "time"

// 簽發預覽 token
type IssuePreviewTokenDto struct {
	ProductID int `json:"productId" binding:"required,gt=0"`
	StoreID   int `json:"storeId" binding:"required,gt=0"`
	// 可選，0 使用設定值，上限 86400（preview.MaxTTLSeconds）
	TTLSeconds int64 `json:"ttlSeconds" binding:"omitempty,gte=0,lte=86400"`
}

type PreviewTokenResponseDto struct {
	Token      string    `json:"token"`
	ProductID  int       `json:"productId"`
	StoreID    int       `json:"storeId"`
	ExpiresAt  time.Time `json:"expiresAt"`
	FlagParam  string    `json:"flagParam"`
	TokenParam string    `json:"tokenParam"`
	// Query 已編碼的 "flag=1&token=..."，可直接接在 storefront 網址後
	Query string `json:"query"`
	// URL 該商店的預覽連結；商品在該商店沒有連結時為空
	URL string `json:"url,omitempty"`
}

type VerifyPreviewTokenDto struct {
	Token     string `json:"token" binding:"required"`
	ProductID int    `json:"productId" binding:"required,gt=0"`
	StoreID   int    `json:"storeId" binding:"required,gt=0"`
}

type VerifyPreviewTokenResponseDto struct {
	Valid bool `json:"valid"`
}
