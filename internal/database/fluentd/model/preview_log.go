package model

// PreviewIssuedLog 每次簽發預覽 token 的稽核紀錄（不含 token 本身）
type PreviewIssuedLog struct {
	RequestID string `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Subject   string `bson:"subject,omitempty" json:"subject,omitempty"`
	ProductID int    `bson:"product_id" json:"product_id"`
	StoreID   int    `bson:"store_id" json:"store_id"`
	Source    string `bson:"source" json:"source"` // "admin_api" / "store_urls" / "cli"
	ExpiresAt int64  `bson:"expires_at" json:"expires_at"`
	Version   string `bson:"version" json:"version"`
	LoggedAt  string `bson:"logged_at" json:"logged_at"`
}
