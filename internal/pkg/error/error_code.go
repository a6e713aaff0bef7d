package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的請求參數
	UNKNOWN_STORE       = 40003 // 400 - 指定的商店不存在
	PREVIEW_UNAVAILABLE = 40004 // 400 - 無法為此商品/商店簽發預覽

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED         = 40100 // 401 - 未授權
	INVALID_ACCESS_TOKEN = 40102 // 401 - 後台 JWT 無效或過期
	INSUFFICIENT_SCOPE   = 40300 // 403 - JWT scope 不足
	FORBIDDEN            = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)

	// 50400 ~ 50499: 逾時 (504)
	GATEWAY_TIMEOUT = 50400 // 504 - 上游逾時
)
