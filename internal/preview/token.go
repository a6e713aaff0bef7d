package preview

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// DefaultTTL 預覽 token 預設有效時間
const DefaultTTL = time.Hour

// MaxTTL 單一 token 有效時間上限，超過時截斷
const (
	MaxTTL        = 24 * time.Hour
	MaxTTLSeconds = int64(MaxTTL / time.Second)
)

// hkdf info，變更會讓所有既有 token 失效
const keyInfo = "storelink/preview-token/v1"

var ErrEmptySecret = errors.New("preview: secret key is empty")

// TokenService 簽發與驗證預覽 token。
// token 為自包含的加密字串，不落地；有效性只由內容與時鐘決定。
type TokenService struct {
	aead cipher.AEAD
	ttl  time.Duration
	now  func() time.Time
}

type Option func(*TokenService)

// WithTTL 覆寫預設有效時間，<=0 時忽略，超過 MaxTTL 時截斷
func WithTTL(ttl time.Duration) Option {
	return func(s *TokenService) {
		if ttl > 0 {
			s.ttl = min(ttl, MaxTTL)
		}
	}
}

// WithClock 注入時鐘（測試用）
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTokenService(secret string, opts ...Option) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("preview: derive key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("preview: init cipher: %w", err)
	}
	s := &TokenService{aead: aead, ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// payload 欄位使用指標，才能分辨「缺少」與「零值」
type payload struct {
	ProductID *int   `json:"product_id"`
	StoreID   *int   `json:"store_id"`
	ExpiresAt *int64 `json:"expires_at"`
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate 以預設 TTL 為 (productID, storeID) 簽發 token
func (s *TokenService) Generate(productID, storeID int) (string, error) {
	token, _, err := s.GenerateWithTTL(productID, storeID, s.ttl)
	return token, err
}

// GenerateWithTTL 簽發 token 並回傳到期時間；ttl<=0 使用預設值，超過 MaxTTL 時截斷
func (s *TokenService) GenerateWithTTL(productID, storeID int, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	ttl = min(ttl, MaxTTL)
	expiresAt := s.now().Add(ttl).Unix()
	data, err := json.Marshal(payload{
		ProductID: &productID,
		StoreID:   &storeID,
		ExpiresAt: &expiresAt,
	})
	if err != nil {
		return "", time.Time{}, err
	}

	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(data)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", time.Time{}, fmt.Errorf("preview: read nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), time.Unix(expiresAt, 0), nil
}

// IsValid 驗證 token 是否屬於 (productID, storeID) 且尚未過期。
// 任何失敗一律回傳 false，不透露原因；到期時間當下仍視為有效。
func (s *TokenService) IsValid(token string, productID, storeID int) bool {
	if token == "" {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	nonceSize := s.aead.NonceSize()
	if len(raw) < nonceSize+s.aead.Overhead() {
		return false
	}
	data, err := s.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return false
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return false
	}
	if p.ProductID == nil || *p.ProductID != productID {
		return false
	}
	if p.StoreID == nil || *p.StoreID != storeID {
		return false
	}
	if p.ExpiresAt == nil {
		return false
	}
	return *p.ExpiresAt >= s.now().Unix()
}
