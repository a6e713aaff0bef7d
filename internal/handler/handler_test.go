package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storelink/config"
	"storelink/internal/core"
	"storelink/internal/dto"
	"storelink/internal/middleware"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/service"
	"storelink/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

func newEngine() *gin.Engine {
	logger, trace, metric, conf := zap.NewNop(), &telemetry.Trace{}, &telemetry.Metric{}, &config.Configuration{}
	engine := gin.New()
	engine.Use(middleware.NewRecovery(logger, trace, metric, conf, nil).ErrorHandler())
	engine.Use(middleware.NewResponse(logger, trace, metric, conf, nil).FormatHandler())
	return engine
}

func serve(t *testing.T, engine *gin.Engine, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

type fakeStoreURLService struct {
	lastType  core.EntityType
	lastID    int
	lastStore string
	urls      []dto.StoreURLDto
	err       error
}

func (f *fakeStoreURLService) ListURLs(_ context.Context, entityType core.EntityType, entityID int) ([]dto.StoreURLDto, error) {
	f.lastType, f.lastID = entityType, entityID
	return f.urls, f.err
}

func (f *fakeStoreURLService) CategoryURL(_ context.Context, categoryID int, store string) (*dto.StoreURLDto, error) {
	f.lastType, f.lastID, f.lastStore = core.EntityTypeCategory, categoryID, store
	if f.err != nil {
		return nil, f.err
	}
	return &f.urls[0], nil
}

func (f *fakeStoreURLService) ProductViewActions(_ context.Context, req *dto.ProductViewActionsDto) ([]dto.ViewActionRowDto, error) {
	rows := make([]dto.ViewActionRowDto, 0, len(req.Items))
	for i, item := range req.Items {
		rows = append(rows, dto.ViewActionRowDto{EntityID: item.EntityID, RowIndex: i, Column: req.Column})
	}
	return rows, f.err
}

func storeURLEngine(fake *fakeStoreURLService) *gin.Engine {
	h := &StoreURLHandler{trace: &telemetry.Trace{}, storeURLService: fake}
	engine := newEngine()
	engine.GET("/admin/products/:productID/store-urls", h.ProductURLs)
	engine.GET("/admin/cms-pages/:pageID/store-urls", h.CmsPageURLs)
	engine.GET("/admin/categories/:categoryID/store-url", h.CategoryURL)
	engine.POST("/admin/products/view-actions", h.ViewActions)
	return engine
}

func TestStoreURLHandlerProductURLs(t *testing.T) {
	fake := &fakeStoreURLService{urls: []dto.StoreURLDto{{StoreID: 1, StoreName: "Default Store View", URL: "https://shop.example/red-shoes.html"}}}
	w, env := serve(t, storeURLEngine(fake), http.MethodGet, "/admin/products/42/store-urls", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, core.EntityTypeProduct, fake.lastType)
	assert.Equal(t, 42, fake.lastID)

	var urls []dto.StoreURLDto
	require.NoError(t, json.Unmarshal(env.Data, &urls))
	require.Len(t, urls, 1)
	assert.Equal(t, "https://shop.example/red-shoes.html", urls[0].URL)
}

func TestStoreURLHandlerRejectsBadIDs(t *testing.T) {
	engine := storeURLEngine(&fakeStoreURLService{})
	for _, target := range []string{
		"/admin/products/abc/store-urls",
		"/admin/products/0/store-urls",
		"/admin/cms-pages/-3/store-urls",
		"/admin/categories/x/store-url",
	} {
		w, env := serve(t, engine, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.NotZero(t, env.Code, target)
	}
}

func TestStoreURLHandlerCmsAndCategory(t *testing.T) {
	fake := &fakeStoreURLService{urls: []dto.StoreURLDto{{StoreID: 2, URL: "https://shop.example/fr/about-us"}}}
	engine := storeURLEngine(fake)

	w, _ := serve(t, engine, http.MethodGet, "/admin/cms-pages/5/store-urls", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, core.EntityTypeCmsPage, fake.lastType)
	assert.Equal(t, 5, fake.lastID)

	w, env := serve(t, engine, http.MethodGet, "/admin/categories/10/store-url?store=french", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "french", fake.lastStore)
	var url dto.StoreURLDto
	require.NoError(t, json.Unmarshal(env.Data, &url))
	assert.Equal(t, 2, url.StoreID)
}

func TestStoreURLHandlerPropagatesServiceError(t *testing.T) {
	fake := &fakeStoreURLService{err: cErr.NotFound("no store url")}
	w, env := serve(t, storeURLEngine(fake), http.MethodGet, "/admin/categories/10/store-url", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, cErr.NOT_FOUND, env.Code)
}

func TestStoreURLHandlerViewActions(t *testing.T) {
	engine := storeURLEngine(&fakeStoreURLService{})

	body := dto.ProductViewActionsDto{Items: []dto.ViewActionItemDto{{EntityID: 42, Name: "Red Shoes"}}, Column: "actions"}
	w, env := serve(t, engine, http.MethodPost, "/admin/products/view-actions", body)
	assert.Equal(t, http.StatusOK, w.Code)
	var rows []dto.ViewActionRowDto
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 42, rows[0].EntityID)

	w, _ = serve(t, engine, http.MethodPost, "/admin/products/view-actions", map[string]any{"column": "actions"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type fakePreviewService struct {
	subject string
	source  string
	err     error
	valid   bool
}

func (f *fakePreviewService) Issue(_ context.Context, req *dto.IssuePreviewTokenDto, subject, source string) (*dto.PreviewTokenResponseDto, error) {
	f.subject, f.source = subject, source
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PreviewTokenResponseDto{
		Token:     "tok",
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		ExpiresAt: time.Unix(1_700_003_600, 0).UTC(),
	}, nil
}

func (f *fakePreviewService) Verify(context.Context, *dto.VerifyPreviewTokenDto) *dto.VerifyPreviewTokenResponseDto {
	return &dto.VerifyPreviewTokenResponseDto{Valid: f.valid}
}

func previewEngine(fake *fakePreviewService) *gin.Engine {
	h := &PreviewHandler{trace: &telemetry.Trace{}, previewService: fake}
	engine := newEngine()
	withClaims := func(c *gin.Context) {
		c.Set(core.ContextAdminClaimsKey, &core.AdminClaims{Username: "alice"})
		c.Next()
	}
	engine.POST("/admin/preview-tokens", withClaims, h.Issue)
	engine.POST("/admin/preview-tokens/verify", withClaims, h.Verify)
	return engine
}

func TestPreviewHandlerIssue(t *testing.T) {
	fake := &fakePreviewService{}
	w, env := serve(t, previewEngine(fake), http.MethodPost, "/admin/preview-tokens", dto.IssuePreviewTokenDto{ProductID: 42, StoreID: 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice", fake.subject)
	assert.Equal(t, service.PreviewSourceAdminAPI, fake.source)
	var res dto.PreviewTokenResponseDto
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, 42, res.ProductID)
}

func TestPreviewHandlerIssueValidation(t *testing.T) {
	fake := &fakePreviewService{}
	engine := previewEngine(fake)

	for _, body := range []any{
		map[string]any{"storeId": 1},
		map[string]any{"productId": 42},
		map[string]any{"productId": 42, "storeId": 1, "ttlSeconds": -5},
		map[string]any{"productId": 42, "storeId": 1, "ttlSeconds": 86401},
		map[string]any{"productId": 42, "storeId": 1, "ttlSeconds": 18446744074},
	} {
		w, _ := serve(t, engine, http.MethodPost, "/admin/preview-tokens", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Empty(t, fake.subject)
}

func TestPreviewHandlerIssueServiceError(t *testing.T) {
	fake := &fakePreviewService{err: cErr.PreviewUnavailable("store is not an active storefront")}
	w, env := serve(t, previewEngine(fake), http.MethodPost, "/admin/preview-tokens", dto.IssuePreviewTokenDto{ProductID: 42, StoreID: 3})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, cErr.PREVIEW_UNAVAILABLE, env.Code)
}

func TestPreviewHandlerVerify(t *testing.T) {
	fake := &fakePreviewService{valid: true}
	w, env := serve(t, previewEngine(fake), http.MethodPost, "/admin/preview-tokens/verify", dto.VerifyPreviewTokenDto{Token: "tok", ProductID: 42, StoreID: 1})

	assert.Equal(t, http.StatusOK, w.Code)
	var res dto.VerifyPreviewTokenResponseDto
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Valid)
}

type fakeProductViewService struct {
	storeCode string
	productID int
	product   *dto.StorefrontProductDto
	err       error
}

func (f *fakeProductViewService) View(_ context.Context, storeCode string, productID int) (*dto.StorefrontProductDto, error) {
	f.storeCode, f.productID = storeCode, productID
	return f.product, f.err
}

func TestStorefrontHandlerProductView(t *testing.T) {
	fake := &fakeProductViewService{product: &dto.StorefrontProductDto{ID: 42, Name: "Red Shoes", StoreCode: "default"}}
	h := &StorefrontHandler{trace: &telemetry.Trace{}, productViewService: fake}
	engine := newEngine()
	engine.GET("/storefront/:storeCode/products/:productID", h.ProductView)

	w, env := serve(t, engine, http.MethodGet, "/storefront/default/products/42", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "default", fake.storeCode)
	assert.Equal(t, 42, fake.productID)
	var product dto.StorefrontProductDto
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "Red Shoes", product.Name)

	fake.err = cErr.NotFound("product not found")
	w, env = serve(t, engine, http.MethodGet, "/storefront/default/products/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, cErr.NOT_FOUND, env.Code)
}

func TestHealthHandler(t *testing.T) {
	status := service.NewHealthService()
	conf := &config.Configuration{}
	conf.App.Name, conf.App.Version, conf.App.Env = "storelink", "1.2.3", "test"
	h := NewHealthHandler(status, conf)

	engine := gin.New()
	engine.GET("/healthz", h.Liveness)
	engine.GET("/readyz", h.Readiness)
	engine.GET("/version", h.Version)

	perform := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}
	assert.Equal(t, http.StatusOK, perform("/healthz").Code)
	assert.Equal(t, http.StatusServiceUnavailable, perform("/readyz").Code)
	status.SetReady(true)
	assert.Equal(t, http.StatusOK, perform("/readyz").Code)

	var version dto.VersionDto
	require.NoError(t, json.Unmarshal(perform("/version").Body.Bytes(), &version))
	assert.Equal(t, dto.VersionDto{Name: "storelink", Version: "1.2.3", Env: "test"}, version)
}
