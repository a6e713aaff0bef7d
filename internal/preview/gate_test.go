package preview

import (
	"context"
	"errors"
	"testing"
	"time"

	"storelink/internal/catalog"
	"storelink/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	product *catalog.Product
	err     error
}

func (s stubFetcher) FetchForRender(_ context.Context, _, _ int) (*catalog.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	copied := *s.product
	return &copied, nil
}

func disabledProduct() *catalog.Product {
	return &catalog.Product{
		ID:         42,
		Name:       "Red Shoes",
		Status:     core.ProductStatusDisabled,
		Visibility: core.VisibilityBoth,
		WebsiteIDs: []int{1},
	}
}

func TestGate_Apply(t *testing.T) {
	svc, err := NewTokenService("s3cret", WithClock(func() time.Time { return time.Unix(1_700_000_000, 0) }))
	require.NoError(t, err)
	token, err := svc.Generate(42, 2)
	require.NoError(t, err)

	gate := NewGate(svc, nil)

	tests := []struct {
		name     string
		ctx      context.Context
		product  *catalog.Product
		storeID  int
		elevated bool
	}{
		{
			name:     "valid token elevates disabled product",
			ctx:      WithRequest(context.Background(), Request{Flag: "1", Token: token}),
			product:  disabledProduct(),
			storeID:  2,
			elevated: true,
		},
		{
			name:    "no preview params",
			ctx:     context.Background(),
			product: disabledProduct(),
			storeID: 2,
		},
		{
			name:    "flag missing",
			ctx:     WithRequest(context.Background(), Request{Token: token}),
			product: disabledProduct(),
			storeID: 2,
		},
		{
			name:    "flag zero",
			ctx:     WithRequest(context.Background(), Request{Flag: "0", Token: token}),
			product: disabledProduct(),
			storeID: 2,
		},
		{
			name:    "token for another store",
			ctx:     WithRequest(context.Background(), Request{Flag: "1", Token: token}),
			product: disabledProduct(),
			storeID: 1,
		},
		{
			name:    "invalid token",
			ctx:     WithRequest(context.Background(), Request{Flag: "1", Token: "bogus"}),
			product: disabledProduct(),
			storeID: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, elevated := gate.Apply(tt.ctx, tt.product, tt.storeID)
			assert.Equal(t, tt.elevated, elevated)
			if tt.elevated {
				assert.Equal(t, core.ProductStatusEnabled, got.Status)
				assert.True(t, got.Previewed)
				assert.Equal(t, core.ProductStatusDisabled, tt.product.Status, "original product must not change")
			} else {
				assert.Same(t, tt.product, got)
			}
		})
	}
}

func TestGate_EnabledProductUntouched(t *testing.T) {
	svc, err := NewTokenService("s3cret")
	require.NoError(t, err)
	token, err := svc.Generate(42, 2)
	require.NoError(t, err)

	product := disabledProduct()
	product.Status = core.ProductStatusEnabled

	got, elevated := NewGate(svc, nil).Apply(WithRequest(context.Background(), Request{Flag: "1", Token: token}), product, 2)
	assert.False(t, elevated)
	assert.Same(t, product, got)
}

func TestGatedFetcher(t *testing.T) {
	svc, err := NewTokenService("s3cret")
	require.NoError(t, err)
	token, err := svc.Generate(42, 2)
	require.NoError(t, err)

	fetcher := NewGatedFetcher(stubFetcher{product: disabledProduct()}, NewGate(svc, nil))

	product, err := fetcher.FetchForRender(context.Background(), 42, 2)
	require.NoError(t, err)
	assert.False(t, product.CanShow(1))

	ctx := WithRequest(context.Background(), Request{Flag: "1", Token: token})
	product, err = fetcher.FetchForRender(ctx, 42, 2)
	require.NoError(t, err)
	assert.True(t, product.CanShow(1))
	assert.True(t, product.Previewed)

	notFound := NewGatedFetcher(stubFetcher{err: catalog.ErrProductNotFound}, NewGate(svc, nil))
	_, err = notFound.FetchForRender(ctx, 42, 2)
	assert.True(t, errors.Is(err, catalog.ErrProductNotFound))
}
