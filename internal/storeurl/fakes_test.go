package storeurl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storelink/internal/core"
)

type fakeRegistry struct {
	stores       map[int]StoreDescriptor
	order        []int
	websites     map[int][]int
	groups       map[int]GroupDescriptor
	defaultStore int
	listErr      error
}

func newFakeRegistry(stores ...StoreDescriptor) *fakeRegistry {
	r := &fakeRegistry{
		stores:   map[int]StoreDescriptor{},
		websites: map[int][]int{},
		groups:   map[int]GroupDescriptor{},
	}
	for _, s := range stores {
		r.stores[s.ID] = s
		r.order = append(r.order, s.ID)
		r.websites[s.WebsiteID] = append(r.websites[s.WebsiteID], s.ID)
	}
	return r
}

func (r *fakeRegistry) GetStore(_ context.Context, id int) (*StoreDescriptor, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, ErrStoreNotFound
	}
	return &s, nil
}

func (r *fakeRegistry) GetStoreByCode(_ context.Context, code string) (*StoreDescriptor, error) {
	for _, id := range r.order {
		if r.stores[id].Code == code {
			s := r.stores[id]
			return &s, nil
		}
	}
	return nil, ErrStoreNotFound
}

func (r *fakeRegistry) ListStores(_ context.Context, includeAdmin bool) ([]StoreDescriptor, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]StoreDescriptor, 0, len(r.order))
	for _, id := range r.order {
		s := r.stores[id]
		if !includeAdmin && s.IsAdmin() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRegistry) GetWebsiteStores(_ context.Context, websiteID int) ([]StoreDescriptor, error) {
	ids, ok := r.websites[websiteID]
	if !ok {
		return nil, ErrWebsiteNotFound
	}
	out := make([]StoreDescriptor, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.stores[id])
	}
	return out, nil
}

func (r *fakeRegistry) GetDefaultStoreView(_ context.Context) (*StoreDescriptor, error) {
	s, ok := r.stores[r.defaultStore]
	if !ok {
		return nil, ErrStoreNotFound
	}
	return &s, nil
}

func (r *fakeRegistry) GetGroup(_ context.Context, id int) (*GroupDescriptor, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return &g, nil
}

type fakeRewrites struct {
	records []UrlRewrite
	err     error
}

func (f *fakeRewrites) FindAll(_ context.Context, filter RewriteFilter) ([]UrlRewrite, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []UrlRewrite
	for _, r := range f.records {
		if r.EntityID == filter.EntityID && r.EntityType == filter.EntityType &&
			r.StoreID == filter.StoreID && r.RedirectType == filter.RedirectType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRewrites) FindOne(ctx context.Context, filter RewriteFilter) (*UrlRewrite, error) {
	all, err := f.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrRewriteNotFound
	}
	return &all[0], nil
}

type attrKey struct {
	entityType core.EntityType
	entityID   int
	code       string
	storeID    int
}

type fakeAttributes struct {
	values map[attrKey]string
	err    error
}

func newFakeAttributes() *fakeAttributes {
	return &fakeAttributes{values: map[attrKey]string{}}
}

func (f *fakeAttributes) set(entityType core.EntityType, entityID int, code string, storeID int, value string) {
	f.values[attrKey{entityType, entityID, code, storeID}] = value
}

func (f *fakeAttributes) GetRawAttribute(_ context.Context, entityType core.EntityType, entityID int, code string, storeID int) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[attrKey{entityType, entityID, code, storeID}]
	return v, ok, nil
}

type fakeWebsites map[int][]int

func (f fakeWebsites) GetProductWebsiteIDs(_ context.Context, productID int) ([]int, error) {
	return f[productID], nil
}

type fakeTokens struct {
	calls []string
	err   error
}

func (f *fakeTokens) Generate(productID, storeID int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	token := fmt.Sprintf("tok-%d-%d", productID, storeID)
	f.calls = append(f.calls, token)
	return token, nil
}

type failingRoutes struct{}

func (failingRoutes) BuildURL(StoreDescriptor, string, map[string]string, bool) (string, error) {
	return "", ErrRouting
}

type fakePages struct {
	stores      map[int][]int
	identifiers map[int]map[int]string
}

func (f *fakePages) GetPageStoreIDs(_ context.Context, pageID int) ([]int, error) {
	ids, ok := f.stores[pageID]
	if !ok {
		return nil, ErrEntityNotFound
	}
	return ids, nil
}

func (f *fakePages) GetPageIdentifier(_ context.Context, pageID, storeID int) (string, error) {
	ids, ok := f.stores[pageID]
	if !ok {
		return "", ErrEntityNotFound
	}
	assigned := false
	for _, id := range ids {
		if id == storeID || id == core.DefaultStoreID {
			assigned = true
		}
	}
	if len(ids) > 0 && !assigned {
		return "", ErrEntityNotFound
	}
	return f.identifiers[pageID][storeID], nil
}

type fakeCategories map[int][]int

func (f fakeCategories) GetCategory(_ context.Context, id int) (*CategoryNode, error) {
	path, ok := f[id]
	if !ok {
		return nil, ErrEntityNotFound
	}
	return &CategoryNode{ID: id, PathIDs: path}, nil
}

var errBoom = errors.New("boom")

func store(id int, code, name string, websiteID, sortOrder int) StoreDescriptor {
	return StoreDescriptor{
		ID:        id,
		Code:      code,
		Name:      name,
		WebsiteID: websiteID,
		GroupID:   websiteID,
		IsActive:  true,
		SortOrder: sortOrder,
		BaseURL:   "https://" + strings.ReplaceAll(code, "_", "-") + ".example/",
	}
}
