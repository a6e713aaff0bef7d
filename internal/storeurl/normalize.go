package storeurl

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"storelink/internal/core"
)

// IsAbsoluteURL 具有 scheme 與 host 的完整網址
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// NormalizeURL 將 request path 轉成絕對網址；已是完整網址則原樣回傳
func NormalizeURL(path, baseURL string) string {
	if IsAbsoluteURL(path) {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// pickRewrite 優先回傳沒有分類 metadata 的紀錄，否則回傳第一筆
func pickRewrite(rewrites []UrlRewrite) (UrlRewrite, bool) {
	if len(rewrites) == 0 {
		return UrlRewrite{}, false
	}
	for _, rewrite := range rewrites {
		if rewrite.CategoryID == 0 {
			return rewrite, true
		}
	}
	return rewrites[0], true
}

// SortStoreURLs 依 SortOrder 遞增，相同時依 StoreName 位元組順序
func SortStoreURLs(urls []StoreURL) {
	slices.SortStableFunc(urls, func(a, b StoreURL) int {
		if a.SortOrder != b.SortOrder {
			if a.SortOrder < b.SortOrder {
				return -1
			}
			return 1
		}
		return strings.Compare(a.StoreName, b.StoreName)
	})
}

// rawAttributeWithDefault 先讀商店值，沒有則讀預設 scope (store 0)
func rawAttributeWithDefault(ctx context.Context, reader AttributeReader, entityType core.EntityType, entityID int, code string, storeID int) (string, bool, error) {
	value, ok, err := reader.GetRawAttribute(ctx, entityType, entityID, code, storeID)
	if err != nil || ok || storeID == core.DefaultStoreID {
		return value, ok, err
	}
	return reader.GetRawAttribute(ctx, entityType, entityID, code, core.DefaultStoreID)
}

// uniqueIDs 去除重複並保留第一次出現的順序
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
