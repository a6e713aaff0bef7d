package storeurl

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// DefaultRouteBuilder 以 "<base>/<route>/<key>/<value>" 組出通用路由網址
type DefaultRouteBuilder struct {
	// SessionIDParam 非空且 SessionID 有值時，noSessionID=false 會附加 session 參數
	SessionIDParam string
	SessionID      func() string
}

func NewDefaultRouteBuilder(sessionIDParam string) *DefaultRouteBuilder {
	return &DefaultRouteBuilder{SessionIDParam: sessionIDParam}
}

func (b *DefaultRouteBuilder) BuildURL(store StoreDescriptor, route string, params map[string]string, noSessionID bool) (string, error) {
	route = strings.Trim(route, "/")
	if route == "" {
		return "", fmt.Errorf("%w: empty route", ErrRouting)
	}
	if !IsAbsoluteURL(store.BaseURL) {
		return "", fmt.Errorf("%w: store %d has no valid base url", ErrRouting, store.ID)
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(store.BaseURL, "/"))
	sb.WriteString("/")
	sb.WriteString(route)

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(key))
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(params[key]))
	}

	if !noSessionID && b.SessionIDParam != "" && b.SessionID != nil {
		if sid := b.SessionID(); sid != "" {
			sb.WriteString("?")
			sb.WriteString(url.QueryEscape(b.SessionIDParam))
			sb.WriteString("=")
			sb.WriteString(url.QueryEscape(sid))
		}
	}
	return sb.String(), nil
}
