package service

import (
	"context"
	"sync"
)

// permCache memoizes resolved permission sets for the lifetime of one
// request, so a page that checks many permissions resolves each user's set
// with a single repository query.
type permCache struct {
	mu   sync.Mutex
	sets map[int64][]string
}

type permCacheCtxKey struct{}

// WithPermCache returns a child context carrying a fresh permission cache.
// The enrichment middleware installs one per request; contexts without a
// cache still work, every lookup just goes to the repository.
func WithPermCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, permCacheCtxKey{}, &permCache{sets: make(map[int64][]string)})
}

func permCacheFromContext(ctx context.Context) (*permCache, bool) {
	cache, ok := ctx.Value(permCacheCtxKey{}).(*permCache)
	return cache, ok
}
