package translator

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached remembers successful results of the wrapped translator.
// Failures and cancellations are never cached.
type Cached struct {
	wrapped Translator
	cache   *lru.Cache[string, string]
}

func NewCached(wrap Translator, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create translation cache: %w", err)
	}
	return &Cached{wrapped: wrap, cache: cache}, nil
}

func (c *Cached) Translate(ctx context.Context, req Request) (string, error) {
	key := req.Key()
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}
	out, err := c.wrapped.Translate(ctx, req)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, out)
	return out, nil
}

// Len returns the number of cached results.
func (c *Cached) Len() int {
	return c.cache.Len()
}
