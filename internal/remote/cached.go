package remote

import (
	"context"

	json "github.com/goccy/go-json"

	"cloudtidy/internal/models"
	"cloudtidy/internal/providers"
)

const listingCacheKey = "node_listing"

// CachedClient keeps the serialized node listing in the byte cache so that
// the analyze, delete and rename stages of one run share a single snapshot
// fetch. Mutations pass through untouched — the run's plan is built from
// the snapshot, exactly like a fresh per-stage fetch in a quiet account.
type CachedClient struct {
	inner *Client
	cache providers.CacheProviderInterface
}

func NewCachedClient(inner *Client, cache providers.CacheProviderInterface) Remote {
	return &CachedClient{inner: inner, cache: cache}
}

func (c *CachedClient) Login(ctx context.Context, account, secret string) error {
	return c.inner.Login(ctx, account, secret)
}

func (c *CachedClient) ListNodes(ctx context.Context) (map[string]models.Node, error) {
	if data, ok := c.cache.Get(listingCacheKey); ok {
		var listing map[string]models.Node
		if err := json.Unmarshal(data, &listing); err == nil {
			return listing, nil
		}
	}

	listing, err := c.inner.ListNodes(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(listing); err == nil {
		c.cache.Set(listingCacheKey, data)
	}
	return listing, nil
}

func (c *CachedClient) Delete(ctx context.Context, nodeID string) error {
	return c.inner.Delete(ctx, nodeID)
}

func (c *CachedClient) Rename(ctx context.Context, nodeID, newName string) error {
	return c.inner.Rename(ctx, nodeID, newName)
}
