// Package cache provides the lookup cache used by the county-lookup
// endpoint: a small cache-aside layer with an in-memory default and an
// optional Redis backend for multi-instance deployments.
package cache

import "context"

// Cache is a string key/value cache. Get reports a miss with false;
// backends treat lookup errors as misses so a cache outage never fails a
// request.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
