// Duplicate-fetch collapsing: spec.md §5 calls out single-flight per
// cache key as an optional refinement over "two requests miss
// concurrently and both fetch the same URL". golang.org/x/sync/singleflight
// is the ecosystem answer the retrieved pack already depends on
// transitively (ausocean-cloud); adopted directly here.
package fetch

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// SingleFlightFetcher wraps a Fetcher so that concurrent calls for the
// same URL share one in-flight request; the result (or error) is
// duplicated to every waiter.
type SingleFlightFetcher struct {
	inner Fetcher
	group singleflight.Group
}

// NewSingleFlightFetcher wraps inner with request de-duplication.
func NewSingleFlightFetcher(inner Fetcher) *SingleFlightFetcher {
	return &SingleFlightFetcher{inner: inner}
}

// Fetch de-duplicates concurrent calls for the same url.
func (f *SingleFlightFetcher) Fetch(ctx context.Context, url string) (string, error) {
	v, err, _ := f.group.Do(url, func() (interface{}, error) {
		return f.inner.Fetch(ctx, url)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
