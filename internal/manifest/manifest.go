// Upstream manifest cache orchestration per spec.md §4.7: keyed by
// (source URL, "master" or a variant index), fetched through a Fetcher,
// parsed once, and cached as the canonical immutable form. Master and
// Variant always return a deep clone — callers may mutate freely, the cache never
// observes it, per the deep-clone discipline in spec.md §3/§9.
package manifest

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ilijajolevski/ilinden/internal/cache"
	"github.com/ilijajolevski/ilinden/internal/fetch"
	"github.com/ilijajolevski/ilinden/pkg/hls"
)

const masterDiscriminator = "master"

// Store fetches, parses, and caches playlists by source URL and variant
// discriminator. It holds the one mapping from (source URL, variant) to
// parsed Playlist; per spec.md §9 it is kept behind this narrow interface
// rather than a shared mutable map handed out freely.
type Store struct {
	cache   cache.Cache
	fetcher fetch.Fetcher
}

// New builds a Store over the given cache and fetcher.
func New(c cache.Cache, f fetch.Fetcher) *Store {
	return &Store{cache: c, fetcher: f}
}

// Master returns the parsed master (or single-variant media) playlist at
// sourceURL, fetching and caching it on first request.
func (s *Store) Master(ctx context.Context, sourceURL string) (*hls.Playlist, error) {
	return s.getOrFetch(ctx, sourceURL, masterDiscriminator, sourceURL)
}

// Variant returns the parsed media playlist for the variant at index
// within the master at masterURL. The master is fetched (or served from
// cache) first to resolve the variant's URI; per spec.md §4.7 this is
// resolved relative to the master URL, then fetched and parsed with that
// resolved URL as the new source, which normalizes every segment and
// EXT-X-MAP URI to absolute form relative to the variant URL.
func (s *Store) Variant(ctx context.Context, masterURL string, index int) (*hls.Playlist, error) {
	master, err := s.Master(ctx, masterURL)
	if err != nil {
		return nil, err
	}

	target, err := hls.ResolveVariant(master, index)
	if err != nil {
		return nil, err
	}

	return s.getOrFetch(ctx, masterURL, strconv.Itoa(index), target.URI)
}

func (s *Store) getOrFetch(ctx context.Context, masterURL, discriminator, fetchURL string) (*hls.Playlist, error) {
	key := cache.HashKey(masterURL, discriminator)

	if cached, ok := s.cache.Get(key); ok {
		return cached.(*hls.Playlist).Clone(), nil
	}

	body, err := s.fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", fetchURL)
	}

	playlist, err := hls.Parse(body, fetchURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", fetchURL)
	}

	s.cache.Set(key, playlist, 0)
	return playlist.Clone(), nil
}
