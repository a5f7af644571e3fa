package manifest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilijajolevski/ilinden/internal/cache"
	"github.com/ilijajolevski/ilinden/pkg/hls"
)

const master = "#EXTM3U\n" +
	"#EXT-X-STREAM-INF:BANDWIDTH=5000000\n" +
	"high.m3u8\n" +
	"#EXT-X-STREAM-INF:BANDWIDTH=2500000\n" +
	"low.m3u8\n"

const media = "#EXTM3U\n#EXTINF:10.0,\ns0.ts\n#EXTINF:10.0,\ns1.ts\n"

type fakeFetcher struct {
	bodies map[string]string
	calls  map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{bodies: map[string]string{}, calls: map[string]int{}}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.calls[url]++
	body, ok := f.bodies[url]
	if !ok {
		return "", fmt.Errorf("no stub for %s", url)
	}
	return body, nil
}

func TestStoreMasterCachesAfterFirstFetch(t *testing.T) {
	f := newFakeFetcher()
	f.bodies["https://origin.example.com/master.m3u8"] = master

	s := New(cache.New(cache.Options{}), f)

	p1, err := s.Master(context.Background(), "https://origin.example.com/master.m3u8")
	require.NoError(t, err)
	assert.True(t, p1.IsMaster())

	p2, err := s.Master(context.Background(), "https://origin.example.com/master.m3u8")
	require.NoError(t, err)
	assert.True(t, p2.IsMaster())

	assert.Equal(t, 1, f.calls["https://origin.example.com/master.m3u8"])
}

func TestStoreMasterCloneIsIndependent(t *testing.T) {
	f := newFakeFetcher()
	f.bodies["https://origin.example.com/master.m3u8"] = master

	s := New(cache.New(cache.Options{}), f)

	p1, err := s.Master(context.Background(), "https://origin.example.com/master.m3u8")
	require.NoError(t, err)
	p1.Variants[0].Bandwidth = 1

	p2, err := s.Master(context.Background(), "https://origin.example.com/master.m3u8")
	require.NoError(t, err)
	assert.EqualValues(t, 5000000, p2.Variants[0].Bandwidth)
}

func TestStoreVariantResolvesThroughMaster(t *testing.T) {
	f := newFakeFetcher()
	f.bodies["https://origin.example.com/vod/master.m3u8"] = master
	f.bodies["https://origin.example.com/vod/high.m3u8"] = media

	s := New(cache.New(cache.Options{}), f)

	p, err := s.Variant(context.Background(), "https://origin.example.com/vod/master.m3u8", 0)
	require.NoError(t, err)
	require.Len(t, p.Segments, 2)
	assert.Equal(t, "https://origin.example.com/vod/s0.ts", p.Segments[0].URI)
}

func TestStoreVariantNormalizesMapURIToAbsolute(t *testing.T) {
	const mediaWithMap = "#EXTM3U\n" +
		"#EXT-X-MAP:URI=\"init.mp4\"\n" +
		"#EXTINF:10.0,\ns0.ts\n"

	f := newFakeFetcher()
	f.bodies["https://origin.example.com/vod/master.m3u8"] = master
	f.bodies["https://origin.example.com/vod/high.m3u8"] = mediaWithMap

	s := New(cache.New(cache.Options{}), f)

	p, err := s.Variant(context.Background(), "https://origin.example.com/vod/master.m3u8", 0)
	require.NoError(t, err)
	require.NotNil(t, p.Segments[0].Map)
	assert.Equal(t, "https://origin.example.com/vod/init.mp4", p.Segments[0].Map.URI)

	out := hls.Encode(p)
	assert.Contains(t, out, `#EXT-X-MAP:URI="https://origin.example.com/vod/init.mp4"`)
	assert.NotContains(t, out, `URI="init.mp4"`)
}

func TestStoreVariantOutOfRangeFails(t *testing.T) {
	f := newFakeFetcher()
	f.bodies["https://origin.example.com/vod/master.m3u8"] = master

	s := New(cache.New(cache.Options{}), f)

	_, err := s.Variant(context.Background(), "https://origin.example.com/vod/master.m3u8", 9)
	assert.Error(t, err)
}
