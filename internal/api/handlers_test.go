package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilijajolevski/ilinden/internal/cache"
	"github.com/ilijajolevski/ilinden/internal/engine"
	"github.com/ilijajolevski/ilinden/internal/manifest"
	"github.com/ilijajolevski/ilinden/internal/registry"
)

type fakeFetcher struct{ bodies map[string]string }

func (f *fakeFetcher) Fetch(ctx context.Context, u string) (string, error) {
	return f.bodies[u], nil
}

func newTestGateway() *Gateway {
	bodies := map[string]string{
		"https://origin.example.com/master.m3u8": "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1000000\nmedia.m3u8\n",
		"https://origin.example.com/media.m3u8":  "#EXTM3U\n#EXTINF:10.0,\ns0.ts\n#EXTINF:10.0,\ns1.ts\n",
	}
	c := cache.New(cache.Options{})
	store := manifest.New(c, &fakeFetcher{bodies: bodies})
	reg := registry.New("default", map[string]string{"default": "https://origin.example.com/master.m3u8"})
	return &Gateway{Engine: engine.New(store, reg), Cache: c}
}

func TestHealthHandler(t *testing.T) {
	g := newTestGateway()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	g.HealthHandler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestVODHandlerSetsPlaylistHeaders(t *testing.T) {
	g := newTestGateway()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vod.m3u8?variant=0", nil)

	g.VODHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.apple.mpegurl", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), "#EXT-X-ENDLIST")
}

func TestVODHandlerInvalidVariantIsBadRequest(t *testing.T) {
	g := newTestGateway()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vod.m3u8?variant=abc", nil)

	g.VODHandler()(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid variant")
}

func TestLiveHandlerDefaultsWindowSize(t *testing.T) {
	g := newTestGateway()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/live.m3u8?variant=0&start=1000&now=1000", nil)

	g.LiveHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "#EXT-X-MEDIA-SEQUENCE:0")
}
