// HTTP handlers for the playlist-reshaping endpoints: /vod.m3u8,
// /live.m3u8, /health, and a debug /stats endpoint exposing cache and
// process statistics.
package api

import (
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/ilijajolevski/ilinden/internal/cache"
	"github.com/ilijajolevski/ilinden/internal/engine"
	"github.com/ilijajolevski/ilinden/internal/fetch"
	"github.com/ilijajolevski/ilinden/internal/telemetry"
	"github.com/ilijajolevski/ilinden/pkg/hls"
)

const defaultWindowSize = 3

// Gateway holds the dependencies the playlist handlers need.
type Gateway struct {
	Engine *engine.Engine
	Cache  cache.Cache
	Logger telemetry.Logger
}

// VODHandler serves GET /vod.m3u8.
func (g *Gateway) VODHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		params := engine.VODParams{
			Stream: q.Get("stream"),
			Ad:     q.Get("ad"),
		}

		if v := q.Get("variant"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				WriteEngineError(w, badRequest("invalid variant parameter"))
				return
			}
			params.Variant = &n
		}

		if d := q.Get("duration"); d != "" {
			f, err := strconv.ParseFloat(d, 64)
			if err != nil || f < 0 {
				WriteEngineError(w, badRequest("invalid duration parameter"))
				return
			}
			params.Duration = &f
		}

		body, err := g.Engine.VOD(r.Context(), params)
		if err != nil {
			g.logError(r, err)
			WriteEngineError(w, err)
			return
		}
		WritePlaylist(w, body)
	}
}

// LiveHandler serves GET /live.m3u8.
func (g *Gateway) LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		now := time.Now().UnixMilli()

		params := engine.LiveParams{
			Stream:     q.Get("stream"),
			StartMs:    now,
			NowMs:      now,
			WindowSize: defaultWindowSize,
			Ad:         q.Get("ad"),
		}

		if v := q.Get("variant"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				WriteEngineError(w, badRequest("invalid variant parameter"))
				return
			}
			params.Variant = &n
		}

		if s := q.Get("start"); s != "" {
			ms, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				WriteEngineError(w, badRequest("invalid start parameter"))
				return
			}
			params.StartMs = ms
		}

		// `now` is exposed only for deterministic testing, per spec.md §6.
		if n := q.Get("now"); n != "" {
			ms, err := strconv.ParseInt(n, 10, 64)
			if err != nil {
				WriteEngineError(w, badRequest("invalid now parameter"))
				return
			}
			params.NowMs = ms
		}

		if ws := q.Get("windowSize"); ws != "" {
			n, err := strconv.Atoi(ws)
			if err != nil || n < 1 {
				WriteEngineError(w, badRequest("invalid windowSize parameter"))
				return
			}
			params.WindowSize = n
		}

		body, err := g.Engine.Live(r.Context(), params)
		if err != nil {
			g.logError(r, err)
			WriteEngineError(w, err)
			return
		}
		WritePlaylist(w, body)
	}
}

// HealthHandler serves GET /health: 200 OK with an empty body.
func (g *Gateway) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// StatsHandler serves the debug /stats endpoint: cache hit/miss counters
// and basic process info, as JSON.
func (g *Gateway) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := map[string]interface{}{
			"cache":      g.Cache.Stats(),
			"goroutines": runtime.NumGoroutine(),
			"go_version": runtime.Version(),
			"timestamp":  time.Now().Unix(),
		}
		WriteJSON(w, http.StatusOK, stats)
	}
}

// logError logs the request failure with a category field derived from
// the engine's typed error taxonomy (spec.md §7) — every category still
// maps to the same 500 response, but the category makes the logs
// searchable by failure kind.
func (g *Gateway) logError(r *http.Request, err error) {
	if g.Logger == nil {
		return
	}
	g.Logger.Error("request failed",
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"category", errorCategory(err),
		"error", err.Error(),
	)
}

func errorCategory(err error) string {
	var parseErr *hls.ParseError
	var variantErr *hls.VariantIndexError
	var adErr *hls.AdConfigError
	var upstreamErr *fetch.UpstreamError
	var internalErr *engine.InternalError
	var reqErr *requestError

	switch {
	case errors.As(err, &reqErr):
		return "bad_request"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &variantErr):
		return "variant_index"
	case errors.As(err, &adErr):
		return "ad_config"
	case errors.As(err, &upstreamErr):
		return "upstream"
	case errors.As(err, &internalErr):
		return "internal"
	default:
		return "unknown"
	}
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error { return &requestError{msg: msg} }
