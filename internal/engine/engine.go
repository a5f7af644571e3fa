// Engine orchestrates one request's control flow per spec.md §2:
// Fetcher → Parser → Cache → (Master Rewriter | VOD Fitter | Live
// Windower) → Ad Break Injector (optional) → Encoder. It is the one
// place that knows how the HTTP layer's query parameters map onto the
// transformation pipeline in pkg/hls.
package engine

import (
	"context"
	"fmt"

	"github.com/ilijajolevski/ilinden/internal/manifest"
	"github.com/ilijajolevski/ilinden/internal/registry"
	"github.com/ilijajolevski/ilinden/pkg/hls"
)

// InternalError wraps any unexpected condition that does not fit the
// engine's other typed errors, per spec.md §7.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "internal error: " + e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }

// Engine ties the stream registry and manifest store to the pkg/hls
// transformation stages.
type Engine struct {
	store    *manifest.Store
	registry *registry.Registry
}

// New builds an Engine.
func New(store *manifest.Store, reg *registry.Registry) *Engine {
	return &Engine{store: store, registry: reg}
}

// VODParams are the query parameters accepted by GET /vod.m3u8.
type VODParams struct {
	Stream   string
	Variant  *int     // nil → master rewrite
	Duration *float64 // nil → passthrough fit
	Ad       string   // empty → no ad breaks
}

// VOD resolves params.Stream, then either rewrites the master playlist to
// re-enter this service per variant, or fits and (optionally) ad-injects
// the requested variant's media playlist, and returns the encoded result.
func (e *Engine) VOD(ctx context.Context, params VODParams) (string, error) {
	sourceURL, err := e.registry.Resolve(params.Stream)
	if err != nil {
		return "", &InternalError{Err: err}
	}

	if params.Variant == nil {
		master, err := e.store.Master(ctx, sourceURL)
		if err != nil {
			return "", err
		}
		rewritten := hls.RewriteMaster(master, hls.RewriteParams{
			Mode:     "vod",
			Stream:   params.Stream,
			Duration: formatOptionalFloat(params.Duration),
			Ad:       params.Ad,
		})
		return hls.Encode(rewritten), nil
	}

	media, err := e.store.Variant(ctx, sourceURL, *params.Variant)
	if err != nil {
		return "", err
	}

	fitted := hls.FitVOD(media, params.Duration)

	if params.Ad != "" {
		cfg, err := hls.ParseAdConfig(params.Ad)
		if err != nil {
			return "", err
		}
		hls.InjectAds(fitted.Segments, 0, cfg)
	}

	return hls.Encode(fitted), nil
}

// LiveParams are the query parameters accepted by GET /live.m3u8.
type LiveParams struct {
	Stream     string
	Variant    *int // nil → master rewrite
	StartMs    int64
	NowMs      int64
	WindowSize int
	Ad         string
}

// Live resolves params.Stream, then either rewrites the master playlist,
// or windows and (optionally) ad-injects the requested variant's media
// playlist onto the simulated-live timeline, and returns the encoded
// result.
func (e *Engine) Live(ctx context.Context, params LiveParams) (string, error) {
	sourceURL, err := e.registry.Resolve(params.Stream)
	if err != nil {
		return "", &InternalError{Err: err}
	}

	if params.Variant == nil {
		master, err := e.store.Master(ctx, sourceURL)
		if err != nil {
			return "", err
		}
		rewritten := hls.RewriteMaster(master, hls.RewriteParams{
			Mode:   "live",
			Stream: params.Stream,
			Start:  fmt.Sprintf("%d", params.StartMs),
			Ad:     params.Ad,
		})
		return hls.Encode(rewritten), nil
	}

	media, err := e.store.Variant(ctx, sourceURL, *params.Variant)
	if err != nil {
		return "", err
	}

	windowed := hls.WindowLive(media, params.StartMs, params.NowMs, params.WindowSize)

	if params.Ad != "" {
		cfg, err := hls.ParseAdConfig(params.Ad)
		if err != nil {
			return "", err
		}
		startOffset := sourceTimelineOffset(media, windowed)
		hls.InjectAds(windowed.Segments, startOffset, cfg)
	}

	return hls.Encode(windowed), nil
}

// sourceTimelineOffset recovers the cumulative source-timeline time (spec
// §4.5) at which the live window's first segment starts: the sum of the
// durations of every segment that has ever been evicted from the window,
// walking the source in loop order. WindowLive reports how many
// evictions occurred via EXT-X-MEDIA-SEQUENCE; this walks the same
// index sequence the windower used to retire segments.
func sourceTimelineOffset(source, windowed *hls.Playlist) float64 {
	n := len(source.Segments)
	if n == 0 {
		return 0
	}
	mediaSeq := mustParseUint(windowed.FindTag(hls.TagMediaSequence))

	var offset float64
	for i := uint64(0); i < mediaSeq; i++ {
		offset += source.Segments[int(i)%n].Duration
	}
	return offset
}

func mustParseUint(t *hls.Tag) uint64 {
	if t == nil {
		return 0
	}
	var v uint64
	_, _ = fmt.Sscanf(t.Value, "%d", &v)
	return v
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}
