package hls

import (
	"math"
	"net/url"
	"strconv"
)

// resolveURI resolves a possibly-relative URI against a source URL. The
// parser does not apply it to variant URIs; ResolveVariant resolves those
// only when a variant is fetched, and the master rewriter replaces them
// with self-referential gateway URLs.
func resolveURI(sourceURL, uri string) string {
	if sourceURL == "" || uri == "" {
		return uri
	}
	ref, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	if ref.IsAbs() {
		return uri
	}
	base, err := url.Parse(sourceURL)
	if err != nil {
		return uri
	}
	return base.ResolveReference(ref).String()
}

// ceilDuration rounds a duration up to the nearest whole second, matching
// the EXT-X-TARGETDURATION convention.
func ceilDuration(d float64) int {
	return int(math.Ceil(d))
}

// formatSeconds renders a duration as an integer when it has no fractional
// part, and with its natural precision otherwise — used for CUE-OUT
// durations, which player implementations expect unquoted and unpadded.
func formatSeconds(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func maxSegmentDuration(segs []*Segment) float64 {
	var max float64
	for _, s := range segs {
		if s.Duration > max {
			max = s.Duration
		}
	}
	return max
}
