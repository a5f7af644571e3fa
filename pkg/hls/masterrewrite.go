// Master Rewriter: replaces variant and alternate-rendition URIs in a
// master playlist with self-referential gateway URLs, so a client that
// follows them lands back on this service in the same mode.
package hls

import (
	"net/url"
	"strconv"
)

// RewriteParams carries the request parameters that must be propagated
// onto every rewritten variant/rendition URL.
type RewriteParams struct {
	Mode     string // "vod" or "live"
	Stream   string
	Start    string // live only
	Duration string // vod only
	Ad       string
}

// RewriteMaster returns a clone of src with every Variant URI and every
// EXT-X-MEDIA URI attribute replaced by a gateway URL carrying the
// originating request's parameters plus a variant index. Indices are
// assigned by walking variants first, then EXT-X-MEDIA tags, in order.
func RewriteMaster(src *Playlist, params RewriteParams) *Playlist {
	out := src.Clone()
	index := 0

	for _, v := range out.Variants {
		v.URI = buildVariantURL(params, index)
		index++
	}

	for _, t := range out.Tags {
		if t.Name != TagMedia {
			continue
		}
		if uri, ok := t.Attr(AttrURI); ok && uri != "" {
			t.SetAttr(AttrURI, buildVariantURL(params, index))
			index++
		}
	}

	return out
}

func buildVariantURL(p RewriteParams, index int) string {
	q := url.Values{}
	if p.Stream != "" {
		q.Set("stream", p.Stream)
	}
	q.Set("variant", strconv.Itoa(index))

	switch p.Mode {
	case "live":
		if p.Start != "" {
			q.Set("start", p.Start)
		}
	default:
		if p.Duration != "" {
			q.Set("duration", p.Duration)
		}
	}

	if p.Ad != "" {
		q.Set("ad", p.Ad)
	}

	return "/" + p.Mode + ".m3u8?" + q.Encode()
}

// VariantTarget identifies the URI a variant-index request should fetch,
// resolved against the master's source URL. It does not record whether
// the URI came from a variant or from an EXT-X-MEDIA rendition.
type VariantTarget struct {
	URI string
}

// ResolveVariant walks variants then EXT-X-MEDIA tags, in the same order
// RewriteMaster assigns indices, and returns the URI at the given index.
func ResolveVariant(p *Playlist, index int) (*VariantTarget, error) {
	if index < 0 {
		return nil, &VariantIndexError{Index: index, Count: countVariantTargets(p)}
	}

	if index < len(p.Variants) {
		return &VariantTarget{URI: resolveURI(p.SourceURL, p.Variants[index].URI)}, nil
	}

	remaining := index - len(p.Variants)
	for _, t := range p.Tags {
		if t.Name != TagMedia {
			continue
		}
		uri, ok := t.Attr(AttrURI)
		if !ok || uri == "" {
			continue
		}
		if remaining == 0 {
			return &VariantTarget{URI: resolveURI(p.SourceURL, uri)}, nil
		}
		remaining--
	}

	return nil, &VariantIndexError{Index: index, Count: countVariantTargets(p)}
}

func countVariantTargets(p *Playlist) int {
	count := len(p.Variants)
	for _, t := range p.Tags {
		if t.Name != TagMedia {
			continue
		}
		if uri, ok := t.Attr(AttrURI); ok && uri != "" {
			count++
		}
	}
	return count
}
