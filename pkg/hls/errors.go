package hls

import "fmt"

// ParseError signals that a playlist body could not be parsed: a missing
// #EXTM3U sentinel or a structural violation such as a URI line with no
// preceding EXTINF/EXT-X-STREAM-INF.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
	}
	return "parse error: " + e.Msg
}

// VariantIndexError signals a requested variant index outside the range
// of a master playlist's variants plus its EXT-X-MEDIA renditions.
type VariantIndexError struct {
	Index int
	Count int
}

func (e *VariantIndexError) Error() string {
	return fmt.Sprintf("variant index %d out of range (have %d)", e.Index, e.Count)
}

// AdConfigError signals a malformed `ad` query parameter: unknown mode,
// missing duration, or an unparsable timestamp.
type AdConfigError struct {
	Msg string
}

func (e *AdConfigError) Error() string {
	return "invalid ad config: " + e.Msg
}
