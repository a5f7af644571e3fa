// Playlist parsing: converts a text HLS playlist into the Playlist model.
// Lossy only for tags outside the documented whitelist in tags.go — every
// tag's raw source line is preserved so unmodified re-emission is possible
// even for tags this package never interprets.
package hls

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var attrHeuristic = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*=`)

// Parse converts a text playlist into a Playlist. It fails with a
// *ParseError when the first non-empty line is not #EXTM3U, or when a URI
// line appears with no open variant or segment context.
func Parse(text, sourceURL string) (*Playlist, error) {
	p := New(sourceURL)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	sawHeader := false
	var pending []*Tag // tags buffered since the last URI line closed a context

	for scanner.Scan() {
		rawLine := scanner.Text()
		line := strings.TrimRight(rawLine, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNum++

		if !sawHeader {
			if line != TagExtM3U {
				return nil, &ParseError{Line: lineNum, Msg: "missing #EXTM3U header"}
			}
			sawHeader = true
			continue
		}

		if strings.HasPrefix(line, "#") {
			tag := parseTagLine(line)
			switch tag.Name {
			case TagVersion:
				if v, err := strconv.Atoi(tag.Value); err == nil {
					p.Version = &v
				}
				p.Tags = append(p.Tags, tag)
			case TagStreamInf:
				p.Kind = KindMaster
				pending = append(pending, tag)
			case TagInf:
				pending = append(pending, tag)
			case TagMedia:
				p.Kind = KindMaster
				p.Tags = append(p.Tags, tag)
			case TagIndependentSegments:
				p.Tags = append(p.Tags, tag)
			default:
				if perSegmentTags[tag.Name] {
					pending = append(pending, tag)
				} else if len(pending) > 0 {
					// A stray tag inside an open segment/variant context
					// decorates that context rather than the playlist.
					pending = append(pending, tag)
				} else {
					p.Tags = append(p.Tags, tag)
				}
			}
			continue
		}

		// URI line: closes whichever context (variant or segment) was open.
		uri := line
		extinf := findTag(pending, TagInf)
		streamInf := findTag(pending, TagStreamInf)
		switch {
		case streamInf != nil:
			variant, err := buildVariant(pending, uri)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: err.Error()}
			}
			p.Kind = KindMaster
			p.Variants = append(p.Variants, variant)
		case extinf != nil:
			seg, err := buildSegment(pending, uri, sourceURL)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: err.Error()}
			}
			p.Kind = KindMedia
			p.Segments = append(p.Segments, seg)
		default:
			return nil, &ParseError{Line: lineNum, Msg: "URI line with no open EXTINF or EXT-X-STREAM-INF context"}
		}
		pending = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	if !sawHeader {
		return nil, &ParseError{Msg: "missing #EXTM3U header"}
	}

	return p, nil
}

func findTag(tags []*Tag, name string) *Tag {
	for _, t := range tags {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// parseTagLine splits a raw tag line into name, and either a scalar value
// or an attribute list, per the heuristic in spec §4.1: a tail that looks
// like KEY=VALUE pairs is parsed as attributes, else stored as a scalar.
func parseTagLine(line string) *Tag {
	t := &Tag{Raw: line}
	colon := strings.Index(line, ":")
	if colon == -1 {
		t.Name = line
		return t
	}
	t.Name = line[:colon]
	tail := line[colon+1:]
	if attrHeuristic.MatchString(tail) {
		t.Attrs = parseAttrs(tail)
	} else {
		t.Value = tail
	}
	return t
}

// parseAttrs splits a comma-separated KEY=VALUE list, respecting double
// quotes (commas inside quotes are literal) and skipping whitespace after
// a separating comma.
func parseAttrs(s string) []Attr {
	var attrs []Attr
	var key strings.Builder
	var val strings.Builder
	inQuotes := false
	inValue := false

	flush := func() {
		if key.Len() == 0 {
			return
		}
		v := val.String()
		if strings.HasPrefix(v, "\"") && strings.HasSuffix(v, "\"") && len(v) >= 2 {
			v = v[1 : len(v)-1]
		}
		attrs = append(attrs, Attr{Key: strings.TrimSpace(key.String()), Value: v})
		key.Reset()
		val.Reset()
		inValue = false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			val.WriteByte(c)
		case c == '=' && !inValue && !inQuotes:
			inValue = true
		case c == ',' && !inQuotes:
			flush()
			// skip whitespace after the comma
			for i+1 < len(s) && s[i+1] == ' ' {
				i++
			}
		default:
			if inValue {
				val.WriteByte(c)
			} else {
				key.WriteByte(c)
			}
		}
	}
	flush()
	return attrs
}

func buildVariant(pending []*Tag, uri string) (*Variant, error) {
	streamInf := findTag(pending, TagStreamInf)
	v := &Variant{URI: uri, Tags: append([]*Tag(nil), pending...)}
	if bw, ok := streamInf.Attr(AttrBandwidth); ok {
		if n, err := strconv.ParseInt(bw, 10, 64); err == nil {
			v.Bandwidth = n
		}
	}
	if bw, ok := streamInf.Attr(AttrAverageBandwidth); ok {
		if n, err := strconv.ParseInt(bw, 10, 64); err == nil {
			v.AverageBandwidth = n
		}
	}
	if c, ok := streamInf.Attr(AttrCodecs); ok {
		v.Codecs = c
	}
	if r, ok := streamInf.Attr(AttrResolution); ok {
		v.Resolution = r
	}
	if fr, ok := streamInf.Attr(AttrFrameRate); ok {
		if f, err := strconv.ParseFloat(fr, 64); err == nil {
			v.FrameRate = f
		}
	}
	if a, ok := streamInf.Attr(AttrAudio); ok {
		v.AudioGroup = a
	}
	if vid, ok := streamInf.Attr(AttrVideo); ok {
		v.VideoGroup = vid
	}
	if s, ok := streamInf.Attr(AttrSubtitles); ok {
		v.SubtitlesGroup = s
	}
	if cc, ok := streamInf.Attr(AttrClosedCaptions); ok {
		v.ClosedCaptions = cc
	}
	return v, nil
}

func buildSegment(pending []*Tag, uri, sourceURL string) (*Segment, error) {
	extinf := findTag(pending, TagInf)
	duration, title := parseInfValue(extinf.Value)

	seg := &Segment{
		Duration: duration,
		Title:    title,
		URI:      resolveURI(sourceURL, uri),
		Tags:     append([]*Tag(nil), pending...),
	}

	for _, t := range pending {
		switch t.Name {
		case TagDiscontinuity:
			seg.Discontinuity = true
		case TagByteRange:
			seg.ByteRange = t.Value
		case TagProgramDateTime:
			seg.ProgramDateTime = t.Value
		case TagDateRange:
			seg.DateRange = t.Value
		case TagKey:
			seg.Key = &Key{Attrs: append([]Attr(nil), t.Attrs...)}
			if u, ok := t.Attr(AttrURI); ok {
				seg.Key.URI = resolveURI(sourceURL, u)
			}
		case TagMap:
			if u, ok := t.Attr(AttrURI); ok {
				// Mutate the tag itself so its regenerated Raw line (the
				// one the encoder emits) carries the resolved URI, not a
				// disconnected copy.
				t.SetAttr(AttrURI, resolveURI(sourceURL, u))
			}
			m := &Map{Attrs: append([]Attr(nil), t.Attrs...)}
			if u, ok := t.Attr(AttrURI); ok {
				m.URI = u
			}
			seg.Map = m
		}
	}

	return seg, nil
}

func parseInfValue(s string) (float64, string) {
	parts := strings.SplitN(s, ",", 2)
	duration, _ := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	var title string
	if len(parts) > 1 {
		title = parts[1]
	}
	return duration, title
}
