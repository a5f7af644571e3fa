// Playlist data model: the in-memory representation every other file in
// this package reads from or mutates. Faithful re-emission depends on two
// invariants: a Tag's raw line is reused verbatim until one of its
// recognized fields is mutated, and a Segment's Tags, emitted in order and
// followed by its URI, re-parse to an equivalent Segment.
package hls

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is one KEY=VALUE pair from a tag's attribute list. A slice of Attr
// (rather than a map) preserves insertion order, which matters when an
// attribute tag's raw line is regenerated.
type Attr struct {
	Key   string
	Value string
}

// Tag is a single HLS directive: a name, optionally a scalar value or an
// attribute list, and the raw text line used to re-emit it.
type Tag struct {
	Name  string
	Value string
	Attrs []Attr
	Raw   string
}

// NewTag creates a tag with a scalar value, or a bare flag tag if value is empty.
func NewTag(name, value string) *Tag {
	t := &Tag{Name: name, Value: value}
	t.regen()
	return t
}

// NewAttrTag creates a tag whose tail is an attribute list.
func NewAttrTag(name string, attrs []Attr) *Tag {
	t := &Tag{Name: name, Attrs: attrs}
	t.regen()
	return t
}

// SetValue replaces the tag's scalar value and regenerates its raw line.
func (t *Tag) SetValue(v string) {
	t.Value = v
	t.Attrs = nil
	t.regen()
}

// SetAttr inserts or updates an attribute, preserving the position of an
// existing key, and regenerates the raw line.
func (t *Tag) SetAttr(key, value string) {
	for i := range t.Attrs {
		if t.Attrs[i].Key == key {
			t.Attrs[i].Value = value
			t.regen()
			return
		}
	}
	t.Attrs = append(t.Attrs, Attr{Key: key, Value: value})
	t.regen()
}

// Attr returns the value of an attribute and whether it was present.
func (t *Tag) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (t *Tag) regen() {
	switch {
	case len(t.Attrs) > 0:
		t.Raw = t.Name + ":" + renderAttrs(t.Attrs)
	case t.Value != "":
		t.Raw = t.Name + ":" + t.Value
	default:
		t.Raw = t.Name
	}
}

func (t *Tag) clone() *Tag {
	cp := *t
	if t.Attrs != nil {
		cp.Attrs = append([]Attr(nil), t.Attrs...)
	}
	return &cp
}

func renderAttrs(attrs []Attr) string {
	quoted := map[string]bool{
		AttrCodecs: true, AttrResolution: true, AttrAudio: true,
		AttrVideo: true, AttrSubtitles: true, AttrClosedCaptions: true,
		AttrURI: true,
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if quoted[a.Key] || needsQuoting(a.Value) {
			parts = append(parts, fmt.Sprintf("%s=%q", a.Key, a.Value))
		} else {
			parts = append(parts, a.Key+"="+a.Value)
		}
	}
	return strings.Join(parts, ",")
}

func needsQuoting(v string) bool {
	if v == "" {
		return false
	}
	// Values that parse cleanly as numbers or YES/NO stay unquoted.
	if v == "YES" || v == "NO" {
		return false
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return false
	}
	return true
}

// Key represents an EXT-X-KEY encryption key. Keys are passed through
// unchanged; this gateway never rotates or re-derives them.
type Key struct {
	Attrs []Attr
	URI   string
}

// Map represents an EXT-X-MAP initialization section.
type Map struct {
	Attrs []Attr
	URI   string
}

// Segment is one media chunk in a media playlist.
type Segment struct {
	Duration        float64
	Title           string
	URI             string
	ByteRange       string
	Discontinuity   bool
	Key             *Key
	Map             *Map
	ProgramDateTime string
	DateRange       string
	Tags            []*Tag
}

func (s *Segment) clone() *Segment {
	cp := *s
	cp.Tags = cloneTags(s.Tags)
	if s.Key != nil {
		k := *s.Key
		k.Attrs = append([]Attr(nil), s.Key.Attrs...)
		cp.Key = &k
	}
	if s.Map != nil {
		m := *s.Map
		m.Attrs = append([]Attr(nil), s.Map.Attrs...)
		cp.Map = &m
	}
	return &cp
}

// PrependTag inserts a tag at the front of the segment's tag list, used by
// the VOD fitter, live windower, and ad injector to add loop/ad markers
// above the EXTINF line.
func (s *Segment) PrependTag(t *Tag) {
	s.Tags = append([]*Tag{t}, s.Tags...)
}

// Variant is one rendition in a master playlist.
type Variant struct {
	URI              string
	Bandwidth        int64
	AverageBandwidth int64
	Codecs           string
	Resolution       string
	FrameRate        float64
	AudioGroup       string
	VideoGroup       string
	SubtitlesGroup   string
	ClosedCaptions   string
	Tags             []*Tag // normally just the EXT-X-STREAM-INF tag
}

func (v *Variant) clone() *Variant {
	cp := *v
	cp.Tags = cloneTags(v.Tags)
	return &cp
}

// streamInfTag returns the variant's EXT-X-STREAM-INF tag, if present.
func (v *Variant) streamInfTag() *Tag {
	for _, t := range v.Tags {
		if t.Name == TagStreamInf {
			return t
		}
	}
	return nil
}

func cloneTags(in []*Tag) []*Tag {
	if in == nil {
		return nil
	}
	out := make([]*Tag, len(in))
	for i, t := range in {
		out[i] = t.clone()
	}
	return out
}

// Playlist is the root of the in-memory model: either a master playlist
// (Variants populated) or a media playlist (Segments populated), never both.
type Playlist struct {
	Kind      Kind
	Version   *int
	Tags      []*Tag // playlist-level tags, in source order
	Segments  []*Segment
	Variants  []*Variant
	SourceURL string
}

// New returns an empty playlist of unknown kind.
func New(sourceURL string) *Playlist {
	return &Playlist{Kind: KindUnknown, SourceURL: sourceURL}
}

// IsMaster reports whether the playlist is a master playlist.
func (p *Playlist) IsMaster() bool { return p.Kind == KindMaster }

// IsMedia reports whether the playlist is a media playlist.
func (p *Playlist) IsMedia() bool { return p.Kind == KindMedia }

// FindTag returns the first playlist-level tag with the given name.
func (p *Playlist) FindTag(name string) *Tag {
	for _, t := range p.Tags {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// SetTag updates an existing playlist-level tag's scalar value in place,
// or appends a new one — the update-or-append rule the VOD fitter and
// live windower use to finalize their tags.
func (p *Playlist) SetTag(name, value string) *Tag {
	if t := p.FindTag(name); t != nil {
		t.SetValue(value)
		return t
	}
	t := NewTag(name, value)
	p.Tags = append(p.Tags, t)
	return t
}

// SetAttrTag updates or appends an attribute-valued playlist-level tag.
func (p *Playlist) SetAttrTag(name string, attrs []Attr) *Tag {
	if t := p.FindTag(name); t != nil {
		t.Attrs = attrs
		t.Value = ""
		t.regen()
		return t
	}
	t := NewAttrTag(name, attrs)
	p.Tags = append(p.Tags, t)
	return t
}

// RemoveTag deletes every playlist-level tag with the given name.
func (p *Playlist) RemoveTag(name string) {
	out := p.Tags[:0]
	for _, t := range p.Tags {
		if t.Name != name {
			out = append(out, t)
		}
	}
	p.Tags = out
}

// TotalDuration sums the duration of every segment.
func (p *Playlist) TotalDuration() float64 {
	var total float64
	for _, s := range p.Segments {
		total += s.Duration
	}
	return total
}

// Clone returns a deep copy safe to mutate independently of the original.
// Every transformation in this package must clone before mutating — the
// manifest cache's entries are treated as immutable once stored.
func (p *Playlist) Clone() *Playlist {
	cp := &Playlist{
		Kind:      p.Kind,
		SourceURL: p.SourceURL,
		Tags:      cloneTags(p.Tags),
	}
	if p.Version != nil {
		v := *p.Version
		cp.Version = &v
	}
	if p.Segments != nil {
		cp.Segments = make([]*Segment, len(p.Segments))
		for i, s := range p.Segments {
			cp.Segments[i] = s.clone()
		}
	}
	if p.Variants != nil {
		cp.Variants = make([]*Variant, len(p.Variants))
		for i, v := range p.Variants {
			cp.Variants[i] = v.clone()
		}
	}
	return cp
}

// AdMode distinguishes the two AdConfig variants.
type AdMode int

const (
	AdModeInterval AdMode = iota
	AdModeTimestamp
)

// AdConfig is a tagged union of the two ad-break scheduling modes: fixed
// interval, or an explicit sorted list of absolute start times. The
// injector dispatches on Mode rather than testing nullable fields.
type AdConfig struct {
	Mode       AdMode
	Duration   float64
	Interval   float64   // seconds; AdModeInterval only
	Timestamps []float64 // seconds, sorted ascending; AdModeTimestamp only
}
