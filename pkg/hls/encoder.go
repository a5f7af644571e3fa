// Playlist encoding: serializes the Playlist model back to text using
// each tag's preserved (or regenerated) raw line.
package hls

import "strings"

// Encode serializes a Playlist to its text form.
func Encode(p *Playlist) string {
	var b strings.Builder
	b.WriteString(TagExtM3U)
	b.WriteByte('\n')

	for _, t := range p.Tags {
		b.WriteString(t.Raw)
		b.WriteByte('\n')
	}

	switch p.Kind {
	case KindMaster:
		for _, v := range p.Variants {
			for _, t := range v.Tags {
				b.WriteString(t.Raw)
				b.WriteByte('\n')
			}
			b.WriteString(v.URI)
			b.WriteByte('\n')
		}
	default:
		for _, s := range p.Segments {
			for _, t := range s.Tags {
				b.WriteString(t.Raw)
				b.WriteByte('\n')
			}
			b.WriteString(s.URI)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
