// VOD Fitter: loops a media playlist's segments to reach a target total
// duration, marking every loop boundary with a discontinuity.
package hls

import "strconv"

// FitVOD produces a VOD media playlist from src. When target is nil, or
// src has no segments, the source segments are kept as-is. Otherwise
// segments are repeated in order, looping from the start, until the
// accumulated duration is at least *target; the segment that crosses the
// threshold is kept whole (never truncated). Every segment that begins a
// new pass over the source carries a fresh EXT-X-DISCONTINUITY.
func FitVOD(src *Playlist, target *float64) *Playlist {
	out := src.Clone()
	out.Kind = KindMedia

	if len(out.Segments) > 0 && target != nil {
		source := out.Segments
		n := len(source)
		var fitted []*Segment
		var total float64
		for i := 0; total < *target; i++ {
			idx := i % n
			seg := source[idx].clone()
			if i >= n && idx == 0 {
				seg.Discontinuity = true
				seg.PrependTag(NewTag(TagDiscontinuity, ""))
			}
			fitted = append(fitted, seg)
			total += seg.Duration
		}
		out.Segments = fitted
	}

	finalizeVOD(out)
	return out
}

func finalizeVOD(p *Playlist) {
	p.SetTag(TagTargetDuration, strconv.Itoa(ceilDuration(maxSegmentDuration(p.Segments))))
	p.SetTag(TagPlaylistType, "VOD")
	if p.FindTag(TagEndList) == nil {
		p.Tags = append(p.Tags, NewTag(TagEndList, ""))
	}
}
