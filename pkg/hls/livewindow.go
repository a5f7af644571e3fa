// Live Windower: projects a VOD source onto a simulated-live sliding
// window that advances with wall-clock time, looping the source and
// inserting discontinuities across loop boundaries.
package hls

import "strconv"

// WindowLive produces a live media playlist from src: a sliding window of
// min(windowSize, len(src.Segments)) segments, advanced deterministically
// from startMs to nowMs. The algorithm is boundary-based: elapsed time
// only retires a segment once it has fully played out (elapsed strictly
// exceeds the head segment's duration), never mid-segment.
func WindowLive(src *Playlist, startMs, nowMs int64, windowSize int) *Playlist {
	out := src.Clone()
	out.Kind = KindMedia

	n := len(out.Segments)
	if windowSize < 1 {
		windowSize = 1
	}

	if n == 0 {
		out.Segments = nil
		finalizeLive(out, 0, 0, 0)
		return out
	}

	source := out.Segments
	effWindow := windowSize
	if effWindow > n {
		effWindow = n
	}

	window := make([]*Segment, effWindow)
	for i := 0; i < effWindow; i++ {
		window[i] = source[i].clone()
	}

	var mediaSeq, discSeq uint64
	nextTail := effWindow
	elapsed := float64(nowMs-startMs) / 1000.0

	for elapsed > window[0].Duration {
		idx := nextTail % n
		next := source[idx].clone()
		if idx == 0 {
			next.Discontinuity = true
			next.PrependTag(NewTag(TagDiscontinuity, ""))
		}
		window = append(window, next)

		head := window[0]
		window = window[1:]
		if head.Discontinuity {
			discSeq++
		}
		elapsed -= head.Duration
		mediaSeq++
		nextTail++
	}

	out.Segments = append([]*Segment(nil), window...)
	finalizeLive(out, mediaSeq, discSeq, maxSegmentDuration(out.Segments))
	return out
}

func finalizeLive(p *Playlist, mediaSeq, discSeq uint64, maxDuration float64) {
	p.SetTag(TagTargetDuration, strconv.Itoa(ceilDuration(maxDuration)))
	p.SetTag(TagMediaSequence, strconv.FormatUint(mediaSeq, 10))
	p.SetTag(TagDiscontinuitySequence, strconv.FormatUint(discSeq, 10))
	p.SetAttrTag(TagStart, []Attr{{Key: AttrTimeOffset, Value: "0.0"}})
	p.RemoveTag(TagPlaylistType)
	p.RemoveTag(TagEndList)
}
