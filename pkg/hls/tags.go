// HLS tag name and attribute constants
package hls

// Tag names recognized by the parser and encoder. Anything else is
// preserved verbatim through a tag's raw line without semantic interpretation.
const (
	TagExtM3U                = "#EXTM3U"
	TagVersion               = "#EXT-X-VERSION"
	TagStreamInf             = "#EXT-X-STREAM-INF"
	TagMedia                 = "#EXT-X-MEDIA"
	TagIndependentSegments   = "#EXT-X-INDEPENDENT-SEGMENTS"
	TagInf                   = "#EXTINF"
	TagByteRange             = "#EXT-X-BYTERANGE"
	TagDiscontinuity         = "#EXT-X-DISCONTINUITY"
	TagKey                   = "#EXT-X-KEY"
	TagMap                   = "#EXT-X-MAP"
	TagProgramDateTime       = "#EXT-X-PROGRAM-DATE-TIME"
	TagDateRange             = "#EXT-X-DATERANGE"
	TagTargetDuration        = "#EXT-X-TARGETDURATION"
	TagMediaSequence         = "#EXT-X-MEDIA-SEQUENCE"
	TagDiscontinuitySequence = "#EXT-X-DISCONTINUITY-SEQUENCE"
	TagEndList               = "#EXT-X-ENDLIST"
	TagPlaylistType          = "#EXT-X-PLAYLIST-TYPE"
	TagStart                 = "#EXT-X-START"
	TagCueOut                = "#EXT-X-CUE-OUT"
	TagCueOutCont            = "#EXT-X-CUE-OUT-CONT"
	TagCueIn                 = "#EXT-X-CUE-IN"

	AttrBandwidth        = "BANDWIDTH"
	AttrAverageBandwidth = "AVERAGE-BANDWIDTH"
	AttrCodecs           = "CODECS"
	AttrResolution       = "RESOLUTION"
	AttrFrameRate        = "FRAME-RATE"
	AttrAudio            = "AUDIO"
	AttrVideo            = "VIDEO"
	AttrSubtitles        = "SUBTITLES"
	AttrClosedCaptions   = "CLOSED-CAPTIONS"
	AttrURI              = "URI"
	AttrTimeOffset       = "TIME-OFFSET"
)

// perSegmentTags decorate the next (or currently open) segment rather
// than attaching to the playlist directly.
var perSegmentTags = map[string]bool{
	TagDiscontinuity:   true,
	TagKey:             true,
	TagMap:             true,
	TagProgramDateTime: true,
	TagByteRange:       true,
	TagDateRange:       true,
	TagCueOut:          true,
	TagCueOutCont:      true,
	TagCueIn:           true,
}

// Kind classifies a Playlist as a master or media playlist.
type Kind int

const (
	KindUnknown Kind = iota
	KindMaster
	KindMedia
)

func (k Kind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindMedia:
		return "media"
	default:
		return "unknown"
	}
}
