package hls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMedia = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:0
#EXTINF:10.0,
s0.ts
#EXTINF:10.0,
s1.ts
#EXTINF:10.0,
s2.ts
#EXT-X-ENDLIST
`

const sampleMaster = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-STREAM-INF:BANDWIDTH=5000000,CODECS="avc1.64001f,mp4a.40.2",RESOLUTION=1920x1080
high.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2500000,RESOLUTION=1280x720
low.m3u8
`

func TestParseMediaPlaylist(t *testing.T) {
	p, err := Parse(sampleMedia, "https://origin.example.com/vod/index.m3u8")
	require.NoError(t, err)
	assert.True(t, p.IsMedia())
	require.Len(t, p.Segments, 3)
	assert.Equal(t, "https://origin.example.com/vod/s0.ts", p.Segments[0].URI)
	assert.Equal(t, 10.0, p.Segments[0].Duration)
	assert.NotNil(t, p.FindTag(TagEndList))
}

func TestParseMasterPlaylist(t *testing.T) {
	p, err := Parse(sampleMaster, "https://origin.example.com/vod/master.m3u8")
	require.NoError(t, err)
	assert.True(t, p.IsMaster())
	require.Len(t, p.Variants, 2)
	assert.EqualValues(t, 5000000, p.Variants[0].Bandwidth)
	assert.Equal(t, "1920x1080", p.Variants[0].Resolution)
	assert.Equal(t, "low.m3u8", p.Variants[1].URI, "variant URIs are not resolved at parse time")
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse("#EXT-X-VERSION:3\n", "")
	require.Error(t, err)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseRejectsOrphanURI(t *testing.T) {
	_, err := Parse("#EXTM3U\nsegment.ts\n", "")
	require.Error(t, err)
}

func TestParseDiscontinuityDecoratesNextSegment(t *testing.T) {
	text := "#EXTM3U\n#EXT-X-DISCONTINUITY\n#EXTINF:5.0,\nseg.ts\n"
	p, err := Parse(text, "")
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	assert.True(t, p.Segments[0].Discontinuity)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	p, err := Parse(sampleMedia, "")
	require.NoError(t, err)
	out := Encode(p)

	p2, err := Parse(out, "")
	require.NoError(t, err)
	assert.Equal(t, len(p.Segments), len(p2.Segments))
	for i := range p.Segments {
		assert.Equal(t, p.Segments[i].Duration, p2.Segments[i].Duration)
		assert.Equal(t, p.Segments[i].URI, p2.Segments[i].URI)
	}
}
