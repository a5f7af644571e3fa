package hls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Playlist {
	t.Helper()
	p, err := Parse(text, "")
	require.NoError(t, err)
	return p
}

const threeSegMedia = "#EXTM3U\n#EXTINF:10.0,\ns0.ts\n#EXTINF:10.0,\ns1.ts\n#EXTINF:10.0,\ns2.ts\n"
const twoSegMedia = "#EXTM3U\n#EXTINF:10.0,\ns0.ts\n#EXTINF:10.0,\ns1.ts\n"

func TestFitVODPassthrough(t *testing.T) {
	src := mustParse(t, threeSegMedia)

	out := FitVOD(src, nil)

	require.Len(t, out.Segments, 3)
	for _, s := range out.Segments {
		assert.False(t, s.Discontinuity)
	}
	assert.Equal(t, "10", out.FindTag(TagTargetDuration).Value)
	assert.Equal(t, "VOD", out.FindTag(TagPlaylistType).Value)
	assert.NotNil(t, out.FindTag(TagEndList))
}

func TestFitVODLoopsAndExtends(t *testing.T) {
	src := mustParse(t, twoSegMedia)
	target := 35.0

	out := FitVOD(src, &target)

	require.Len(t, out.Segments, 4)
	assert.Equal(t, "s0.ts", out.Segments[0].URI)
	assert.Equal(t, "s1.ts", out.Segments[1].URI)
	assert.Equal(t, "s0.ts", out.Segments[2].URI)
	assert.Equal(t, "s1.ts", out.Segments[3].URI)
	assert.True(t, out.Segments[2].Discontinuity)

	discCount := 0
	for _, s := range out.Segments {
		if s.Discontinuity {
			discCount++
		}
	}
	assert.Equal(t, 1, discCount)
	assert.GreaterOrEqual(t, out.TotalDuration(), target)
	assert.NotNil(t, out.FindTag(TagEndList))
}

func TestFitVODDoesNotMutateSource(t *testing.T) {
	src := mustParse(t, threeSegMedia)
	target := 100.0

	_ = FitVOD(src, &target)

	assert.Len(t, src.Segments, 3)
	assert.Nil(t, src.FindTag(TagPlaylistType))
}
