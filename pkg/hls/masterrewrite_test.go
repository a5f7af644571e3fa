package hls

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteMasterAssignsSequentialIndices(t *testing.T) {
	p := mustParse(t, sampleMaster)

	out := RewriteMaster(p, RewriteParams{Mode: "live", Stream: "bunny", Start: "1000"})

	require.Len(t, out.Variants, 2)
	assertVariantURL(t, out.Variants[0].URI, "live", "0", "bunny")
	assertVariantURL(t, out.Variants[1].URI, "live", "1", "bunny")

	q0, err := url.ParseQuery(out.Variants[0].URI[len("/live.m3u8?"):])
	require.NoError(t, err)
	assert.Equal(t, "1000", q0.Get("start"))
}

func TestRewriteMasterPreservesVariantAttributes(t *testing.T) {
	p := mustParse(t, sampleMaster)

	out := RewriteMaster(p, RewriteParams{Mode: "vod", Duration: "60"})

	tag := out.Variants[0].streamInfTag()
	require.NotNil(t, tag)
	bw, ok := tag.Attr(AttrBandwidth)
	require.True(t, ok)
	assert.Equal(t, "5000000", bw)
}

func TestRewriteMasterIncludesMediaRenditions(t *testing.T) {
	text := "#EXTM3U\n" +
		"#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID=\"aud\",NAME=\"English\",URI=\"audio-en.m3u8\"\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=5000000,AUDIO=\"aud\"\n" +
		"high.m3u8\n"
	p := mustParse(t, text)

	out := RewriteMaster(p, RewriteParams{Mode: "vod"})

	require.Len(t, out.Variants, 1)
	assertVariantURL(t, out.Variants[0].URI, "vod", "0", "")

	mediaTag := out.FindTag(TagMedia)
	require.NotNil(t, mediaTag)
	uri, ok := mediaTag.Attr(AttrURI)
	require.True(t, ok)
	assertVariantURL(t, uri, "vod", "1", "")
}

func TestResolveVariantWalksVariantsThenMedia(t *testing.T) {
	text := "#EXTM3U\n" +
		"#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID=\"aud\",NAME=\"English\",URI=\"audio-en.m3u8\"\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=5000000,AUDIO=\"aud\"\n" +
		"high.m3u8\n"
	p, err := Parse(text, "https://origin.example.com/vod/master.m3u8")
	require.NoError(t, err)

	target0, err := ResolveVariant(p, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://origin.example.com/vod/high.m3u8", target0.URI)

	target1, err := ResolveVariant(p, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://origin.example.com/vod/audio-en.m3u8", target1.URI)

	_, err = ResolveVariant(p, 2)
	require.Error(t, err)
	var verr *VariantIndexError
	assert.ErrorAs(t, err, &verr)
}

func assertVariantURL(t *testing.T, rawURL, mode, variant, stream string) {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "/"+mode+".m3u8", u.Path)
	q := u.Query()
	assert.Equal(t, variant, q.Get("variant"))
	if stream != "" {
		assert.Equal(t, stream, q.Get("stream"))
	}
}
