package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownName(t *testing.T) {
	r := New("default", map[string]string{"bunny": "https://example.com/bunny.m3u8"})

	url, err := r.Resolve("bunny")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/bunny.m3u8", url)
}

func TestResolveEmptyNameUsesDefault(t *testing.T) {
	r := New("default", map[string]string{"default": "https://example.com/default.m3u8"})

	url, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/default.m3u8", url)
}

func TestResolveUnknownNameFails(t *testing.T) {
	r := New("default", map[string]string{})

	_, err := r.Resolve("nope")
	assert.Error(t, err)
}

func TestResolvePassesThroughAbsoluteURL(t *testing.T) {
	r := New("default", map[string]string{})

	url, err := r.Resolve("https://other.example.com/stream.m3u8")
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com/stream.m3u8", url)
}

func TestNewAlwaysResolvesDefault(t *testing.T) {
	r := New("", nil)

	url, err := r.Resolve("")
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
