package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("#EXTM3U\n#EXTINF:10.0,\ns0.ts\n"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(Options{Timeout: time.Second})
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "#EXTM3U")
}

func TestHTTPFetcherNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(Options{Timeout: time.Second})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "404", uerr.Code)
}

func TestHTTPFetcherMissingSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a playlist"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(Options{Timeout: time.Second})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "invalid", uerr.Code)
}

func TestHTTPFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte("#EXTM3U\n"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(Options{Timeout: time.Millisecond})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "timeout", uerr.Code)
}

type countingFetcher struct {
	calls int
}

func (f *countingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.calls++
	time.Sleep(10 * time.Millisecond)
	return "#EXTM3U\n", nil
}

func TestSingleFlightFetcherCollapsesConcurrentCalls(t *testing.T) {
	inner := &countingFetcher{}
	f := NewSingleFlightFetcher(inner)

	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func() {
			_, err := f.Fetch(context.Background(), "https://example.com/a.m3u8")
			assert.NoError(t, err)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 5; i++ {
		<-done
	}

	assert.Equal(t, 1, inner.calls)
}
