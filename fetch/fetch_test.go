package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ewintr.nl/videonotes/model"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func TestOEmbed(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Harry Potter 20th Anniversary","author_name":"HBO Max","type":"video"}`))
	}))
	defer srv.Close()

	oe := NewOEmbed(srv.Client(), srv.URL)
	md, err := oe.FetchMetadata(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", gotURL)
	assert.Equal(t, Metadata{Title: "Harry Potter 20th Anniversary", Author: "HBO Max"}, md)
}

func TestOEmbedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	oe := NewOEmbed(srv.Client(), srv.URL)
	_, err := oe.FetchMetadata(context.Background(), "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestYoutube(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/videos"))
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"abc123","snippet":{"title":"A Title","channelTitle":"A Channel"},"contentDetails":{"duration":"PT4M13S"}}]}`))
	}))
	defer srv.Close()

	svc, err := youtube.NewService(context.Background(), option.WithHTTPClient(srv.Client()), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	md, err := NewYoutube(svc).FetchMetadata(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, Metadata{Title: "A Title", Author: "A Channel", Duration: "PT4M13S"}, md)
}

func TestYoutubeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	svc, err := youtube.NewService(context.Background(), option.WithHTTPClient(srv.Client()), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	_, err = NewYoutube(svc).FetchMetadata(context.Background(), "abc123")
	assert.Error(t, err)
}

func TestPlaceholderTranscript(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pt := NewPlaceholderTranscript(1500*time.Millisecond, clock)

	type outcome struct {
		text string
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		text, err := pt.FetchTranscript(context.Background(), "abc123")
		done <- outcome{text, err}
	}()

	clock.BlockUntil(1)
	select {
	case <-done:
		t.Fatal("transcript returned before the delay passed")
	default:
	}
	clock.Advance(1500 * time.Millisecond)

	select {
	case out := <-done:
		require.NoError(t, out.err)
		assert.True(t, strings.HasSuffix(out.text, "video ID: abc123"))
	case <-time.After(time.Second):
		t.Fatal("transcript did not return after the delay")
	}
}

func TestPlaceholderTranscriptCanceled(t *testing.T) {
	pt := NewPlaceholderTranscript(time.Hour, clockwork.NewFakeClock())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pt.FetchTranscript(ctx, "abc123")
	assert.ErrorIs(t, err, context.Canceled)
}

type blockingFetcher struct{}

func (blockingFetcher) FetchMetadata(ctx context.Context, _ model.YoutubeVideoID) (Metadata, error) {
	<-ctx.Done()
	return Metadata{}, ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	f := WithTimeout(blockingFetcher{}, 10*time.Millisecond)

	_, err := f.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
