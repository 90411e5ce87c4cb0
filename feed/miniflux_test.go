package feed_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ewintr.nl/videonotes/feed"
	"ewintr.nl/videonotes/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entriesBody = `{
  "total": 3,
  "entries": [
    {"id": 11, "feed_id": 2, "title": "Learning Go", "url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "feed": {"id": 2, "title": "Gopher Channel"}},
    {"id": 12, "feed_id": 3, "title": "A blog post", "url": "https://example.com/post"},
    {"id": 13, "feed_id": 2, "title": "Go Shorts", "url": "https://youtube.com/shorts/abcdefghijk"}
  ]
}`

func TestMinifluxUnread(t *testing.T) {
	var token, status string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/entries"))
		token = r.Header.Get("X-Auth-Token")
		status = r.URL.Query().Get("status")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(entriesBody))
	}))
	defer srv.Close()

	mfl := feed.NewMiniflux(feed.MinifluxInfo{Endpoint: srv.URL, ApiKey: "key"})
	act, err := mfl.Unread()
	require.NoError(t, err)

	assert.Equal(t, "key", token)
	assert.Equal(t, "unread", status)
	assert.Equal(t, []feed.Entry{
		{
			ID:      11,
			FeedID:  2,
			Channel: "Gopher Channel",
			Title:   "Learning Go",
			URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			VideoID: model.YoutubeVideoID("dQw4w9WgXcQ"),
		},
		{
			ID:      13,
			FeedID:  2,
			Title:   "Go Shorts",
			URL:     "https://youtube.com/shorts/abcdefghijk",
			VideoID: model.YoutubeVideoID("abcdefghijk"),
		},
	}, act)
}

func TestMinifluxMarkRead(t *testing.T) {
	var body struct {
		EntryIDs []int64 `json:"entry_ids"`
		Status   string  `json:"status"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/entries"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	mfl := feed.NewMiniflux(feed.MinifluxInfo{Endpoint: srv.URL, ApiKey: "key"})
	require.NoError(t, mfl.MarkRead(11))
	assert.Equal(t, []int64{11}, body.EntryIDs)
	assert.Equal(t, "read", body.Status)
}

func TestMinifluxError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	mfl := feed.NewMiniflux(feed.MinifluxInfo{Endpoint: srv.URL, ApiKey: "wrong"})
	_, err := mfl.Unread()
	assert.Error(t, err)
}
