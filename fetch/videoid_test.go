package fetch

import (
	"testing"

	"ewintr.nl/videonotes/model"
	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	for _, tc := range []struct {
		name string
		url  string
		exp  model.YoutubeVideoID
	}{
		{name: "watch", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ"},
		{name: "short link with time", url: "https://youtu.be/dQw4w9WgXcQ?t=30", exp: "dQw4w9WgXcQ"},
		{name: "watch with extra params", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=2", exp: "dQw4w9WgXcQ"},
		{name: "v param not first", url: "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ"},
		{name: "embed", url: "https://www.youtube.com/embed/dQw4w9WgXcQ", exp: "dQw4w9WgXcQ"},
		{name: "shorts", url: "https://youtube.com/shorts/abcDEF12345?feature=share", exp: "abcDEF12345"},
		{name: "v path", url: "https://www.youtube.com/v/dQw4w9WgXcQ", exp: "dQw4w9WgXcQ"},
		{name: "fragment", url: "https://youtu.be/dQw4w9WgXcQ#comments", exp: "dQw4w9WgXcQ"},
		{name: "mobile", url: "https://m.youtube.com/watch?v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			act, ok := ExtractVideoID(tc.url)
			assert.True(t, ok)
			assert.Equal(t, tc.exp, act)
		})
	}
}

func TestExtractVideoIDNoMatch(t *testing.T) {
	for _, url := range []string{
		"",
		"not a url",
		"https://www.youtube.com/",
		"https://www.youtube.com/watch?v=",
		"https://example.com/page?id=dQw4w9WgXcQ",
	} {
		t.Run(url, func(t *testing.T) {
			act, ok := ExtractVideoID(url)
			assert.False(t, ok)
			assert.Empty(t, act)
		})
	}
}
