package model

import "fmt"

const (
	FallbackTitle   = "Video Title Unavailable"
	FallbackChannel = "Unknown Channel"
)

type YoutubeVideoID string

type DetailLevel string

const (
	DetailConcise       DetailLevel = "concise"
	DetailDetailed      DetailLevel = "detailed"
	DetailComprehensive DetailLevel = "comprehensive"
)

// Valid reports whether d is one of the known levels. The empty level is not
// valid; use Normalize first to apply the default.
func (d DetailLevel) Valid() bool {
	switch d {
	case DetailConcise, DetailDetailed, DetailComprehensive:
		return true
	}
	return false
}

// Normalize returns the default level for an empty value.
func (d DetailLevel) Normalize() DetailLevel {
	if d == "" {
		return DetailDetailed
	}
	return d
}

type Request struct {
	VideoURL    string      `json:"video_url"`
	DetailLevel DetailLevel `json:"detail_level"`
}

type VideoDetails struct {
	ID           YoutubeVideoID `json:"id"`
	Title        string         `json:"title"`
	ThumbnailURL string         `json:"thumbnail_url"`
	ChannelTitle string         `json:"channel_title"`
	Duration     string         `json:"duration,omitempty"`
}

func ThumbnailURL(id YoutubeVideoID) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/maxresdefault.jpg", id)
}

// FallbackDetails are used when the metadata lookup fails.
func FallbackDetails(id YoutubeVideoID) VideoDetails {
	return VideoDetails{
		ID:           id,
		Title:        FallbackTitle,
		ThumbnailURL: ThumbnailURL(id),
		ChannelTitle: FallbackChannel,
	}
}
