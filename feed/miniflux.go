// Package feed offers unread YouTube entries from a Miniflux reader as
// candidates to summarize.
package feed

import (
	"fmt"

	"ewintr.nl/videonotes/fetch"
	"ewintr.nl/videonotes/model"
	"miniflux.app/client"
)

type MinifluxInfo struct {
	Endpoint string
	ApiKey   string
}

type Entry struct {
	ID      int64                `json:"id"`
	FeedID  int64                `json:"feed_id"`
	Channel string               `json:"channel"`
	Title   string               `json:"title"`
	URL     string               `json:"url"`
	VideoID model.YoutubeVideoID `json:"video_id"`
}

type Miniflux struct {
	client *client.Client
}

func NewMiniflux(info MinifluxInfo) *Miniflux {
	return &Miniflux{
		client: client.New(info.Endpoint, info.ApiKey),
	}
}

// Unread returns the unread entries that link to a YouTube video. Other
// entries are skipped.
func (m *Miniflux) Unread() ([]Entry, error) {
	result, err := m.client.Entries(&client.Filter{Status: "unread"})
	if err != nil {
		return nil, fmt.Errorf("could not fetch unread entries: %w", err)
	}

	entries := make([]Entry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		ytID, ok := fetch.ExtractVideoID(entry.URL)
		if !ok {
			continue
		}
		e := Entry{
			ID:      entry.ID,
			FeedID:  entry.FeedID,
			Title:   entry.Title,
			URL:     entry.URL,
			VideoID: ytID,
		}
		if entry.Feed != nil {
			e.Channel = entry.Feed.Title
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (m *Miniflux) MarkRead(entryID int64) error {
	if err := m.client.UpdateEntries([]int64{entryID}, "read"); err != nil {
		return fmt.Errorf("could not mark entry %d as read: %w", entryID, err)
	}

	return nil
}
