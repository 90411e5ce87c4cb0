package fetch

import (
	"context"
	"fmt"

	"ewintr.nl/videonotes/model"
	"google.golang.org/api/youtube/v3"
)

// Youtube looks up metadata through the YouTube Data API.
type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (Metadata, error) {
	call := y.Client.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(string(ytID)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return Metadata{}, fmt.Errorf("could not list video %s: %w", ytID, err)
	}

	for _, item := range response.Items {
		if item.Id != string(ytID) || item.Snippet == nil {
			continue
		}
		md := Metadata{
			Title:  item.Snippet.Title,
			Author: item.Snippet.ChannelTitle,
		}
		if item.ContentDetails != nil {
			md.Duration = item.ContentDetails.Duration
		}

		return md, nil
	}

	return Metadata{}, fmt.Errorf("video %s not found", ytID)
}
