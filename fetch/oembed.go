package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"ewintr.nl/videonotes/model"
)

const DefaultOEmbedEndpoint = "https://www.youtube.com/oembed"

// OEmbed looks up title and author through the public oEmbed endpoint. It
// needs no API key.
type OEmbed struct {
	client   *http.Client
	endpoint string
}

func NewOEmbed(client *http.Client, endpoint string) *OEmbed {
	if client == nil {
		client = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultOEmbedEndpoint
	}
	return &OEmbed{
		client:   client,
		endpoint: endpoint,
	}
}

func (o *OEmbed) FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (Metadata, error) {
	q := url.Values{}
	q.Set("url", fmt.Sprintf("https://www.youtube.com/watch?v=%s", ytID))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Metadata{}, err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("could not fetch oembed for %s: %w", ytID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("oembed for %s returned status %d", ytID, resp.StatusCode)
	}

	var body struct {
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Metadata{}, fmt.Errorf("could not decode oembed for %s: %w", ytID, err)
	}

	return Metadata{
		Title:  body.Title,
		Author: body.AuthorName,
	}, nil
}
