package process

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ewintr.nl/videonotes/model"
	"github.com/sashabaranov/go-openai"
)

const appTitle = "YouTube Video Summarizer"

var detailLevelPrompts = map[model.DetailLevel]string{
	model.DetailConcise:       "a brief overview with main points",
	model.DetailDetailed:      "a comprehensive summary with key insights and structured notes",
	model.DetailComprehensive: "in-depth notes with detailed explanations of all concepts",
}

const summarizePrompt = `You are an expert educational content summarizer. I need you to analyze this YouTube video transcript and create %s.

VIDEO TITLE: %s
CHANNEL: %s

TRANSCRIPT:
%s

Please provide:
1. A concise summary (2-3 paragraphs)
2. 5-7 key points or takeaways
3. Structured, detailed notes in a clean format that a student could use for studying

Format the notes section with clear headings, bullet points, and organize the content in a logical, easy-to-follow structure.`

type OpenAIInfo struct {
	Endpoint string
	ApiKey   string
	Model    string
}

// OpenAIGenerator calls an OpenAI compatible chat completion endpoint.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(info OpenAIInfo) *OpenAIGenerator {
	config := openai.DefaultConfig(info.ApiKey)
	if info.Endpoint != "" {
		config.BaseURL = info.Endpoint
	}
	config.HTTPClient = &http.Client{
		Transport: titleTransport{base: http.DefaultTransport},
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(config),
		model:  info.Model,
	}
}

func (o *OpenAIGenerator) Name() string {
	return "openai generator"
}

func (o *OpenAIGenerator) Generate(ctx context.Context, req GenerationRequest) (Content, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(req),
				},
			},
			Temperature: 0.3,
			MaxTokens:   4000,
		})
	if err != nil {
		return Content{}, fmt.Errorf("failed to fetch completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Content{}, errors.New("completion has no choices")
	}

	return parseCompletion(resp.Choices[0].Message.Content), nil
}

func buildPrompt(req GenerationRequest) string {
	return fmt.Sprintf(summarizePrompt,
		detailLevelPrompts[req.DetailLevel.Normalize()],
		req.Video.Title,
		req.Video.ChannelTitle,
		req.Transcript,
	)
}

// titleTransport identifies the application to OpenRouter style endpoints.
type titleTransport struct {
	base http.RoundTripper
}

func (t titleTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", appTitle)
	return t.base.RoundTrip(r)
}
