// Package ai generates article drafts with an OpenAI-compatible model.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrDisabled is returned when no API key was configured.
var ErrDisabled = errors.New("ai: draft generation is disabled")

// Draft is a generated article draft.
type Draft struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags"`
}

// DraftRequest describes what the newsroom wants written.
type DraftRequest struct {
	Topic    string
	Angle    string
	Keywords []string
	Tone     string
}

// Writer produces article drafts. A zero API key disables it.
type Writer struct {
	client *openai.Client
	model  string
}

// NewWriter creates a Writer. apiKey may be empty, in which case every
// Generate call returns ErrDisabled.
func NewWriter(apiKey, model string) *Writer {
	if apiKey == "" {
		return &Writer{model: model}
	}
	return &Writer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Enabled reports whether draft generation is available.
func (w *Writer) Enabled() bool {
	return w.client != nil
}

// Generate asks the model for one article draft.
func (w *Writer) Generate(ctx context.Context, req DraftRequest) (*Draft, error) {
	if w.client == nil {
		return nil, ErrDisabled
	}
	if strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("ai: topic is required")
	}

	slog.Debug("generating article draft", "topic", req.Topic)

	tone := req.Tone
	if tone == "" {
		tone = "neutral, factual newsroom style"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a news article draft.\n\nTopic: %s\n", req.Topic)
	if req.Angle != "" {
		fmt.Fprintf(&b, "Angle: %s\n", req.Angle)
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords to cover: %s\n", strings.Join(req.Keywords, ", "))
	}
	fmt.Fprintf(&b, "Tone: %s\n", tone)
	b.WriteString(`
Respond with JSON:
{
  "title": "headline",
  "summary": "one-paragraph standfirst",
  "body": "full article body with paragraphs separated by blank lines",
  "tags": ["tag", ...]
}`)

	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       w.model,
		Temperature: 0.7,
		MaxTokens:   2000,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a staff writer producing first drafts for a newsroom. Drafts are starting points for human editing, never final copy.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: b.String(),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("ai: empty response")
	}

	var draft Draft
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &draft); err != nil {
		return nil, fmt.Errorf("ai: parse draft: %w", err)
	}
	if draft.Title == "" {
		draft.Title = req.Topic
	}

	return &draft, nil
}
