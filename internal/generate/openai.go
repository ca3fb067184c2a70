// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIBackend implements LLM against an OpenAI-compatible chat completions
// endpoint using the official SDK.
type OpenAIBackend struct {
	Model       string
	Temperature float64
	opts        []option.RequestOption
}

// NewOpenAIBackend builds a backend from credentials. baseURL is optional
// and selects a compatible non-OpenAI endpoint when set.
func NewOpenAIBackend(apiKey, baseURL, model string, temperature float64) (*OpenAIBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("completion API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("completion model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIBackend{Model: model, Temperature: temperature, opts: opts}, nil
}

// Complete issues one chat completion and returns the message text.
func (b *OpenAIBackend) Complete(ctx context.Context, system, user string) (string, error) {
	client := openai.NewClient(b.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(b.Model),
		Temperature: openai.Float(b.Temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion endpoint returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
