package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/campuskit/coursegen-service/internal/config"
)

var (
	// ErrMissingCredential means no API key was configured for the
	// generation backend.
	ErrMissingCredential = errors.New("generation api key not configured")

	// ErrEmptyCompletion means the backend answered but carried no usable
	// message content.
	ErrEmptyCompletion = errors.New("generation backend returned no content")
)

// Client produces one completion for a system/user prompt pair.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// groqClient talks to a Groq deployment through its OpenAI-compatible API.
type groqClient struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewGroqClient builds a client from configuration. The key is checked here
// so a misconfigured deployment fails at startup rather than on first use.
func NewGroqClient(cfg config.GenerationConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	apiConfig.BaseURL = cfg.BaseURL

	return &groqClient{
		api:     openai.NewClientWithConfig(apiConfig),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

func (c *groqClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		// Low temperature keeps counts and formatting stable across runs.
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call generation backend: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
