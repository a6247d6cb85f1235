package swarm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"
)

// DefaultAnthropicMaxTokens bounds the response length of AnthropicChat when
// the caller passes a non-positive maxTokens.
const DefaultAnthropicMaxTokens = 1024

// AnthropicClient defines the interface for Anthropic API interactions
type AnthropicClient interface {
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// anthropicClientWrapper wraps the Anthropic client
type anthropicClientWrapper struct {
	client anthropic.Client
}

// NewAnthropicClient creates a new Anthropic client wrapper
func NewAnthropicClient(apiKey string) AnthropicClient {
	if apiKey == "" {
		return nil
	}

	return &anthropicClientWrapper{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// NewDefaultAnthropicClient creates an Anthropic client using the
// ANTHROPIC_API_KEY environment variable. Returns an error if the key is not
// set.
func NewDefaultAnthropicClient() (AnthropicClient, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, errors.New("required environment variable not set: ANTHROPIC_API_KEY")
	}

	return NewAnthropicClient(apiKey), nil
}

// CreateMessage implements AnthropicClient interface
func (c *anthropicClientWrapper) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// AnthropicChat returns a Callable that sends a single messages-API request
// to the given model and yields the concatenated text blocks of the
// response. maxTokens caps the response length; values <= 0 fall back to
// DefaultAnthropicMaxTokens.
func AnthropicChat(model, systemPrompt, userTask string, maxTokens int64) Callable[AnthropicClient, string] {
	return func(ctx context.Context, client AnthropicClient) (string, error) {
		if client == nil {
			return "", errors.New("Anthropic client is not configured")
		}

		if maxTokens <= 0 {
			maxTokens = DefaultAnthropicMaxTokens
		}

		params := anthropic.MessageNewParams{
			Model:     anthropic.Model(model),
			MaxTokens: maxTokens,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(userTask)),
			},
		}
		if systemPrompt != "" {
			params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
		}

		message, err := client.CreateMessage(ctx, params)
		if err != nil {
			return "", err
		}

		var text strings.Builder
		for _, block := range message.Content {
			if block.Type == "text" {
				text.WriteString(block.Text)
			}
		}

		log.Debug().
			Str("model", model).
			Int64("input_tokens", message.Usage.InputTokens).
			Int64("output_tokens", message.Usage.OutputTokens).
			Msg("Anthropic message received")

		return text.String(), nil
	}
}
