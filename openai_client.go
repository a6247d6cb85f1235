package swarm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

// ErrNoChoices indicates that a chat completion response carried no choices.
var ErrNoChoices = errors.New("chat completion returned no choices")

// OpenAIClient defines the interface for OpenAI API interactions
type OpenAIClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// openAIClientWrapper wraps the OpenAI client
type openAIClientWrapper struct {
	client openai.Client
}

// NewOpenAIClient creates a new OpenAI client wrapper
func NewOpenAIClient(apiKey string) OpenAIClient {
	if apiKey == "" {
		return nil
	}

	return &openAIClientWrapper{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// NewOpenAIClientWithBaseURL creates a new OpenAI client wrapper with a custom base URL
func NewOpenAIClientWithBaseURL(apiKey string, baseURL string) OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if baseURL == "" {
		return &openAIClientWrapper{
			client: openai.NewClient(option.WithAPIKey(apiKey)),
		}
	}

	return &openAIClientWrapper{
		client: openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(baseURL)),
	}
}

// NewAzureOpenAIClient creates a new OpenAI client wrapper for Azure
func NewAzureOpenAIClient(apiKey, endpoint, apiVersion string) OpenAIClient {
	if apiKey == "" || endpoint == "" {
		return nil
	}

	return &openAIClientWrapper{
		client: openai.NewClient(
			azure.WithEndpoint(endpoint, apiVersion),
			azure.WithAPIKey(apiKey),
		),
	}
}

// NewDefaultOpenAIClient creates an OpenAI client from environment variables.
// It uses OPENAI_API_KEY (with optional OPENAI_API_BASE) for authentication,
// falling back to AZURE_OPENAI_API_KEY / AZURE_OPENAI_API_BASE /
// AZURE_OPENAI_API_VERSION. Returns an error if no credentials are set.
func NewDefaultOpenAIClient() (OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		apiBase := os.Getenv("OPENAI_API_BASE")
		if apiBase == "" {
			return NewOpenAIClient(apiKey), nil
		}

		return NewOpenAIClientWithBaseURL(apiKey, apiBase), nil
	}

	azureAPIKey := os.Getenv("AZURE_OPENAI_API_KEY")
	azureAPIBase := os.Getenv("AZURE_OPENAI_API_BASE")
	azureAPIVersion := os.Getenv("AZURE_OPENAI_API_VERSION")

	var missingEnvs []string
	if azureAPIKey == "" {
		missingEnvs = append(missingEnvs, "AZURE_OPENAI_API_KEY")
	}
	if azureAPIBase == "" {
		missingEnvs = append(missingEnvs, "AZURE_OPENAI_API_BASE")
	}
	if azureAPIVersion == "" {
		azureAPIVersion = "2025-03-01-preview"
	}

	if len(missingEnvs) > 0 {
		return nil, fmt.Errorf("required environment variables not set: %s", strings.Join(missingEnvs, ", "))
	}

	return NewAzureOpenAIClient(azureAPIKey, azureAPIBase, azureAPIVersion), nil
}

// CreateChatCompletion implements OpenAIClient interface
func (c *openAIClientWrapper) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	return completion, nil
}

// OpenAIChat returns a Callable that sends a single system+user chat
// completion request to the given model and yields the first choice's
// content. The returned callable is what a swarm runs N times in parallel:
//
//	client, _ := swarm.NewDefaultOpenAIClient()
//	results, err := swarm.Run(ctx, swarm.OpenAIChat("gpt-4o-mini", system, task), 4, client, "responses.jsonl")
func OpenAIChat(model, systemPrompt, userTask string) Callable[OpenAIClient, string] {
	return func(ctx context.Context, client OpenAIClient) (string, error) {
		if client == nil {
			return "", errors.New("OpenAI client is not configured")
		}

		params := openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(userTask),
			},
			Model: openai.ChatModel(model),
		}

		completion, err := client.CreateChatCompletion(ctx, params)
		if err != nil {
			return "", err
		}
		if len(completion.Choices) == 0 {
			return "", ErrNoChoices
		}

		log.Debug().Str("model", model).Int64("total_tokens", completion.Usage.TotalTokens).Msg("Chat completion received")
		return completion.Choices[0].Message.Content, nil
	}
}
