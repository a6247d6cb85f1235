package swarm

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// MockOpenAIClient mocks the OpenAI client for testing
type MockOpenAIClient struct {
	CompletionResponse *openai.ChatCompletion
	Error              error

	calls atomic.Int64
}

func NewMockOpenAIClient() *MockOpenAIClient {
	return &MockOpenAIClient{}
}

func (m *MockOpenAIClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	m.calls.Add(1)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.CompletionResponse, nil
}

// Calls reports how many completions were requested.
func (m *MockOpenAIClient) Calls() int64 {
	return m.calls.Load()
}

// Helper methods for testing
func (m *MockOpenAIClient) SetCompletionResponse(response *openai.ChatCompletion) {
	m.CompletionResponse = response
}

func (m *MockOpenAIClient) SetError(err error) {
	m.Error = err
}

// MockAnthropicClient mocks the Anthropic client for testing
type MockAnthropicClient struct {
	MessageResponse *anthropic.Message
	Error           error

	mu         sync.Mutex
	lastParams anthropic.MessageNewParams
	calls      atomic.Int64
}

func NewMockAnthropicClient() *MockAnthropicClient {
	return &MockAnthropicClient{}
}

func (m *MockAnthropicClient) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.lastParams = params
	m.mu.Unlock()
	if m.Error != nil {
		return nil, m.Error
	}
	return m.MessageResponse, nil
}

// LastParams returns the most recent request for assertions. Safe to call
// while swarm tasks are still driving the mock concurrently.
func (m *MockAnthropicClient) LastParams() anthropic.MessageNewParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastParams
}

// Calls reports how many messages were requested.
func (m *MockAnthropicClient) Calls() int64 {
	return m.calls.Load()
}

func (m *MockAnthropicClient) SetMessageResponse(response *anthropic.Message) {
	m.MessageResponse = response
}

func (m *MockAnthropicClient) SetError(err error) {
	m.Error = err
}
