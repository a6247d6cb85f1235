package swarm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Supported preset providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Preset is a declarative description of a swarm run: which provider and
// model to ask, what to ask, how many times in parallel, and where to log
// the outcomes.
type Preset struct {
	// Name identifies the preset.
	Name string `yaml:"name" json:"name"`
	// Provider selects the chat backend, "openai" (default) or "anthropic".
	Provider string `yaml:"provider" json:"provider"`
	// Model is the provider model name. Defaults per provider.
	Model string `yaml:"model" json:"model"`
	// System is the system prompt sent with every request.
	System string `yaml:"system" json:"system"`
	// Task is the user message sent with every request.
	Task string `yaml:"task" json:"task"`
	// Width is the number of parallel requests. Defaults to 4.
	Width int `yaml:"width" json:"width"`
	// Output is the JSON-lines file outcomes are logged to.
	Output string `yaml:"output" json:"output"`
	// MaxTokens caps Anthropic responses. Ignored for OpenAI.
	MaxTokens int64 `yaml:"max_tokens" json:"max_tokens"`
}

// Initialize applies defaults and validates the preset. It must succeed
// before the preset can run.
func (p *Preset) Initialize() error {
	if p.Provider == "" {
		p.Provider = ProviderOpenAI
	}
	if p.Provider != ProviderOpenAI && p.Provider != ProviderAnthropic {
		return fmt.Errorf("unknown provider %q", p.Provider)
	}

	if p.Model == "" {
		switch p.Provider {
		case ProviderOpenAI:
			p.Model = "gpt-4o-mini"
		case ProviderAnthropic:
			p.Model = "claude-3-5-sonnet-20240620"
		}
	}
	if p.System == "" {
		p.System = "You are a helpful assistant."
	}
	if p.Task == "" {
		return fmt.Errorf("preset must define a task")
	}

	if p.Width == 0 {
		p.Width = 4
	}
	if p.Width < 0 {
		return ErrNegativeWidth
	}
	if p.Output == "" {
		p.Output = "responses.jsonl"
	}

	return nil
}

// LoadPreset creates a new Preset from a YAML configuration file. The
// function reads the file, unmarshals the YAML content, and initializes the
// preset.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset: %w", err)
	}

	if err := preset.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize preset: %w", err)
	}

	return &preset, nil
}

// Save persists the preset configuration to a YAML file at the specified
// path.
func (p *Preset) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	return nil
}

// Run executes the preset: it builds the provider's default client from the
// environment, makes sure the output folder exists, and fans the chat
// request out Width times. Outcomes are returned in completion order.
//
// Run initializes the preset first, so hand-constructed presets work without
// a prior Initialize call; Initialize is idempotent, so presets from
// LoadPreset are not validated differently by the repeat.
func (p *Preset) Run(ctx context.Context) ([]Outcome[string], error) {
	if err := p.Initialize(); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(p.Output); dir != "." {
		if err := EnsureFolder(dir); err != nil {
			return nil, err
		}
	}

	switch p.Provider {
	case ProviderAnthropic:
		client, err := NewDefaultAnthropicClient()
		if err != nil {
			return nil, err
		}
		return Run(ctx, AnthropicChat(p.Model, p.System, p.Task, p.MaxTokens), p.Width, client, p.Output)
	default:
		client, err := NewDefaultOpenAIClient()
		if err != nil {
			return nil, err
		}
		return Run(ctx, OpenAIChat(p.Model, p.System, p.Task), p.Width, client, p.Output)
	}
}
