package swarm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPresetInitialize(t *testing.T) {
	tests := []struct {
		name    string
		preset  Preset
		wantErr bool
		check   func(t *testing.T, p *Preset)
	}{
		{
			name:   "openai defaults",
			preset: Preset{Name: "ask", Task: "Who won the world series in 2020?"},
			check: func(t *testing.T, p *Preset) {
				AssertEqual(t, ProviderOpenAI, p.Provider, "provider")
				AssertEqual(t, "gpt-4o-mini", p.Model, "model")
				AssertEqual(t, "You are a helpful assistant.", p.System, "system")
				AssertEqual(t, 4, p.Width, "width")
				AssertEqual(t, "responses.jsonl", p.Output, "output")
			},
		},
		{
			name:   "anthropic default model",
			preset: Preset{Name: "ask", Provider: ProviderAnthropic, Task: "Say hi."},
			check: func(t *testing.T, p *Preset) {
				AssertEqual(t, "claude-3-5-sonnet-20240620", p.Model, "model")
			},
		},
		{
			name:   "explicit values survive",
			preset: Preset{Name: "ask", Task: "Say hi.", Model: "gpt-4o", Width: 8, Output: "out/r.jsonl"},
			check: func(t *testing.T, p *Preset) {
				AssertEqual(t, "gpt-4o", p.Model, "model")
				AssertEqual(t, 8, p.Width, "width")
				AssertEqual(t, "out/r.jsonl", p.Output, "output")
			},
		},
		{
			name:    "missing task",
			preset:  Preset{Name: "ask"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			preset:  Preset{Name: "ask", Provider: "cohere", Task: "Say hi."},
			wantErr: true,
		},
		{
			name:    "negative width",
			preset:  Preset{Name: "ask", Task: "Say hi.", Width: -2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.preset.Initialize()
			if tt.wantErr {
				AssertError(t, err, "initialize")
				return
			}
			AssertNoError(t, err, "initialize")
			if tt.check != nil {
				tt.check(t, &tt.preset)
			}
		})
	}
}

func TestPresetSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	preset := &Preset{
		Name:     "world-series",
		Provider: ProviderOpenAI,
		Model:    "gpt-4o-mini",
		System:   "You are a helpful assistant.",
		Task:     "Who won the world series in 2020?",
		Width:    4,
		Output:   "responses.jsonl",
	}

	AssertNoError(t, preset.Save(path), "save preset")

	loaded, err := LoadPreset(path)
	AssertNoError(t, err, "load preset")
	AssertEqual(t, preset.Name, loaded.Name, "name")
	AssertEqual(t, preset.Provider, loaded.Provider, "provider")
	AssertEqual(t, preset.Model, loaded.Model, "model")
	AssertEqual(t, preset.Task, loaded.Task, "task")
	AssertEqual(t, preset.Width, loaded.Width, "width")
	AssertEqual(t, preset.Output, loaded.Output, "output")
}

func TestLoadPresetErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPreset(filepath.Join(t.TempDir(), "nope.yaml"))
		AssertError(t, err, "load missing preset")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		AssertNoError(t, os.WriteFile(path, []byte("{: not yaml"), 0644), "write broken file")

		_, err := LoadPreset(path)
		AssertError(t, err, "load broken preset")
	})

	t.Run("invalid preset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "incomplete.yaml")
		AssertNoError(t, os.WriteFile(path, []byte("name: no-task\n"), 0644), "write incomplete file")

		_, err := LoadPreset(path)
		AssertError(t, err, "load incomplete preset")
	})
}

func TestPresetRunWithoutCredentials(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		clearOpenAIEnv(t)

		preset := &Preset{Name: "ask", Task: "Say hi.", Output: filepath.Join(t.TempDir(), "r.jsonl")}
		_, err := preset.Run(context.Background())
		AssertError(t, err, "run without credentials")
	})

	t.Run("anthropic", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "")

		preset := &Preset{Name: "ask", Provider: ProviderAnthropic, Task: "Say hi.", Output: filepath.Join(t.TempDir(), "r.jsonl")}
		_, err := preset.Run(context.Background())
		AssertError(t, err, "run without credentials")
	})
}

func TestPresetRunInvalid(t *testing.T) {
	preset := &Preset{Name: "ask"}
	_, err := preset.Run(context.Background())
	AssertError(t, err, "run without a task")
}

func TestPresetRunNegativeWidth(t *testing.T) {
	preset := &Preset{Name: "ask", Task: "Say hi.", Width: -1}
	_, err := preset.Run(context.Background())
	if !errors.Is(err, ErrNegativeWidth) {
		t.Errorf("expected ErrNegativeWidth, got %v", err)
	}
}
