// Package swarm runs the same asynchronous operation many times in parallel
// and records every outcome as one JSON line while results stream back to the
// caller.
//
// The package supports:
//   - Generic fan-out execution of any fallible callable over a shared resource
//   - Completion-order result collection with no lost outcomes
//   - Durable JSON-lines logging of every outcome, success or error
//   - OpenAI and Anthropic chat-completion callables
//   - YAML presets for declarative swarm runs
//
// Key Components:
//   - Run: the concurrent executor at the heart of the package
//   - Sink: a serialized, truncate-on-open JSON-lines writer
//   - OpenAIClient / AnthropicClient: provider collaborators
//   - Preset: declarative configuration for a swarm run
package swarm
