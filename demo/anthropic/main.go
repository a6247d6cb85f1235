package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/swarmlab/swarm-go"
)

func main() {
	// Pick up ANTHROPIC_API_KEY from a local .env if present
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	client, err := swarm.NewDefaultAnthropicClient()
	if err != nil {
		fmt.Printf("Failed to create client: %v\n", err)
		os.Exit(1)
	}

	call := swarm.AnthropicChat("claude-3-5-sonnet-20240620", "You are a helpful assistant.", "Hello, Claude", 1024)

	results, err := swarm.Run(context.Background(), call, 4, client, "responses.jsonl")
	if err != nil {
		fmt.Printf("Failed to run swarm: %v\n", err)
		os.Exit(1)
	}

	for _, outcome := range results {
		if outcome.Err != nil {
			fmt.Printf("Request %d: Failed - %v\n", outcome.Task, outcome.Err)
			continue
		}
		fmt.Printf("Request %d: Success - %s\n", outcome.Task, outcome.Value)
	}
}
