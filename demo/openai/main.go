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
	// Pick up OPENAI_API_KEY and friends from a local .env if present
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	client, err := swarm.NewDefaultOpenAIClient()
	if err != nil {
		fmt.Printf("Failed to create client: %v\n", err)
		os.Exit(1)
	}

	call := swarm.OpenAIChat("gpt-4o-mini", "You are a helpful assistant.", "Who won the world series in 2020?")

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
