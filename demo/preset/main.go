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
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	path := "preset.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	preset, err := swarm.LoadPreset(path)
	if err != nil {
		fmt.Printf("Failed to load preset: %v\n", err)
		os.Exit(1)
	}

	results, err := preset.Run(context.Background())
	if err != nil {
		fmt.Printf("Failed to run preset: %v\n", err)
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
