// Command ecosim-term runs the predator and prey simulation in a terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-predprey/utils"
)

func main() {
	config := utils.TerminalConfig()
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	grid, rng, renderer, stats := initializeGame(config, os.Stdout)
	displayGameInfo(os.Stdout, config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sim := &simulation{
		config:   config,
		grid:     grid,
		rng:      rng,
		renderer: renderer,
		stats:    stats,
		out:      os.Stdout,
	}

	err := run(context.Background(), sim, sigChan)
	switch {
	case errors.Is(err, errInterrupted):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil:
		log.Fatal(err)
	}
	displayFinalStats(os.Stdout, stats)
}
