package main

import (
	"log"

	"github.com/sheikhrachel/go-predprey/render"
	"github.com/sheikhrachel/go-predprey/utils"
)

func main() {
	config := utils.DefaultConfig()
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	grid, rng, stats := initializeSimulation(config)
	displaySimulationInfo(config, grid)

	game := render.NewGame(config, grid, rng, stats)
	if err := render.Run(config, game); err != nil {
		log.Fatal(err)
	}
}
