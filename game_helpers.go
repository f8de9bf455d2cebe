package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/sheikhrachel/go-predprey/model"
	"github.com/sheikhrachel/go-predprey/utils"
)

// initializeSimulation sets up the initial simulation state
func initializeSimulation(config utils.Config) (*model.Grid, *rand.Rand, *utils.Stats) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return model.NewPopulatedGrid(config.Columns, config.Rows, rng), rng, utils.NewStats()
}

// displaySimulationInfo logs the initial simulation information
func displaySimulationInfo(config utils.Config, grid *model.Grid) {
	census := grid.Census()
	log.Printf("[Simulation] grid %dx%d in a %dx%d window at %d TPS",
		grid.GetWidth(), grid.GetHeight(), config.WindowWidth, config.WindowHeight, config.TPS)
	log.Printf("[Simulation] initial population: %d predators, %d prey, %d empty",
		census.Predators, census.Prey, census.Empty)
	log.Println("[Simulation] press Escape or close the window to exit")
}
