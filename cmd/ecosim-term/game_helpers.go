package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sheikhrachel/go-predprey/model"
	"github.com/sheikhrachel/go-predprey/utils"
)

// stagnationThreshold is the number of consecutive stagnant frames that triggers a restart
const stagnationThreshold = 5

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*model.Grid,
	*rand.Rand,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	grid := model.NewPopulatedGrid(config.Columns, config.Rows, rng)

	renderer := &model.TerminalRenderer{Out: out}
	stats := utils.NewStats()

	return grid, rng, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	census := grid.Census()
	fmt.Fprintf(out, "%s | Grid: %dx%d | Auto restart: %v\n",
		config.Title, grid.GetWidth(), grid.GetHeight(), config.AutoRestart)
	fmt.Fprintf(out, "Initial population: %d predators, %d prey\n", census.Predators, census.Prey)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState updates the stats after a pass and returns status information
func updateGameState(
	grid *model.Grid,
	frame int,
	result model.StepResult,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (model.Census, string, bool) {
	census := grid.Census()
	stats.Update(frame, census, result, time.Since(lastFrameTime))

	// Compare against earlier frames before recording this one
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if census.Extinct() {
		status = "Extinct"
	}

	return census, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	frame int,
	census model.Census,
	status string,
	stats *utils.Stats,
	lastRestartFrame int,
) {
	fmt.Fprintf(out, "Frame: %d | Predators: %d | Prey: %d | Mean health: %.1f | Status: %s\n",
		frame, census.Predators, census.Prey, census.MeanHealth, status)
	fmt.Fprintf(out, "Performance: %.1f frames/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.FramesPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if frame > lastRestartFrame {
		fmt.Fprintf(out, "Frames since restart: %d\n", frame-lastRestartFrame)
	}
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(census model.Census, stagnantCount int) (bool, string) {
	if census.Extinct() {
		return true, "extinction"
	}
	if census.Predators == 0 {
		return true, "predators died out"
	}
	if stagnantCount >= stagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// displayFinalStats prints the totals since start
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d frames in %.1f seconds\n",
		stats.TotalFrames, time.Since(stats.StartTime).Seconds())
	fmt.Fprintf(out, "Moves: %d | Predations: %d | Births: %d | Starvations: %d\n",
		stats.Totals.Moves, stats.Totals.Predations, stats.Totals.Births, stats.Totals.Starvations)
	fmt.Fprintf(out, "Average: %.1f frames/sec, %.1f avg population\n",
		stats.FramesPerSecond, stats.AveragePopulation)
}
