package main

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-predprey/model"
	"github.com/sheikhrachel/go-predprey/utils"
)

func newTestSimulation(config utils.Config, out *bytes.Buffer) *simulation {
	rng := rand.New(rand.NewSource(11))
	grid := model.NewPopulatedGrid(config.Columns, config.Rows, rng)

	return &simulation{
		config:   config,
		grid:     grid,
		rng:      rng,
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		out:      out,
	}
}

func testConfig() utils.Config {
	config := utils.TerminalConfig()
	config.Columns, config.Rows = 12, 6
	config.FrameInterval = 0
	return config
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	config := testConfig()
	config.MaxFrames = 3

	var out bytes.Buffer
	sim := newTestSimulation(config, &out)
	if err := run(context.Background(), sim, make(chan os.Signal)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Frame: 3 |") {
		t.Errorf("expected status line for frame 3, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Frame: 4 |") {
		t.Error("expected loop to stop after frame 3")
	}
	if sim.stats.TotalFrames != 3 {
		t.Errorf("expected 3 frames in stats, got %d", sim.stats.TotalFrames)
	}
}

func TestRunInterruptedBySignal(t *testing.T) {
	config := testConfig()
	config.FrameInterval = time.Millisecond

	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGINT

	var out bytes.Buffer
	err := run(context.Background(), newTestSimulation(config, &out), signals)
	if !errors.Is(err, errInterrupted) {
		t.Fatalf("expected interruption, got %v", err)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	config := testConfig()
	config.FrameInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := run(ctx, newTestSimulation(config, &out), make(chan os.Signal)); err != nil {
		t.Fatalf("expected cancellation to be a clean stop, got %v", err)
	}
}

func TestRunRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.MaxFrames = 2

	var out bytes.Buffer
	sim := newTestSimulation(config, &out)
	sim.grid.Clear()

	if err := run(context.Background(), sim, make(chan os.Signal)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Restarting due to extinction") {
		t.Errorf("expected extinction restart, got:\n%s", out.String())
	}
	if sim.grid.Census().Extinct() {
		t.Error("expected grid to be repopulated")
	}
}

func TestCheckRestartConditions(t *testing.T) {
	tests := []struct {
		name          string
		census        model.Census
		stagnantCount int
		wantRestart   bool
		wantReason    string
	}{
		{"extinct", model.Census{Empty: 10}, 0, true, "extinction"},
		{"no predators", model.Census{Prey: 4}, 0, true, "predators died out"},
		{"stagnant", model.Census{Prey: 4, Predators: 1}, stagnationThreshold, true, "stagnation detected"},
		{"active", model.Census{Prey: 4, Predators: 1}, 1, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tt.census, tt.stagnantCount)
			if restart != tt.wantRestart || reason != tt.wantReason {
				t.Errorf("got (%v, %q), want (%v, %q)", restart, reason, tt.wantRestart, tt.wantReason)
			}
		})
	}
}
