package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-predprey/model"
	"github.com/sheikhrachel/go-predprey/utils"
)

var errInterrupted = errors.New("interrupted")

// simulation is the terminal game loop state; only the loop goroutine touches the grid
type simulation struct {
	config   utils.Config
	grid     *model.Grid
	rng      model.Source
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	out      io.Writer
}

// run drives the loop until it finishes, ctx is cancelled or a signal arrives.
// A signal yields an error wrapping errInterrupted.
func run(ctx context.Context, sim *simulation, signals <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return sim.loop(ctx)
	})
	eg.Go(func() error {
		select {
		case sig := <-signals:
			return errors.Wrapf(errInterrupted, "[run] received %v", sig)
		case <-ctx.Done():
			return nil
		}
	})
	return eg.Wait()
}

func (s *simulation) loop(ctx context.Context) error {
	var (
		frame            = 0
		stagnantCount    = 0
		lastRestartFrame = 0
		lastFrameTime    = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()
		s.renderer.Clear()

		result := s.grid.Step(s.rng, nil)
		frame++

		census, status, isStagnant := updateGameState(s.grid, frame, result, lastFrameTime, s.stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(s.out, frame, census, status, s.stats, lastRestartFrame)
		s.renderer.Display(s.grid)

		if s.config.MaxFrames > 0 && frame >= s.config.MaxFrames {
			fmt.Fprintf(s.out, "\n🏁 Reached maximum frame limit (%d)\n", s.config.MaxFrames)
			return nil
		}

		if restart, reason := checkRestartConditions(census, stagnantCount); restart && s.config.AutoRestart {
			fmt.Fprintf(s.out, "🔄 Restarting due to %s...\n", reason)
			s.grid.Populate(s.rng)
			lastRestartFrame = frame
			stagnantCount = 0
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.config.FrameInterval):
		}
	}
}
