package utils

import (
	"time"

	"github.com/sheikhrachel/go-predprey/model"
)

// Stats for performance and population monitoring
type Stats struct {
	FramesPerSecond   float64
	AveragePopulation float64
	TotalFrames       int
	StartTime         time.Time
	Census            model.Census
	Totals            model.StepResult // Interactions since start
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(frame int, census model.Census, result model.StepResult, duration time.Duration) {
	s.TotalFrames = frame
	s.Census = census
	s.Totals.Add(result)
	if duration > 0 {
		s.FramesPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	population := float64(census.Creatures())
	if s.AveragePopulation == 0 {
		s.AveragePopulation = population
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (population * 0.1)
	}
}
