package rules

import "testing"

func TestClampHealth(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   int
	}{
		{"below range", -7, 0},
		{"lower bound", 0, 0},
		{"inside range", 42, 42},
		{"upper bound", 100, 100},
		{"above range", 250, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampHealth(tt.health); got != tt.want {
				t.Errorf("ClampHealth(%d) = %d, want %d", tt.health, got, tt.want)
			}
		})
	}
}

func TestDecayPredator(t *testing.T) {
	tests := []struct {
		health, want int
	}{
		{100, 99},
		{40, 39},
		{1, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := DecayPredator(tt.health); got != tt.want {
			t.Errorf("DecayPredator(%d) = %d, want %d", tt.health, got, tt.want)
		}
	}
}

func TestRegenPrey(t *testing.T) {
	tests := []struct {
		health, want int
	}{
		{10, 15},
		{94, 99},
		{96, 100},
		{100, 100},
	}
	for _, tt := range tests {
		if got := RegenPrey(tt.health); got != tt.want {
			t.Errorf("RegenPrey(%d) = %d, want %d", tt.health, got, tt.want)
		}
	}
}

func TestIsStarved(t *testing.T) {
	if !IsStarved(0) {
		t.Error("expected predator at 0 health to starve")
	}
	if IsStarved(1) {
		t.Error("expected predator at 1 health to survive")
	}
}

func TestApplyPredation(t *testing.T) {
	tests := []struct {
		name           string
		predator, prey int
		want           int
	}{
		{"quarter of prey health", 39, 20, 44},
		{"rounds bonus down", 50, 23, 55},
		{"prey too weak for bonus", 50, 3, 50},
		{"capped at max", 90, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPredation(tt.predator, tt.prey); got != tt.want {
				t.Errorf("ApplyPredation(%d, %d) = %d, want %d", tt.predator, tt.prey, got, tt.want)
			}
		})
	}
}

func TestShouldReproduceIsUnconditional(t *testing.T) {
	for _, health := range []int{0, 1, 10, 99, 100} {
		if !ShouldReproduce(health) {
			t.Errorf("ShouldReproduce(%d) = false, want true", health)
		}
	}
}
