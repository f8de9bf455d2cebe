package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-predprey/rules"
)

// historySize is how many recent grid hashes are kept for stagnation detection
const historySize = 5

// Grid is a fixed-size arena of cells stored as two parallel row-major arrays
type Grid struct {
	width   int
	height  int
	kinds   []Kind
	healths []int
	history []string // Store recent grid states for stagnation detection
}

// NewGrid creates an all-Empty grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:   width,
		height:  height,
		kinds:   make([]Kind, width*height),
		healths: make([]int, width*height),
	}
}

// NewPopulatedGrid creates a grid and fills it with Populate
func NewPopulatedGrid(width, height int, rng Source) *Grid {
	g := NewGrid(width, height)
	g.Populate(rng)
	return g
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// Index returns the linear index of (x, y)
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set places a kind with the given health at (x, y). Health is clamped and
// Empty cells always hold zero health. Out of range coordinates are ignored.
func (g *Grid) Set(x, y int, kind Kind, health int) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.Index(x, y)
	g.kinds[i] = kind
	if kind == Empty {
		g.healths[i] = rules.MinHealth
		return
	}
	g.healths[i] = rules.ClampHealth(health)
}

// Get returns the kind and health at (x, y); out of range cells read as Empty
func (g *Grid) Get(x, y int) (Kind, int) {
	if !g.InBounds(x, y) {
		return Empty, rules.MinHealth
	}
	i := g.Index(x, y)
	return g.kinds[i], g.healths[i]
}

// Clear empties every cell
func (g *Grid) Clear() {
	for i := range g.kinds {
		g.kinds[i] = Empty
		g.healths[i] = rules.MinHealth
	}
	g.history = nil
}

// Populate fills the grid with independently drawn kinds, creatures at full health
func (g *Grid) Populate(rng Source) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.Set(x, y, RandomKind(rng), rules.MaxHealth)
		}
	}
	g.history = nil
}

// Census is a population snapshot of the grid
type Census struct {
	Empty      int
	Predators  int
	Prey       int
	MeanHealth float64 // Mean health over predators and prey
}

// Creatures returns the number of non-Empty cells
func (c Census) Creatures() int {
	return c.Predators + c.Prey
}

// Extinct reports whether no creature is left
func (c Census) Extinct() bool {
	return c.Creatures() == 0
}

// Census counts the cells of each kind
func (g *Grid) Census() (c Census) {
	total := 0
	for i, kind := range g.kinds {
		switch kind {
		case Empty:
			c.Empty++
			continue
		case Predator:
			c.Predators++
		case Prey:
			c.Prey++
		}
		total += g.healths[i]
	}
	if n := c.Creatures(); n > 0 {
		c.MeanHealth = float64(total) / float64(n)
	}
	return
}

// GetGridHash returns an MD5 hash of the current kinds and healths
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for i, kind := range g.kinds {
		h.Write([]byte{byte(kind), byte(g.healths[i])})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state matches one of the last three recorded states
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for _, past := range g.history[len(g.history)-3:] {
		if past == currentHash {
			return true
		}
	}
	return false
}
