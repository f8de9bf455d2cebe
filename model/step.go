package model

import (
	"image"

	"github.com/sheikhrachel/go-predprey/rules"
)

// StepResult counts the interactions resolved during one update pass
type StepResult struct {
	Moves       int
	Predations  int
	Births      int
	Starvations int
}

// Add accumulates another pass into r
func (r *StepResult) Add(o StepResult) {
	r.Moves += o.Moves
	r.Predations += o.Predations
	r.Births += o.Births
	r.Starvations += o.Starvations
}

// pickOffset draws a neighbor offset in {-1, 0, 1} for each axis, x first
func pickOffset(rng Source) (dx, dy int) {
	dx = rng.Intn(3) - 1
	dy = rng.Intn(3) - 1
	return
}

/*
Step advances the grid by one frame, mutating it in place.

Cells are visited from the last row and column to the first. Each cell decays
or regenerates, picks one random neighbor and resolves the interaction for the
(cell, neighbor) kind pair. The resulting color of the cell is written to out
when out is non-nil. A cell changed earlier in the pass may be visited again
later in the same pass.
*/
func (g *Grid) Step(rng Source, out *image.NRGBA) (res StepResult) {
	for y := g.height - 1; y >= 0; y-- {
		for x := g.width - 1; x >= 0; x-- {
			g.stepCell(rng, x, y, &res)

			if out != nil {
				i := g.Index(x, y)
				out.SetNRGBA(x, y, Colorize(g.kinds[i], g.healths[i]))
			}
		}
	}
	return
}

func (g *Grid) stepCell(rng Source, x, y int, res *StepResult) {
	i := g.Index(x, y)

	switch g.kinds[i] {
	case Empty:
	case Predator:
		g.healths[i] = rules.DecayPredator(g.healths[i])
	case Prey:
		g.healths[i] = rules.RegenPrey(g.healths[i])
	}

	dx, dy := pickOffset(rng)
	nx, ny := x+dx, y+dy

	if !g.InBounds(nx, ny) || (nx == x && ny == y) {
		return
	}
	n := g.Index(nx, ny)

	switch g.kinds[i] {
	case Empty:
	case Predator:
		if rules.IsStarved(g.healths[i]) {
			g.kinds[i] = Empty
			g.healths[i] = rules.MinHealth
			res.Starvations++
			return
		}

		switch g.kinds[n] {
		case Empty:
			g.move(i, n)
			res.Moves++
		case Predator:
		case Prey:
			g.kinds[n] = Predator
			g.healths[i] = rules.ApplyPredation(g.healths[i], g.healths[n])
			res.Predations++
		}
	case Prey:
		reproduce := rules.ShouldReproduce(g.healths[i])
		if reproduce {
			g.healths[i] = rules.SpawnHealth
		}

		switch g.kinds[n] {
		case Empty:
			if reproduce {
				g.kinds[n] = Prey
				g.healths[n] = rules.SpawnHealth
				res.Births++
			} else {
				g.move(i, n)
				res.Moves++
			}
		case Predator, Prey:
		}
	}
}

// move relocates the occupant of cell i to cell target, leaving i Empty
func (g *Grid) move(i, target int) {
	g.kinds[target] = g.kinds[i]
	g.healths[target] = g.healths[i]
	g.kinds[i] = Empty
	g.healths[i] = rules.MinHealth
}
