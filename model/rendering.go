package model

import (
	"fmt"
	"io"
)

const (
	gridPosPredator = "██"
	gridPosPrey     = "░░"
	gridPosEmpty    = "  "

	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws the grid as text glyphs, two columns per cell
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			switch g.kinds[g.Index(x, y)] {
			case Predator:
				fmt.Fprint(r.Out, gridPosPredator)
			case Prey:
				fmt.Fprint(r.Out, gridPosPrey)
			default:
				fmt.Fprint(r.Out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, clearScreen)
}
