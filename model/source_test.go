package model

import "image"

// scriptedSource replays a fixed sequence of draws. Once exhausted it
// returns n/2, which is a zero offset for neighbor picks.
type scriptedSource struct {
	draws []int
	pos   int
}

func (s *scriptedSource) Intn(n int) int {
	if s.pos >= len(s.draws) {
		return n / 2
	}
	v := s.draws[s.pos]
	s.pos++
	return v
}

// scriptOffsets builds the draws for one Step over a width x height grid so
// that each cell in picks chooses the given neighbor offset. Cells not in
// picks choose themselves.
func scriptOffsets(width, height int, picks map[image.Point]image.Point) *scriptedSource {
	s := &scriptedSource{}
	for y := height - 1; y >= 0; y-- {
		for x := width - 1; x >= 0; x-- {
			off := picks[image.Pt(x, y)]
			s.draws = append(s.draws, off.X+1, off.Y+1)
		}
	}
	return s
}
