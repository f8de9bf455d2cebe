package model

// Kind is the occupant of a grid cell
type Kind uint8

const (
	Empty Kind = iota
	Predator
	Prey
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Predator:
		return "predator"
	case Prey:
		return "prey"
	default:
		return "unknown"
	}
}

// Source is the random draw used for initialization and neighbor picks.
// *rand.Rand from math/rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Initial kind distribution: a uniform draw in [0, spawnRange) above
// emptyAbove is Empty, above preyAbove is Prey, otherwise Predator.
const (
	spawnRange = 101
	emptyAbove = 50
	preyAbove  = 5
)

// RandomKind draws a kind with roughly 50% Empty, 45% Prey and 5% Predator
func RandomKind(rng Source) Kind {
	switch v := rng.Intn(spawnRange); {
	case v > emptyAbove:
		return Empty
	case v > preyAbove:
		return Prey
	default:
		return Predator
	}
}
