package rules

// Health bounds and the fixed amounts the predator/prey rules move health by.
const (
	MinHealth = 0
	MaxHealth = 100

	PredatorDecay    = 1
	PreyRegen        = 5
	SpawnHealth      = 10
	PredationDivisor = 4
)

// ClampHealth bounds health to [MinHealth, MaxHealth]
func ClampHealth(health int) int {
	return min(max(health, MinHealth), MaxHealth)
}

// DecayPredator applies the per-frame health loss of a predator, floored at MinHealth
func DecayPredator(health int) int {
	return max(health-PredatorDecay, MinHealth)
}

// RegenPrey applies the per-frame health gain of a prey, capped at MaxHealth
func RegenPrey(health int) int {
	return min(health+PreyRegen, MaxHealth)
}

// IsStarved reports whether a predator with the given health dies this turn
func IsStarved(health int) bool {
	return health <= MinHealth
}

/*
ApplyPredation returns the predator's health after eating a prey.

The bonus is a quarter of the prey's health (rounded down), capped at MaxHealth.
*/
func ApplyPredation(predatorHealth, preyHealth int) int {
	return min(predatorHealth+preyHealth/PredationDivisor, MaxHealth)
}

// ShouldReproduce reports whether a prey spawns offspring this turn.
// Reproduction is currently unconditional.
func ShouldReproduce(health int) bool {
	return true
}
