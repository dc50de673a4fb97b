package game

import (
	"math/rand"
	"time"
)

// DiceRoller handles random sampling for the game
type DiceRoller struct {
	rng *rand.Rand
}

// NewDiceRoller creates a new dice roller with a time-seeded random
// number generator
func NewDiceRoller() *DiceRoller {
	return NewSeededDiceRoller(time.Now().UnixNano())
}

// NewSeededDiceRoller creates a dice roller with a fixed seed for
// reproducible outcomes
func NewSeededDiceRoller(seed int64) *DiceRoller {
	return &DiceRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll rolls a dice with the specified number of sides
func (dr *DiceRoller) Roll(sides int) int {
	return dr.rng.Intn(sides) + 1
}

// RollRange returns a uniform integer in [min, max]
func (dr *DiceRoller) RollRange(min, max int) int {
	return dr.rng.Intn(max-min+1) + min
}

// Chance returns a fresh uniform sample in [0, 1)
func (dr *DiceRoller) Chance() float64 {
	return dr.rng.Float64()
}
