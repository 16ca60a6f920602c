package core

import "math/rand"

// Dice is the random source behind roll and flip.
type Dice interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

type randDice struct{}

func (randDice) IntN(n int) int { return rand.Intn(n) }
