// Package dice implements the dice-rolling logic for character creation.
package dice

import (
	"errors"
	"math/rand"

	"github.com/arkhamworks/investigator/internal/platform/random"
)

// ErrInvalidSides indicates a die specification has no faces.
var ErrInvalidSides = errors.New("dice must have at least one side")

// Roller produces die faces from a seeded pseudo-random source.
//
// Roller is deterministic with respect to its seed: the same seed and the
// same sequence of calls always produce the same faces. Seeds should come
// from the random package in production.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller from a seed.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomRoller creates a roller seeded from the system entropy source.
// This is the production constructor; tests use NewRoller with a fixed seed.
func NewRandomRoller() (*Roller, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewRoller(seed), nil
}

// Face rolls one die, returning a value in [1, sides] uniformly.
func (r *Roller) Face(sides int) (int, error) {
	if sides < 1 {
		return 0, ErrInvalidSides
	}
	return r.rng.Intn(sides) + 1, nil
}

// Reroll rolls one die, excluding its current face: the result is uniform
// over the remaining sides and never equals current. A one-sided die is the
// explicit exception since it has no other face. When current is outside
// [1, sides] (e.g. an unrolled die), Reroll behaves like Face.
func (r *Roller) Reroll(sides, current int) (int, error) {
	if sides < 1 {
		return 0, ErrInvalidSides
	}
	if sides == 1 {
		return 1, nil
	}
	if current < 1 || current > sides {
		return r.Face(sides)
	}

	// Draw from the sides-1 other faces and skip over the current one.
	face := r.rng.Intn(sides-1) + 1
	if face >= current {
		face++
	}
	return face, nil
}

// RollAll rolls one face per entry of sides, e.g. {6, 6, 6} for 3d6.
func (r *Roller) RollAll(sides []int) ([]int, error) {
	faces := make([]int, len(sides))
	for i, s := range sides {
		face, err := r.Face(s)
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return faces, nil
}
