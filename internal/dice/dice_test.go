package dice

import (
	"errors"
	"testing"
)

func TestFaceWithinRange(t *testing.T) {
	roller := NewRoller(1)
	for i := 0; i < 1000; i++ {
		face, err := roller.Face(6)
		if err != nil {
			t.Fatalf("face: %v", err)
		}
		if face < 1 || face > 6 {
			t.Fatalf("face %d out of range", face)
		}
	}
}

func TestFaceDeterministicBySeed(t *testing.T) {
	first := NewRoller(42)
	second := NewRoller(42)
	for i := 0; i < 100; i++ {
		a, err := first.Face(6)
		if err != nil {
			t.Fatalf("face: %v", err)
		}
		b, err := second.Face(6)
		if err != nil {
			t.Fatalf("face: %v", err)
		}
		if a != b {
			t.Fatalf("roll %d: %d != %d", i, a, b)
		}
	}
}

func TestNewRandomRollerRollsValidFaces(t *testing.T) {
	first, err := NewRandomRoller()
	if err != nil {
		t.Fatalf("new random roller: %v", err)
	}
	for i := 0; i < 100; i++ {
		face, err := first.Face(6)
		if err != nil {
			t.Fatalf("face: %v", err)
		}
		if face < 1 || face > 6 {
			t.Fatalf("face %d out of range", face)
		}
	}
}

func TestFaceRejectsInvalidSides(t *testing.T) {
	roller := NewRoller(1)
	if _, err := roller.Face(0); !errors.Is(err, ErrInvalidSides) {
		t.Fatalf("expected ErrInvalidSides, got %v", err)
	}
}

func TestRerollNeverRepeatsCurrent(t *testing.T) {
	roller := NewRoller(7)
	for current := 1; current <= 6; current++ {
		for i := 0; i < 500; i++ {
			face, err := roller.Reroll(6, current)
			if err != nil {
				t.Fatalf("reroll: %v", err)
			}
			if face == current {
				t.Fatalf("reroll repeated face %d", current)
			}
			if face < 1 || face > 6 {
				t.Fatalf("face %d out of range", face)
			}
		}
	}
}

func TestRerollCoversAllOtherFaces(t *testing.T) {
	roller := NewRoller(3)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		face, err := roller.Reroll(6, 4)
		if err != nil {
			t.Fatalf("reroll: %v", err)
		}
		seen[face] = true
	}
	for face := 1; face <= 6; face++ {
		if face == 4 {
			continue
		}
		if !seen[face] {
			t.Fatalf("face %d never rolled", face)
		}
	}
}

func TestRerollSingleSidedDie(t *testing.T) {
	roller := NewRoller(1)
	face, err := roller.Reroll(1, 1)
	if err != nil {
		t.Fatalf("reroll: %v", err)
	}
	if face != 1 {
		t.Fatalf("expected 1, got %d", face)
	}
}

func TestRerollUnrolledDieActsLikeFace(t *testing.T) {
	roller := NewRoller(1)
	for i := 0; i < 100; i++ {
		face, err := roller.Reroll(6, 0)
		if err != nil {
			t.Fatalf("reroll: %v", err)
		}
		if face < 1 || face > 6 {
			t.Fatalf("face %d out of range", face)
		}
	}
}

func TestRollAll(t *testing.T) {
	roller := NewRoller(5)
	faces, err := roller.RollAll([]int{6, 6, 6})
	if err != nil {
		t.Fatalf("roll all: %v", err)
	}
	if len(faces) != 3 {
		t.Fatalf("expected 3 faces, got %d", len(faces))
	}
	for _, face := range faces {
		if face < 1 || face > 6 {
			t.Fatalf("face %d out of range", face)
		}
	}
}
