// Package random provides seed generation for dice rollers.
//
// Rollers are deterministic once seeded, so tests pass fixed seeds while
// production draws one high-entropy seed per roller from crypto/rand.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a seed from the system entropy source.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
