// Package walk_test validates the deterministic RNG factory and stream
// derivation used to partition randomness across parallel walk batches.
package walk_test

import (
	"testing"

	"github.com/taggraph/pixie/walk"
)

// TestRandFromSeed_Repeatable checks that equal seeds yield equal streams
// and that seed 0 follows the stable-default policy.
func TestRandFromSeed_Repeatable(t *testing.T) {
	a := walk.RandFromSeed(97)
	b := walk.RandFromSeed(97)
	for i := 0; i < 16; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}

	// seed 0 must be stable across calls, not time-based
	z1 := walk.RandFromSeed(0).Int63()
	z2 := walk.RandFromSeed(0).Int63()
	if z1 != z2 {
		t.Errorf("seed 0 not stable: %d vs %d", z1, z2)
	}
}

// TestDeriveRand_Streams checks that (parent, stream) identifies a stream:
// equal pairs reproduce, distinct streams decorrelate.
func TestDeriveRand_Streams(t *testing.T) {
	same1 := walk.DeriveRand(42, 3)
	same2 := walk.DeriveRand(42, 3)
	if same1.Int63() != same2.Int63() {
		t.Errorf("identical (parent,stream) produced different draws")
	}

	s0 := walk.DeriveRand(42, 0)
	s1 := walk.DeriveRand(42, 1)
	equal := 0
	for i := 0; i < 16; i++ {
		if s0.Int63() == s1.Int63() {
			equal++
		}
	}
	if equal == 16 {
		t.Errorf("adjacent streams are identical; derivation is broken")
	}
}
