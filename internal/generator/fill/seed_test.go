package fill

import (
	"math/rand"
	"testing"
)

func TestSeedPlacesAtLeastTheAnchorLetter(t *testing.T) {
	dict := newTestDict(t, "KORSORD", "KATT\nHATT\nATT")
	rng := rand.New(rand.NewSource(9))
	cw := New(6, 6, dict, rng)

	if err := cw.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(cw.Placements) == 0 {
		t.Fatal("expected Seed to apply at least the anchor letter")
	}
}

func TestSeedWithoutSpecialWordsStillAnchors(t *testing.T) {
	dict := newTestDict(t, "", "")
	rng := rand.New(rand.NewSource(11))
	cw := New(3, 3, dict, rng)

	if err := cw.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(cw.Placements) != 1 {
		t.Fatalf("expected exactly the anchor letter placement with no special words, got %+v", cw.Placements)
	}
}

