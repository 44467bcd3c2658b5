package utils

import (
	"testing"

	"go-reverse-td/internal/defs"
)

func TestChooseWeightedIsSeeded(t *testing.T) {
	entries := []defs.SpawnEntry{{UnitID: "scout", Weight: 5}, {UnitID: "bruiser", Weight: 3}, {UnitID: "tank", Weight: 2}}
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 50; i++ {
		if x, y := a.ChooseWeighted(entries), b.ChooseWeighted(entries); x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
	}
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.ChooseWeighted(nil); got != "" {
		t.Errorf("empty table returned %q", got)
	}
	if got := s.ChooseWeighted([]defs.SpawnEntry{{UnitID: "a"}, {UnitID: "b"}}); got != "a" {
		t.Errorf("zero weights returned %q, want first entry", got)
	}
	only := []defs.SpawnEntry{{UnitID: "a", Weight: 0}, {UnitID: "b", Weight: 4}}
	for i := 0; i < 20; i++ {
		if got := s.ChooseWeighted(only); got != "b" {
			t.Fatalf("zero-weight entry chosen")
		}
	}
}

func TestMathHelpers(t *testing.T) {
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Error("Lerp")
	}
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp")
	}
	if Wrap(-10, 900) != 890 || Wrap(905, 900) != 5 {
		t.Error("Wrap")
	}
}
