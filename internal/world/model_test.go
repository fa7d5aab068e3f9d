package world

import "testing"

func TestWorld_RulePrecedence(t *testing.T) {
	w := &World{
		Blocked: []byte{1, 3, 4},
		Heal:    []byte{2, 3, 4},
		Damage:  []byte{3},
	}
	if got := w.Rule(3); got != RuleDamage {
		t.Fatalf("id on all three lists should resolve damage, got %s", got)
	}
	if got := w.Rule(4); got != RuleHeal {
		t.Fatalf("id on heal and blocked should resolve heal, got %s", got)
	}
	if got := w.Rule(1); got != RuleBlocked {
		t.Fatalf("id on blocked only should resolve blocked, got %s", got)
	}
	if got := w.Rule(9); got != RuleAllowed {
		t.Fatalf("unlisted id should be allowed, got %s", got)
	}
}

func TestWorld_At(t *testing.T) {
	w := &World{Width: 2, Height: 2, Terrain: []byte{1, 2, 3, 4}}
	if got := w.At(0, 0); got != 1 {
		t.Fatalf("At(0,0) = %d, want 1", got)
	}
	if got := w.At(1, 1); got != 4 {
		t.Fatalf("At(1,1) = %d, want 4", got)
	}
	if got := w.At(-1, 0); got != 0 {
		t.Fatalf("out of bounds At = %d, want 0", got)
	}
	if got := w.At(0, 2); got != 0 {
		t.Fatalf("out of bounds At = %d, want 0", got)
	}
}

func TestWorld_AtShortTerrain(t *testing.T) {
	// A header can declare more cells than the stream carried; reads past
	// the buffer come back 0 instead of panicking.
	w := &World{Width: 2, Height: 2, Terrain: []byte{1}}
	if got := w.At(1, 1); got != 0 {
		t.Fatalf("At past buffer = %d, want 0", got)
	}
}

func TestWorld_RuleAt(t *testing.T) {
	w := &World{
		Width:   2,
		Height:  1,
		Terrain: []byte{5, 6},
		Blocked: []byte{5},
	}
	if got := w.RuleAt(0, 0); got != RuleBlocked {
		t.Fatalf("RuleAt(0,0) = %s, want blocked", got)
	}
	if got := w.RuleAt(1, 0); got != RuleAllowed {
		t.Fatalf("RuleAt(1,0) = %s, want allowed", got)
	}
}
