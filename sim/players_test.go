package sim

import "testing"

func TestPlayerRegistryAddIsIdempotent(t *testing.T) {
	r := NewPlayerRegistry()
	p1 := r.Add(1, "Alice", false)
	p2 := r.Add(1, "Someone Else", false)
	if p1 != p2 {
		t.Error("re-adding an existing player id should return the same instance")
	}
	if p1.Name != "Alice" {
		t.Errorf("Name = %q, want Alice", p1.Name)
	}
}

func TestPlayerRegistryCombatantsExcludesObservers(t *testing.T) {
	r := NewPlayerRegistry()
	r.Add(1, "Player", false)
	r.Add(2, "Watcher", true)

	combatants := r.Combatants()
	if len(combatants) != 1 || combatants[0].ID != 1 {
		t.Errorf("Combatants() = %+v, want just player 1", combatants)
	}
}

func TestAwardCaptureAndDestruction(t *testing.T) {
	r := NewPlayerRegistry()
	r.Add(1, "Player", false)

	r.AwardCapture(1, 2)
	r.AwardDestruction(1, 3)

	p := r.Get(1)
	if p.CapturePoints != 2 || p.DestructionPoints != 3 {
		t.Errorf("CapturePoints=%d DestructionPoints=%d, want 2,3", p.CapturePoints, p.DestructionPoints)
	}
}
