package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionFlap) {
		t.Error("empty frame should not have actions")
	}

	f.Add(ActionFlap)
	f.Add(ActionFlap)
	f.Add(ActionQuit)

	if f.Count(ActionFlap) != 2 {
		t.Errorf("Count(Flap) = %d, expected 2", f.Count(ActionFlap))
	}
	if !f.Has(ActionQuit) {
		t.Error("frame should have Quit")
	}

	f.Clear()
	if f.Has(ActionFlap) || f.Has(ActionQuit) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlap.String() != "Flap" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
	if EventCollision.String() != "collision" || EventKind(99).String() != "unknown" {
		t.Error("unexpected event names")
	}
}
