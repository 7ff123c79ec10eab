package core

import "testing"

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionUndo, ActionRestart, ActionHint, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Fatal("frame should only contain Left")
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop actions")
	}
	if !c.Has(ActionLeft) {
		t.Error("clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame has no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	for _, a := range []Action{ActionRight, ActionDown, ActionRight, ActionUndo} {
		f.Set(a)
	}

	want := []Action{ActionRight, ActionDown, ActionRight, ActionUndo}
	got := f.Ordered()
	if len(got) != len(want) {
		t.Fatalf("Ordered() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	c := f.Clone()
	f.Clear()
	if len(f.Ordered()) != 0 {
		t.Error("Clear should drop queued events")
	}
	if len(c.Ordered()) != len(want) {
		t.Error("clone should keep its own events")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(0) != ColorGray {
		t.Error("empty cell should be gray")
	}
	if TileColor(2) != ColorWhite {
		t.Errorf("TileColor(2) = %v", TileColor(2))
	}
	if TileColor(2048) != ColorBrightMagenta {
		t.Errorf("TileColor(2048) = %v", TileColor(2048))
	}
	if TileColor(8192) != TileColor(2048) {
		t.Error("values past 2048 should reuse the 2048 color")
	}
}
