package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPause) {
		t.Error("Fresh frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set action should be reported")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	f.SetClick(12, 7)
	f.Digit = 3

	f.Clear()

	if f.Has(ActionQuit) || f.Click || f.Digit != 0 {
		t.Error("Clear should drop actions, clicks, and digits")
	}
	if f.MouseX != 12 || f.MouseY != 7 {
		t.Error("Clear must keep the last pointer position")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDebug)
	f.SetMotion(3, 4)

	c := f.Clone()
	c.Set(ActionQuit)

	if f.Has(ActionQuit) {
		t.Error("Mutating the clone must not affect the original")
	}
	if !c.Has(ActionDebug) || !c.Motion || c.MouseX != 3 {
		t.Error("Clone should carry actions and pointer state")
	}
}
