package core

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, want 1", v.Len())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("Normalize(3,4) = %+v, want (0.6, 0.8)", v)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	v := Vec2{}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("Zero vector should normalize to itself, got %+v", v)
	}
	// No NaN leaks out.
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Error("Zero normalize must not produce NaN")
	}
}

func TestVec2AddScale(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -1}).Scale(2)
	if v.X != 8 || v.Y != 2 {
		t.Errorf("Add+Scale = %+v, want (8, 2)", v)
	}
}
