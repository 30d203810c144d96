package core

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalize()
	if math.Abs(n.Length()-1.0) > 1e-9 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("normalize(3,4) = %+v, want (0.6, 0.8)", n)
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got %+v", zero)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(0, 380)
	if math.Abs(v.X-380) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("FromAngle(0, 380) = %+v, want (380, 0)", v)
	}

	v = FromAngle(math.Pi/2, 1)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Errorf("FromAngle(pi/2, 1) = %+v, want (0, 1)", v)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"separate", NewRect(0, 0, 5, 5), NewRect(20, 20, 5, 5), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Vec2{X: 100, Y: 50}, 14, 110)
	if r.X != 93 || r.Y != -5 || r.W != 14 || r.H != 110 {
		t.Errorf("RectAround = %+v", r)
	}
	c := r.Center()
	if c.X != 100 || c.Y != 50 {
		t.Errorf("Center = %+v, want (100, 50)", c)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %v", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %v", got)
	}
}

func TestFoldY(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		height float64
		want   float64
	}{
		{"in range", 300, 600, 300},
		{"below zero mirrors", -100, 600, 100},
		{"above height mirrors", 700, 600, 500},
		{"double fold below", -700, 600, 500},
		{"double fold above", 1300, 600, 100},
		{"at bound", 600, 600, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FoldY(tt.y, tt.height)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FoldY(%v, %v) = %v, want %v", tt.y, tt.height, got, tt.want)
			}
			if got < 0 || got > tt.height {
				t.Errorf("FoldY result %v outside [0, %v]", got, tt.height)
			}
		})
	}
}

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionLeftUp)
	f.Release(ActionLeftDown)

	if !f.WasPressed(ActionLeftUp) {
		t.Error("expected LeftUp press edge")
	}
	if !f.WasReleased(ActionLeftDown) {
		t.Error("expected LeftDown release edge")
	}
	if f.WasPressed(ActionLeftDown) {
		t.Error("release should not register as press")
	}

	f.Clear()
	if f.WasPressed(ActionLeftUp) || f.WasReleased(ActionLeftDown) {
		t.Error("Clear should drop all edges")
	}
}
