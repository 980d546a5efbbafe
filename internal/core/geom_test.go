package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"player on enemy", NewRectF(100, 400, 40, 80), NewRectF(120, 400, 40, 80), true},
		{"touching edge", NewRectF(0, 0, 40, 80), NewRectF(40, 0, 40, 80), false},
		{"fractional overlap", NewRectF(0, 0, 40, 80), NewRectF(39.5, 79.5, 10, 10), true},
		{"above", NewRectF(0, 0, 40, 80), NewRectF(0, 80.1, 40, 80), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Vec{X: 500, Y: 400}, 20, 40)
	if r.X != 490 || r.Y != 380 {
		t.Errorf("RectAround top-left = (%v, %v), expected (490, 380)", r.X, r.Y)
	}
	if c := r.Center(); c.X != 500 || c.Y != 400 {
		t.Errorf("Center() = %+v, expected (500, 400)", c)
	}
}

func TestRectFCells(t *testing.T) {
	tests := []struct {
		name     string
		r        RectF
		expected Rect
	}{
		{"aligned", NewRectF(100, 400, 40, 80), NewRect(5, 10, 2, 2)},
		{"negative floors down", NewRectF(-10, -1, 20, 40), NewRect(-1, -1, 1, 1)},
		{"tiny still one cell", NewRectF(0, 0, 2, 2), NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Cells(20, 40); got != tc.expected {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestVecOps(t *testing.T) {
	v := Vec{X: 1, Y: 2}.Add(Vec{X: 3, Y: 4}).Sub(Vec{X: 1, Y: 1}).Scale(2)
	if v.X != 6 || v.Y != 10 {
		t.Errorf("vector ops = %+v, expected (6, 10)", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, -7, 7, 5.5},
		{-7.5, -7, 7, -7},
		{7.5, -7, 7, 7},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(3) != 1 || Sign(-0.5) != -1 || Sign(0) != 0 {
		t.Error("Sign should return 1, -1 and 0 for positive, negative and zero")
	}
}
