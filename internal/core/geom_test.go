package core

import "testing"

func TestRectTouches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"shared vertical edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), true},
		{"shared horizontal edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), true},
		{"shared corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 4, 4), true},
		{"one pixel gap horizontal", NewRect(0, 0, 10, 10), NewRect(11, 0, 10, 10), false},
		{"one pixel gap vertical", NewRect(0, 0, 10, 10), NewRect(0, 11, 10, 10), false},
		{"far apart", NewRect(0, 0, 4, 4), NewRect(100, 100, 4, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Touches(tc.b); got != tc.expected {
				t.Errorf("Touches() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Touches(tc.a); got != tc.expected {
				t.Errorf("Touches() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectOffset(t *testing.T) {
	r := NewRect(10, 20, 5, 6).Offset(-3, 4)
	if r.X != 7 || r.Y != 24 || r.W != 5 || r.H != 6 {
		t.Errorf("Offset() = %+v, expected {7 24 5 6}", r)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{16, 8, 2},
		{17, 8, 3},
		{0, 8, 0},
		{1, 16, 1},
		{-9, 8, -1},
	}

	for _, tc := range tests {
		if got := CeilDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
