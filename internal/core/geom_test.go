package core

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{
			name:     "point inside",
			r:        NewRect(0, 0, 10, 10),
			x:        5,
			y:        5,
			expected: true,
		},
		{
			name:     "point on top-left corner",
			r:        NewRect(0, 0, 10, 10),
			x:        0,
			y:        0,
			expected: true,
		},
		{
			name:     "point on right edge (exclusive)",
			r:        NewRect(0, 0, 10, 10),
			x:        10,
			y:        5,
			expected: false,
		},
		{
			name:     "point on bottom edge (exclusive)",
			r:        NewRect(0, 0, 10, 10),
			x:        5,
			y:        10,
			expected: false,
		},
		{
			name:     "point outside",
			r:        NewRect(5, 5, 3, 3),
			x:        2,
			y:        2,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name           string
		val, min, max  int
		expected       int
	}{
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"within range", 5, 0, 10, 5},
		{"at minimum", 0, 0, 10, 0},
		{"at maximum", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Clamp(tc.val, tc.min, tc.max)
			if result != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	if Abs(-7) != 7 {
		t.Errorf("Abs(-7) = %d, expected 7", Abs(-7))
	}
	if Abs(7) != 7 {
		t.Errorf("Abs(7) = %d, expected 7", Abs(7))
	}
	if Abs(0) != 0 {
		t.Errorf("Abs(0) = %d, expected 0", Abs(0))
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Errorf("Min(3, 5) = %d, expected 3", Min(3, 5))
	}
	if Min(5, 3) != 3 {
		t.Errorf("Min(5, 3) = %d, expected 3", Min(5, 3))
	}
	if Max(3, 5) != 5 {
		t.Errorf("Max(3, 5) = %d, expected 5", Max(3, 5))
	}
	if Max(5, 3) != 5 {
		t.Errorf("Max(5, 3) = %d, expected 5", Max(5, 3))
	}
}
