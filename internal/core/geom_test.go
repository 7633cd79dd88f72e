package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Opposite(); got != tc.expected {
				t.Errorf("Opposite() = %v, expected %v", got, tc.expected)
			}
			if got := tc.dir.Opposite().Opposite(); got != tc.dir {
				t.Errorf("Opposite twice = %v, expected %v", got, tc.dir)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	start := Point{X: 5, Y: 5}
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Point{X: 5, Y: 4}},
		{DirDown, Point{X: 5, Y: 6}},
		{DirLeft, Point{X: 4, Y: 5}},
		{DirRight, Point{X: 6, Y: 5}},
	}

	for _, tc := range tests {
		if got := start.Add(tc.dir.Delta()); got != tc.expected {
			t.Errorf("%v: moved to %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		parsed, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.String(), err)
		}
		if parsed != d {
			t.Errorf("ParseDirection(%q) = %v", d.String(), parsed)
		}
	}

	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}

	var d Direction
	if err := d.UnmarshalText([]byte("up")); err != nil || d != DirUp {
		t.Errorf("UnmarshalText(up) = %v, %v", d, err)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestActionDirection(t *testing.T) {
	if d, ok := ActionLeft.Direction(); !ok || d != DirLeft {
		t.Errorf("ActionLeft.Direction() = %v, %v", d, ok)
	}
	if _, ok := ActionConfirm.Direction(); ok {
		t.Error("ActionConfirm should not map to a direction")
	}
}
