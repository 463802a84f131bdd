package geometry

import "testing"

func TestOccupiedRange(t *testing.T) {
	tests := []struct {
		name     string
		position int
		uHeight  float64
		expected URange
	}{
		{name: "1U", position: 5, uHeight: 1, expected: URange{Bottom: 5, Top: 5}},
		{name: "2U", position: 1, uHeight: 2, expected: URange{Bottom: 1, Top: 2}},
		{name: "4U", position: 10, uHeight: 4, expected: URange{Bottom: 10, Top: 13}},
		{name: "half U", position: 3, uHeight: 0.5, expected: URange{Bottom: 3, Top: 3}},
		{name: "one and a half U", position: 3, uHeight: 1.5, expected: URange{Bottom: 3, Top: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OccupiedRange(tt.position, tt.uHeight)
			if result != tt.expected {
				t.Errorf("OccupiedRange(%d, %v) = %+v, expected %+v", tt.position, tt.uHeight, result, tt.expected)
			}
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     URange
		expected bool
	}{
		{name: "identical", a: URange{1, 2}, b: URange{1, 2}, expected: true},
		{name: "shared top and bottom", a: URange{1, 2}, b: URange{2, 3}, expected: true},
		{name: "contained", a: URange{1, 10}, b: URange{4, 5}, expected: true},
		{name: "adjacent", a: URange{1, 2}, b: URange{3, 4}, expected: false},
		{name: "gap", a: URange{1, 2}, b: URange{5, 6}, expected: false},
		{name: "reversed order", a: URange{5, 6}, b: URange{1, 2}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := RangesOverlap(tt.a, tt.b); result != tt.expected {
				t.Errorf("RangesOverlap(%+v, %+v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
			if result := RangesOverlap(tt.b, tt.a); result != tt.expected {
				t.Errorf("RangesOverlap(%+v, %+v) = %v, expected %v (swapped)", tt.b, tt.a, result, tt.expected)
			}
		})
	}
}

func TestAdjacent(t *testing.T) {
	if !Adjacent(URange{1, 2}, URange{3, 4}) {
		t.Error("Adjacent(1-2, 3-4) = false, expected true")
	}
	if Adjacent(URange{1, 2}, URange{5, 6}) {
		t.Error("Adjacent(1-2, 5-6) = true, expected false")
	}
	if Adjacent(URange{3, 4}, URange{1, 2}) {
		t.Error("Adjacent(3-4, 1-2) = true, expected false")
	}
}

func TestWithin(t *testing.T) {
	if !Within(URange{1, 42}, 42) {
		t.Error("Within(1-42, 42) = false, expected true")
	}
	if Within(URange{0, 1}, 42) {
		t.Error("Within(0-1, 42) = true, expected false")
	}
	if Within(URange{42, 43}, 42) {
		t.Error("Within(42-43, 42) = true, expected false")
	}
}
