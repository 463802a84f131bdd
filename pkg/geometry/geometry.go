// Package geometry holds the U-interval arithmetic shared by the placement
// validator, the blocked-slot calculator and the airflow detector.
package geometry

import "math"

// URange is a closed interval of rack units, bottom <= top for any real device
type URange struct {
	Bottom int `yaml:"bottom" json:"bottom"`
	Top    int `yaml:"top" json:"top"`
}

// OccupiedRange returns the U-range a device of uHeight occupies when its bottom U is position.
// A fractional height occupies the whole U it starts in.
func OccupiedRange(position int, uHeight float64) URange {
	return URange{Bottom: position, Top: position + Slots(uHeight) - 1}
}

// Slots returns the number of whole U slots a height occupies
func Slots(uHeight float64) int {
	return int(math.Ceil(uHeight))
}

// RangesOverlap reports whether two closed intervals share at least one U
func RangesOverlap(a, b URange) bool {
	return a.Bottom <= b.Top && b.Bottom <= a.Top
}

// Adjacent reports whether upper starts on the U directly above lower
func Adjacent(lower, upper URange) bool {
	return lower.Top+1 == upper.Bottom
}

// Within reports whether r lies inside [1, height]
func Within(r URange, height int) bool {
	return r.Bottom >= 1 && r.Top <= height
}
