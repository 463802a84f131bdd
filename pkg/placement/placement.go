// Package placement decides whether a device may occupy a U-range on a rack face.
// Everything here is pure: it reads a rack snapshot and never changes it, so UI
// drag feedback can call it on every frame.
package placement

import (
	"fmt"

	"github.com/braunma/rackplanner/pkg/geometry"
	"github.com/braunma/rackplanner/pkg/models"
)

// Result is the outcome of a placement check
type Result int

const (
	// Valid means the device fits and collides with nothing
	Valid Result = iota
	// Blocked means the device is in bounds but overlaps a device on an intersecting face
	Blocked
	// Invalid means the position is out of bounds or the device type is unknown
	Invalid
)

func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case Blocked:
		return "blocked"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// NoExclude is passed as excludeIndex when the candidate is not already in the rack
const NoExclude = -1

// Candidate is a proposed placement
type Candidate struct {
	DeviceType string
	Position   int
	Face       models.Face
}

// CandidateFor builds the candidate describing an already placed device
func CandidateFor(d models.PlacedDevice) Candidate {
	return Candidate{DeviceType: d.DeviceType, Position: d.Position, Face: d.Face}
}

// Outcome carries a result with a short reason for UI feedback.
// Conflict is the index of the first colliding device when Result is Blocked, otherwise -1.
type Outcome struct {
	Result   Result
	Reason   string
	Conflict int
}

// FacesCollide reports whether devices on faces a and b can physically collide
func FacesCollide(a, b models.Face) bool {
	return a.Intersects(b)
}

// CanPlace checks a candidate against the rack bounds and every device in the rack.
// excludeIndex skips the device being moved; pass NoExclude for new devices and cross-rack moves.
func CanPlace(rack models.Rack, types []models.DeviceType, c Candidate, excludeIndex int) Result {
	return Check(rack, types, c, excludeIndex).Result
}

// Check is CanPlace with the reason for the result
func Check(rack models.Rack, types []models.DeviceType, c Candidate, excludeIndex int) Outcome {
	return check(rack, models.ResolveAll(types), c, excludeIndex)
}

func check(rack models.Rack, resolved map[string]models.ResolvedDeviceType, c Candidate, excludeIndex int) Outcome {
	dt, ok := resolved[c.DeviceType]
	if !ok {
		return Outcome{Result: Invalid, Reason: fmt.Sprintf("device type %s not found", c.DeviceType), Conflict: -1}
	}
	if !c.Face.Valid() {
		return Outcome{Result: Invalid, Reason: fmt.Sprintf("unknown face %q", c.Face), Conflict: -1}
	}
	if c.Position < 1 {
		return Outcome{Result: Invalid, Reason: fmt.Sprintf("position %d is below U1", c.Position), Conflict: -1}
	}

	span := geometry.OccupiedRange(c.Position, dt.UHeight)
	if span.Top > rack.Height {
		return Outcome{
			Result:   Invalid,
			Reason:   fmt.Sprintf("U%d-U%d exceeds rack height %d", span.Bottom, span.Top, rack.Height),
			Conflict: -1,
		}
	}

	for i, existing := range rack.Devices {
		if i == excludeIndex {
			continue
		}
		if !FacesCollide(c.Face, existing.Face) {
			continue
		}
		// A stale reference has no known extent; it cannot be checked against.
		other, ok := resolved[existing.DeviceType]
		if !ok {
			continue
		}
		if geometry.RangesOverlap(span, geometry.OccupiedRange(existing.Position, other.UHeight)) {
			return Outcome{
				Result:   Blocked,
				Reason:   fmt.Sprintf("overlaps %s at U%d (%s)", existing.Label(), existing.Position, existing.Face),
				Conflict: i,
			}
		}
	}

	return Outcome{Result: Valid, Conflict: -1}
}
