package placement

import (
	"github.com/braunma/rackplanner/pkg/geometry"
	"github.com/braunma/rackplanner/pkg/models"
)

// BlockedSlots returns the U-ranges to render as occupied when viewing viewedFace.
// A device blocks the view when it is mounted on both faces, or when it is full depth
// and mounted on the other face. Devices with unknown types are skipped.
//
// One range is returned per blocking device, in rack order. Ranges are not merged,
// so callers must cope with overlapping or touching ranges.
//
// Blocked slots are a rendering hint. Placement validity is decided by CanPlace alone.
func BlockedSlots(rack models.Rack, viewedFace models.Face, types []models.DeviceType) []geometry.URange {
	resolved := models.ResolveAll(types)
	blocked := make([]geometry.URange, 0)

	for _, d := range rack.Devices {
		dt, ok := resolved[d.DeviceType]
		if !ok {
			continue
		}
		if d.Face == models.FaceBoth || (d.Face != viewedFace && dt.IsFullDepth) {
			blocked = append(blocked, geometry.OccupiedRange(d.Position, dt.UHeight))
		}
	}

	return blocked
}
