// Package airflow flags thermally incompatible stacking: a device exhausting
// hot air straight into the intake of the device mounted directly above it.
package airflow

import (
	"sort"

	"github.com/braunma/rackplanner/pkg/geometry"
	"github.com/braunma/rackplanner/pkg/models"
)

// Direction is the resolved role of a device's airflow on one physical face
type Direction string

const (
	Intake  Direction = "intake"
	Exhaust Direction = "exhaust"
	Neutral Direction = "neutral"
)

// ConflictExhaustToIntake is the only conflict type currently detected
const ConflictExhaustToIntake = "exhaust-to-intake"

// Conflict is a thermal conflict at a boundary between two stacked devices.
// Position is the bottom U of the upper device.
type Conflict struct {
	Position int         `yaml:"position" json:"position"`
	Type     string      `yaml:"type" json:"type"`
	Face     models.Face `yaml:"face" json:"face"`
	Lower    int         `yaml:"lower" json:"lower"`
	Upper    int         `yaml:"upper" json:"upper"`
}

// GetDirection resolves an airflow pattern to intake, exhaust or neutral on a physical face.
// side-to-rear draws from the side and exhausts at the rear, so it behaves like front-to-rear here.
func GetDirection(airflow models.Airflow, face models.Face) Direction {
	switch airflow {
	case models.AirflowFrontToRear, models.AirflowSideToRear:
		switch face {
		case models.FaceFront:
			return Intake
		case models.FaceRear:
			return Exhaust
		}
	case models.AirflowRearToFront:
		switch face {
		case models.FaceFront:
			return Exhaust
		case models.FaceRear:
			return Intake
		}
	}
	return Neutral
}

// HasConflict reports whether the lower device exhausts into the upper device's intake on face.
// Intake below exhaust is the normal pattern and is not a conflict.
func HasConflict(lower, upper models.Airflow, face models.Face) bool {
	return GetDirection(lower, face) == Exhaust && GetDirection(upper, face) == Intake
}

type stacked struct {
	index  int
	device models.PlacedDevice
	span   geometry.URange
	flow   models.Airflow
}

// FindConflicts scans the rack for U-adjacent devices on a shared face whose airflow conflicts.
// Devices separated by a gap never conflict, nor do devices on disjoint faces.
// Devices with unknown types are skipped. Results are ordered by position, then face.
func FindConflicts(rack models.Rack, types []models.DeviceType) []Conflict {
	resolved := models.ResolveAll(types)

	devices := make([]stacked, 0, len(rack.Devices))
	for i, d := range rack.Devices {
		dt, ok := resolved[d.DeviceType]
		if !ok {
			continue
		}
		devices = append(devices, stacked{
			index:  i,
			device: d,
			span:   geometry.OccupiedRange(d.Position, dt.UHeight),
			flow:   dt.Airflow,
		})
	}

	sort.SliceStable(devices, func(a, b int) bool {
		return devices[a].span.Bottom < devices[b].span.Bottom
	})

	conflicts := make([]Conflict, 0)
	for _, lower := range devices {
		for _, upper := range devices {
			if !geometry.Adjacent(lower.span, upper.span) {
				continue
			}
			for _, face := range lower.device.Face.SharedSides(upper.device.Face) {
				if HasConflict(lower.flow, upper.flow, face) {
					conflicts = append(conflicts, Conflict{
						Position: upper.span.Bottom,
						Type:     ConflictExhaustToIntake,
						Face:     face,
						Lower:    lower.index,
						Upper:    upper.index,
					})
				}
			}
		}
	}

	sort.SliceStable(conflicts, func(a, b int) bool {
		if conflicts[a].Position != conflicts[b].Position {
			return conflicts[a].Position < conflicts[b].Position
		}
		return conflicts[a].Face == models.FaceFront && conflicts[b].Face == models.FaceRear
	})

	return conflicts
}
