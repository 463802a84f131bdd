package models

import "github.com/braunma/rackplanner/internal/constants"

// Face is the side of the rack a device is mounted on
type Face string

const (
	FaceFront Face = constants.FaceFront
	FaceRear  Face = constants.FaceRear
	FaceBoth  Face = constants.FaceBoth
)

// Valid reports whether f is one of the known faces
func (f Face) Valid() bool {
	switch f {
	case FaceFront, FaceRear, FaceBoth:
		return true
	}
	return false
}

// Sides returns the physical faces (front and/or rear) that f covers.
// An unknown face covers nothing.
func (f Face) Sides() []Face {
	switch f {
	case FaceFront:
		return []Face{FaceFront}
	case FaceRear:
		return []Face{FaceRear}
	case FaceBoth:
		return []Face{FaceFront, FaceRear}
	}
	return nil
}

// SharedSides returns the physical faces covered by both f and other, front first.
func (f Face) SharedSides(other Face) []Face {
	var shared []Face
	for _, a := range f.Sides() {
		for _, b := range other.Sides() {
			if a == b {
				shared = append(shared, a)
			}
		}
	}
	return shared
}

// Intersects reports whether two mounting faces share a physical face.
// front meets front or both, rear meets rear or both, both meets anything.
func (f Face) Intersects(other Face) bool {
	return len(f.SharedSides(other)) > 0
}

// Airflow is the declared cooling pattern of a device type.
// The zero value means no airflow was declared and is treated as neutral.
type Airflow string

const (
	AirflowUnset       Airflow = ""
	AirflowFrontToRear Airflow = constants.AirflowFrontToRear
	AirflowRearToFront Airflow = constants.AirflowRearToFront
	AirflowSideToRear  Airflow = constants.AirflowSideToRear
	AirflowPassive     Airflow = constants.AirflowPassive
)

// Valid reports whether a is unset or one of the known patterns
func (a Airflow) Valid() bool {
	switch a {
	case AirflowUnset, AirflowFrontToRear, AirflowRearToFront, AirflowSideToRear, AirflowPassive:
		return true
	}
	return false
}
