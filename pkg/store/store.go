// Package store owns the canonical Layout and exposes the primitive mutations on it.
//
// Every mutation builds a new Layout (new slices for anything it changes) and swaps it
// in whole. A Layout returned by Layout() is therefore a snapshot that later mutations
// never touch; callers must treat it as read-only.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/placement"
	"github.com/braunma/rackplanner/pkg/utils"
)

var (
	ErrDuplicateSlug     = errors.New("duplicate device type slug")
	ErrInvalidDeviceType = errors.New("invalid device type")
	ErrUnknownDeviceType = errors.New("unknown device type")
	ErrInvalidFace       = errors.New("invalid face")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrCollision         = errors.New("collision")
	ErrIndexOutOfRange   = errors.New("device index out of range")
	ErrInvalidUpdate     = errors.New("invalid update")
	ErrInvalidLayout     = errors.New("invalid layout")
)

// Store holds the current layout snapshot
type Store struct {
	mu     sync.RWMutex
	layout models.Layout
	logger *utils.Logger
}

// New creates a store holding a copy of layout. The layout must satisfy every invariant.
func New(layout models.Layout, logger *utils.Logger) (*Store, error) {
	if err := placement.CheckLayout(layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	l := layout.Clone()
	if l.Rack.Devices == nil {
		l.Rack.Devices = []models.PlacedDevice{}
	}
	if l.DeviceTypes == nil {
		l.DeviceTypes = []models.DeviceType{}
	}

	if logger == nil {
		logger = utils.NewLogger(false)
	}

	return &Store{layout: l, logger: logger}, nil
}

// Layout returns the current snapshot
func (s *Store) Layout() models.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout
}

// Rack returns the current rack snapshot
func (s *Store) Rack() models.Rack {
	return s.Layout().Rack
}

// DeviceTypes returns the current device types snapshot
func (s *Store) DeviceTypes() []models.DeviceType {
	return s.Layout().DeviceTypes
}

// Device returns the placed device at index
func (s *Store) Device(index int) (models.PlacedDevice, bool) {
	devices := s.Rack().Devices
	if index < 0 || index >= len(devices) {
		return models.PlacedDevice{}, false
	}
	return devices[index], true
}

// Check previews a placement against the current snapshot without committing it
func (s *Store) Check(c placement.Candidate, excludeIndex int) placement.Outcome {
	l := s.Layout()
	return placement.Check(l.Rack, l.DeviceTypes, c, excludeIndex)
}

// commit runs fn against the current layout under the write lock and installs
// its result. fn must not modify the slices of the layout it is given.
func (s *Store) commit(fn func(l models.Layout) (models.Layout, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.layout)
	if err != nil {
		return err
	}
	s.layout = next
	return nil
}

// placementError converts a failed placement outcome into a sentinel-wrapped error
func placementError(l models.Layout, c placement.Candidate, out placement.Outcome) error {
	switch {
	case out.Result == placement.Valid:
		return nil
	case out.Result == placement.Blocked:
		return fmt.Errorf("%w: %s", ErrCollision, out.Reason)
	case models.IndexOfDeviceType(l.DeviceTypes, c.DeviceType) < 0:
		return fmt.Errorf("%w: %s", ErrUnknownDeviceType, c.DeviceType)
	case !c.Face.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidFace, c.Face)
	default:
		return fmt.Errorf("%w: %s", ErrOutOfBounds, out.Reason)
	}
}

func withDevices(l models.Layout, devices []models.PlacedDevice) models.Layout {
	l.Rack.Devices = devices
	return l
}

func withDeviceTypes(l models.Layout, types []models.DeviceType) models.Layout {
	l.DeviceTypes = types
	return l
}
