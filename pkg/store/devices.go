package store

import (
	"fmt"
	"sort"

	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/placement"
)

// PlaceDevice validates and appends a placed device, returning its index.
// A placement that is not valid is an error: callers are expected to have checked it first.
func (s *Store) PlaceDevice(d models.PlacedDevice) (int, error) {
	var index int

	err := s.commit(func(l models.Layout) (models.Layout, error) {
		c := placement.CandidateFor(d)
		if err := placementError(l, c, placement.Check(l.Rack, l.DeviceTypes, c, placement.NoExclude)); err != nil {
			return l, err
		}

		devices := make([]models.PlacedDevice, 0, len(l.Rack.Devices)+1)
		devices = append(devices, l.Rack.Devices...)
		devices = append(devices, d)
		index = len(devices) - 1
		return withDevices(l, devices), nil
	})
	if err != nil {
		return -1, err
	}

	s.logger.Debug("Placed %s at U%d (%s)", d.Label(), d.Position, d.Face)
	return index, nil
}

// TryPlaceDevice is PlaceDevice for interactive callers: a rejected placement is an
// ordinary outcome, reported as false with the layout unchanged.
func (s *Store) TryPlaceDevice(d models.PlacedDevice) bool {
	if _, err := s.PlaceDevice(d); err != nil {
		s.logger.Debug("Placement rejected: %v", err)
		return false
	}
	return true
}

// MoveDevice moves the device at index to a new bottom U, keeping its face.
func (s *Store) MoveDevice(index, position int) error {
	err := s.updateDevice(index, func(d models.PlacedDevice) models.PlacedDevice {
		d.Position = position
		return d
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Moved device %d to U%d", index, position)
	return nil
}

// TryMoveDevice is MoveDevice for interactive callers such as drag handlers.
// It reports false and leaves the layout unchanged when the move is not valid.
func (s *Store) TryMoveDevice(index, position int) bool {
	if err := s.MoveDevice(index, position); err != nil {
		s.logger.Debug("Move rejected: %v", err)
		return false
	}
	return true
}

// SetDeviceFace changes the mounting face of the device at index.
func (s *Store) SetDeviceFace(index int, face models.Face) error {
	return s.updateDevice(index, func(d models.PlacedDevice) models.PlacedDevice {
		d.Face = face
		return d
	})
}

// SetDeviceName sets the name override of the device at index. An empty name clears it.
func (s *Store) SetDeviceName(index int, name string) error {
	return s.updateDevice(index, func(d models.PlacedDevice) models.PlacedDevice {
		d.Name = name
		return d
	})
}

// updateDevice replaces the device at index with change(device), re-validating the
// result against the rest of the rack.
func (s *Store) updateDevice(index int, change func(models.PlacedDevice) models.PlacedDevice) error {
	return s.commit(func(l models.Layout) (models.Layout, error) {
		if index < 0 || index >= len(l.Rack.Devices) {
			return l, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
		}

		next := change(l.Rack.Devices[index])
		c := placement.CandidateFor(next)
		if err := placementError(l, c, placement.Check(l.Rack, l.DeviceTypes, c, index)); err != nil {
			return l, err
		}

		devices := make([]models.PlacedDevice, len(l.Rack.Devices))
		copy(devices, l.Rack.Devices)
		devices[index] = next
		return withDevices(l, devices), nil
	})
}

// RemoveDeviceAt removes the device at index and returns it.
// An out-of-range index, including a negative one, is a no-op.
func (s *Store) RemoveDeviceAt(index int) (models.PlacedDevice, bool) {
	var removed models.PlacedDevice
	var ok bool

	_ = s.commit(func(l models.Layout) (models.Layout, error) {
		if index < 0 || index >= len(l.Rack.Devices) {
			return l, nil
		}
		removed, ok = l.Rack.Devices[index], true

		devices := make([]models.PlacedDevice, 0, len(l.Rack.Devices)-1)
		devices = append(devices, l.Rack.Devices[:index]...)
		devices = append(devices, l.Rack.Devices[index+1:]...)
		return withDevices(l, devices), nil
	})

	if ok {
		s.logger.Debug("Removed device %d (%s)", index, removed.Label())
	}
	return removed, ok
}

// InsertDevices puts devices back at their recorded indices, lowest index first, so a
// set removed by RemoveDeviceType, RemoveDeviceAt or ClearRack lands exactly where it was.
// Every device is re-validated; if any fails, nothing is inserted.
func (s *Store) InsertDevices(items []models.IndexedDevice) error {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]models.IndexedDevice, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Index < sorted[b].Index })

	return s.commit(func(l models.Layout) (models.Layout, error) {
		devices := make([]models.PlacedDevice, len(l.Rack.Devices), len(l.Rack.Devices)+len(sorted))
		copy(devices, l.Rack.Devices)

		for _, item := range sorted {
			rack := l.Rack
			rack.Devices = devices

			c := placement.CandidateFor(item.Device)
			if err := placementError(l, c, placement.Check(rack, l.DeviceTypes, c, placement.NoExclude)); err != nil {
				return l, fmt.Errorf("restoring device %d: %w", item.Index, err)
			}

			at := clamp(item.Index, 0, len(devices))
			devices = append(devices, models.PlacedDevice{})
			copy(devices[at+1:], devices[at:])
			devices[at] = item.Device
		}

		return withDevices(l, devices), nil
	})
}
