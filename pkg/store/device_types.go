package store

import (
	"fmt"

	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/placement"
)

// AddDeviceType appends a device type. The slug must not already exist.
func (s *Store) AddDeviceType(dt models.DeviceType) error {
	if err := models.ValidateDeviceType(dt); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDeviceType, err)
	}

	err := s.commit(func(l models.Layout) (models.Layout, error) {
		if models.IndexOfDeviceType(l.DeviceTypes, dt.Slug) >= 0 {
			return l, fmt.Errorf("%w: %s", ErrDuplicateSlug, dt.Slug)
		}
		types := make([]models.DeviceType, 0, len(l.DeviceTypes)+1)
		types = append(types, l.DeviceTypes...)
		types = append(types, dt.Clone())
		return withDeviceTypes(l, types), nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Added device type %s", dt.Slug)
	return nil
}

// InsertDeviceType puts a device type back at index, clamped to the collection bounds.
// It restores a record removed by RemoveDeviceType and keeps the original ordering.
func (s *Store) InsertDeviceType(index int, dt models.DeviceType) error {
	if err := models.ValidateDeviceType(dt); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDeviceType, err)
	}

	return s.commit(func(l models.Layout) (models.Layout, error) {
		if models.IndexOfDeviceType(l.DeviceTypes, dt.Slug) >= 0 {
			return l, fmt.Errorf("%w: %s", ErrDuplicateSlug, dt.Slug)
		}
		index = clamp(index, 0, len(l.DeviceTypes))

		types := make([]models.DeviceType, 0, len(l.DeviceTypes)+1)
		types = append(types, l.DeviceTypes[:index]...)
		types = append(types, dt.Clone())
		types = append(types, l.DeviceTypes[index:]...)
		return withDeviceTypes(l, types), nil
	})
}

// RemoveDeviceType removes a device type and every placed device referencing it.
// It returns the removed placed devices with their former indices, in ascending order.
// Removing a slug that does not exist is a no-op.
func (s *Store) RemoveDeviceType(slug string) []models.IndexedDevice {
	var removed []models.IndexedDevice
	found := false

	_ = s.commit(func(l models.Layout) (models.Layout, error) {
		idx := models.IndexOfDeviceType(l.DeviceTypes, slug)
		if idx < 0 {
			return l, nil
		}
		found = true

		types := make([]models.DeviceType, 0, len(l.DeviceTypes)-1)
		types = append(types, l.DeviceTypes[:idx]...)
		types = append(types, l.DeviceTypes[idx+1:]...)

		devices := make([]models.PlacedDevice, 0, len(l.Rack.Devices))
		for i, d := range l.Rack.Devices {
			if d.DeviceType == slug {
				removed = append(removed, models.IndexedDevice{Index: i, Device: d})
				continue
			}
			devices = append(devices, d)
		}

		return withDevices(withDeviceTypes(l, types), devices), nil
	})

	if found {
		s.logger.Debug("Removed device type %s and %d placed devices", slug, len(removed))
	}
	return removed
}

// UpdateDeviceType shallow-merges u over the device type with the given slug.
// Updating a slug that does not exist is a no-op. An update that would push a placed
// instance out of bounds or into a collision is rejected with ErrInvalidUpdate.
func (s *Store) UpdateDeviceType(slug string, u models.DeviceTypeUpdate) error {
	found := false
	err := s.commit(func(l models.Layout) (models.Layout, error) {
		idx := models.IndexOfDeviceType(l.DeviceTypes, slug)
		if idx < 0 {
			return l, nil
		}
		found = true
		return putDeviceType(l, idx, u.Apply(l.DeviceTypes[idx]))
	})
	if err != nil {
		return err
	}

	if found {
		s.logger.Debug("Updated device type %s", slug)
	}
	return nil
}

// ReplaceDeviceType swaps in a whole record for an existing slug.
// It is the exact inverse of UpdateDeviceType when given the record from before the update.
func (s *Store) ReplaceDeviceType(dt models.DeviceType) error {
	return s.commit(func(l models.Layout) (models.Layout, error) {
		idx := models.IndexOfDeviceType(l.DeviceTypes, dt.Slug)
		if idx < 0 {
			return l, fmt.Errorf("%w: %s", ErrUnknownDeviceType, dt.Slug)
		}
		return putDeviceType(l, idx, dt.Clone())
	})
}

// putDeviceType replaces the record at idx after checking the placed instances still fit
func putDeviceType(l models.Layout, idx int, dt models.DeviceType) (models.Layout, error) {
	if err := models.ValidateDeviceType(dt); err != nil {
		return l, fmt.Errorf("%w: %v", ErrInvalidDeviceType, err)
	}

	types := make([]models.DeviceType, len(l.DeviceTypes))
	copy(types, l.DeviceTypes)
	types[idx] = dt

	if models.Resolve(dt).Slots != models.Resolve(l.DeviceTypes[idx]).Slots {
		for i, d := range l.Rack.Devices {
			if d.DeviceType != dt.Slug {
				continue
			}
			out := placement.Check(l.Rack, types, placement.CandidateFor(d), i)
			if out.Result != placement.Valid {
				return l, fmt.Errorf("%w: %s at U%d would be %s: %s", ErrInvalidUpdate, d.Label(), d.Position, out.Result, out.Reason)
			}
		}
	}

	return withDeviceTypes(l, types), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
