package store

import (
	"fmt"

	"github.com/braunma/rackplanner/internal/constants"
	"github.com/braunma/rackplanner/pkg/geometry"
	"github.com/braunma/rackplanner/pkg/models"
)

// UpdateRack merges u over the rack's properties. Placed devices are untouched, so a
// height that would strand any of them is rejected with ErrInvalidUpdate.
func (s *Store) UpdateRack(u models.RackUpdate) error {
	err := s.commit(func(l models.Layout) (models.Layout, error) {
		rack := u.Apply(l.Rack)

		if rack.Height < constants.MinRackHeight || rack.Height > constants.MaxRackHeight {
			return l, fmt.Errorf("%w: rack height %d outside %d-%d", ErrInvalidUpdate, rack.Height, constants.MinRackHeight, constants.MaxRackHeight)
		}
		if rack.Width != 0 && !validWidth(rack.Width) {
			return l, fmt.Errorf("%w: rack width %d", ErrInvalidUpdate, rack.Width)
		}

		resolved := models.ResolveAll(l.DeviceTypes)
		for i, d := range rack.Devices {
			dt, ok := resolved[d.DeviceType]
			if !ok {
				continue
			}
			if span := geometry.OccupiedRange(d.Position, dt.UHeight); !geometry.Within(span, rack.Height) {
				return l, fmt.Errorf("%w: device %d (%s) at U%d-U%d does not fit in %dU", ErrInvalidUpdate, i, d.Label(), span.Bottom, span.Top, rack.Height)
			}
		}

		l.Rack = rack
		return l, nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Updated rack %s", s.Rack().Name)
	return nil
}

// ClearRack removes every placed device and returns them in their former order
func (s *Store) ClearRack() []models.PlacedDevice {
	var removed []models.PlacedDevice

	_ = s.commit(func(l models.Layout) (models.Layout, error) {
		removed = l.Rack.Devices
		return withDevices(l, []models.PlacedDevice{}), nil
	})

	s.logger.Debug("Cleared %d devices from rack", len(removed))
	return removed
}

func validWidth(width int) bool {
	for _, w := range constants.RackWidths {
		if w == width {
			return true
		}
	}
	return false
}
