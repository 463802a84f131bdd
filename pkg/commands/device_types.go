package commands

import (
	"fmt"

	"github.com/braunma/rackplanner/pkg/models"
)

// AddDeviceType adds a device type to the layout's collection
type AddDeviceType struct {
	meta
	target     Target
	deviceType models.DeviceType
}

// NewAddDeviceType creates a command adding dt
func NewAddDeviceType(t Target, dt models.DeviceType) *AddDeviceType {
	return &AddDeviceType{
		meta:       newMeta(KindAddDeviceType, "Add "+dt.DisplayName()),
		target:     t,
		deviceType: dt.Clone(),
	}
}

// Execute adds the device type
func (c *AddDeviceType) Execute() error {
	return c.target.AddDeviceType(c.deviceType.Clone())
}

// Undo removes the device type again. Anything placed with it since has already been undone.
func (c *AddDeviceType) Undo() error {
	c.target.RemoveDeviceType(c.deviceType.Slug)
	return nil
}

// UpdateDeviceType merges a partial update into an existing device type
type UpdateDeviceType struct {
	meta
	target Target
	slug   string
	update models.DeviceTypeUpdate

	before  models.DeviceType
	applied bool
}

// NewUpdateDeviceType creates a command updating the device type with the given slug
func NewUpdateDeviceType(t Target, slug string, u models.DeviceTypeUpdate) *UpdateDeviceType {
	return &UpdateDeviceType{
		meta:   newMeta(KindUpdateDeviceType, "Update "+slug),
		target: t,
		slug:   slug,
		update: u,
	}
}

// Execute records the current record and applies the update. A missing slug is a no-op.
func (c *UpdateDeviceType) Execute() error {
	before, ok := models.FindDeviceType(c.target.Layout().DeviceTypes, c.slug)
	if !ok {
		c.applied = false
		return nil
	}

	if err := c.target.UpdateDeviceType(c.slug, c.update); err != nil {
		return err
	}
	c.before, c.applied = before.Clone(), true
	return nil
}

// Undo puts the recorded record back
func (c *UpdateDeviceType) Undo() error {
	if !c.applied {
		return nil
	}
	return c.target.ReplaceDeviceType(c.before.Clone())
}

// DeleteDeviceType removes a device type together with every placed device using it
type DeleteDeviceType struct {
	meta
	target Target
	slug   string

	deviceType models.DeviceType
	index      int
	cascaded   []models.IndexedDevice
	applied    bool
}

// NewDeleteDeviceType creates a command deleting the device type with the given slug
func NewDeleteDeviceType(t Target, slug string) *DeleteDeviceType {
	return &DeleteDeviceType{
		meta:   newMeta(KindDeleteDeviceType, "Delete "+typeName(t, slug)),
		target: t,
		slug:   slug,
		index:  -1,
	}
}

// Execute records the device type, its position and the placed devices it cascades to,
// then removes them. A missing slug is a no-op.
func (c *DeleteDeviceType) Execute() error {
	types := c.target.Layout().DeviceTypes
	idx := models.IndexOfDeviceType(types, c.slug)
	if idx < 0 {
		c.applied = false
		return nil
	}

	c.deviceType, c.index = types[idx].Clone(), idx
	removed := c.target.RemoveDeviceType(c.slug)

	c.cascaded = make([]models.IndexedDevice, len(removed))
	copy(c.cascaded, removed)
	c.applied = true
	return nil
}

// Undo restores the device type at its old position and the cascaded devices at their old indices
func (c *DeleteDeviceType) Undo() error {
	if !c.applied {
		return nil
	}

	if err := c.target.InsertDeviceType(c.index, c.deviceType.Clone()); err != nil {
		return fmt.Errorf("restoring device type %s: %w", c.slug, err)
	}

	items := make([]models.IndexedDevice, len(c.cascaded))
	copy(items, c.cascaded)
	if err := c.target.InsertDevices(items); err != nil {
		c.target.RemoveDeviceType(c.slug)
		return err
	}
	return nil
}

// Cascaded returns the placed devices the last Execute removed along with the type
func (c *DeleteDeviceType) Cascaded() []models.IndexedDevice {
	out := make([]models.IndexedDevice, len(c.cascaded))
	copy(out, c.cascaded)
	return out
}
