package commands

import (
	"github.com/braunma/rackplanner/pkg/models"
)

// UpdateRack merges a partial update into the rack's properties
type UpdateRack struct {
	meta
	target Target
	update models.RackUpdate
	before models.RackUpdate
}

// NewUpdateRack creates a command applying u to the rack
func NewUpdateRack(t Target, u models.RackUpdate) *UpdateRack {
	return &UpdateRack{
		meta:   newMeta(KindUpdateRack, "Update rack"),
		target: t,
		update: u,
	}
}

// Execute records every rack property and applies the update
func (c *UpdateRack) Execute() error {
	before := c.target.Layout().Rack.Snapshot()
	if err := c.target.UpdateRack(c.update); err != nil {
		return err
	}
	c.before = before
	return nil
}

// Undo restores the recorded properties
func (c *UpdateRack) Undo() error {
	return c.target.UpdateRack(c.before)
}

// ClearRack removes every placed device while keeping the device types
type ClearRack struct {
	meta
	target  Target
	removed []models.PlacedDevice
}

// NewClearRack creates a command clearing the rack
func NewClearRack(t Target) *ClearRack {
	return &ClearRack{
		meta:   newMeta(KindClearRack, "Clear rack"),
		target: t,
	}
}

// Execute removes the devices and keeps a copy of them
func (c *ClearRack) Execute() error {
	removed := c.target.ClearRack()
	c.removed = make([]models.PlacedDevice, len(removed))
	copy(c.removed, removed)
	return nil
}

// Undo puts the devices back in their former order
func (c *ClearRack) Undo() error {
	items := make([]models.IndexedDevice, len(c.removed))
	for i, d := range c.removed {
		items[i] = models.IndexedDevice{Index: i, Device: d}
	}
	return c.target.InsertDevices(items)
}
