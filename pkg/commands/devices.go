package commands

import (
	"fmt"

	"github.com/braunma/rackplanner/pkg/models"
)

// PlaceDevice appends a placed device to the rack
type PlaceDevice struct {
	meta
	target Target
	device models.PlacedDevice
	index  int
}

// NewPlaceDevice creates a command placing d
func NewPlaceDevice(t Target, d models.PlacedDevice) *PlaceDevice {
	return &PlaceDevice{
		meta:   newMeta(KindPlaceDevice, "Place "+typeName(t, d.DeviceType)),
		target: t,
		device: d,
		index:  -1,
	}
}

// Execute places the device and records its index
func (c *PlaceDevice) Execute() error {
	idx, err := c.target.PlaceDevice(c.device)
	if err != nil {
		return err
	}
	c.index = idx
	return nil
}

// Undo removes the device from the index it was placed at
func (c *PlaceDevice) Undo() error {
	current, ok := c.target.Device(c.index)
	if !ok || current != c.device {
		return fmt.Errorf("%w: no %s at index %d", ErrStale, c.device.Label(), c.index)
	}
	c.target.RemoveDeviceAt(c.index)
	return nil
}

// Index returns the index the device was placed at, or -1 before Execute
func (c *PlaceDevice) Index() int {
	return c.index
}

// MoveDevice changes the position of a placed device
type MoveDevice struct {
	meta
	target   Target
	index    int
	position int
	from     int
}

// NewMoveDevice creates a command moving the device at index to position
func NewMoveDevice(t Target, index, position int) *MoveDevice {
	return &MoveDevice{
		meta:     newMeta(KindMoveDevice, fmt.Sprintf("Move %s to U%d", deviceLabel(t, index), position)),
		target:   t,
		index:    index,
		position: position,
	}
}

// Execute records the current position and moves the device
func (c *MoveDevice) Execute() error {
	d, _ := c.target.Device(c.index)
	if err := c.target.MoveDevice(c.index, c.position); err != nil {
		return err
	}
	c.from = d.Position
	return nil
}

// Undo moves the device back
func (c *MoveDevice) Undo() error {
	return c.target.MoveDevice(c.index, c.from)
}

// RemoveDevice removes the placed device at an index
type RemoveDevice struct {
	meta
	target  Target
	index   int
	removed models.PlacedDevice
	applied bool
}

// NewRemoveDevice creates a command removing the device at index
func NewRemoveDevice(t Target, index int) *RemoveDevice {
	return &RemoveDevice{
		meta:   newMeta(KindRemoveDevice, "Remove "+deviceLabel(t, index)),
		target: t,
		index:  index,
	}
}

// Execute removes the device and keeps a copy. An out-of-range index is a no-op.
func (c *RemoveDevice) Execute() error {
	c.removed, c.applied = c.target.RemoveDeviceAt(c.index)
	return nil
}

// Undo reinserts the removed device at its old index
func (c *RemoveDevice) Undo() error {
	if !c.applied {
		return nil
	}
	return c.target.InsertDevices([]models.IndexedDevice{{Index: c.index, Device: c.removed}})
}

// SetDeviceFace changes the mounting face of a placed device
type SetDeviceFace struct {
	meta
	target Target
	index  int
	face   models.Face
	from   models.Face
}

// NewSetDeviceFace creates a command mounting the device at index on face
func NewSetDeviceFace(t Target, index int, face models.Face) *SetDeviceFace {
	return &SetDeviceFace{
		meta:   newMeta(KindSetDeviceFace, fmt.Sprintf("Set %s face to %s", deviceLabel(t, index), face)),
		target: t,
		index:  index,
		face:   face,
	}
}

// Execute records the current face and applies the new one
func (c *SetDeviceFace) Execute() error {
	d, _ := c.target.Device(c.index)
	if err := c.target.SetDeviceFace(c.index, c.face); err != nil {
		return err
	}
	c.from = d.Face
	return nil
}

// Undo restores the recorded face
func (c *SetDeviceFace) Undo() error {
	return c.target.SetDeviceFace(c.index, c.from)
}

// SetDeviceName sets or clears the name override of a placed device
type SetDeviceName struct {
	meta
	target Target
	index  int
	name   string
	from   string
}

// NewSetDeviceName creates a command naming the device at index
func NewSetDeviceName(t Target, index int, name string) *SetDeviceName {
	return &SetDeviceName{
		meta:   newMeta(KindSetDeviceName, "Rename "+deviceLabel(t, index)),
		target: t,
		index:  index,
		name:   name,
	}
}

// Execute records the current name and applies the new one
func (c *SetDeviceName) Execute() error {
	d, _ := c.target.Device(c.index)
	if err := c.target.SetDeviceName(c.index, c.name); err != nil {
		return err
	}
	c.from = d.Name
	return nil
}

// Undo restores the recorded name
func (c *SetDeviceName) Undo() error {
	return c.target.SetDeviceName(c.index, c.from)
}
