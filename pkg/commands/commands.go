// Package commands builds the reversible commands that user actions run through the history.
//
// Each command kind is its own struct holding the data it captured, so undo never
// re-derives state from the layout. Commands act on a Target, which *store.Store implements.
package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/braunma/rackplanner/pkg/history"
	"github.com/braunma/rackplanner/pkg/models"
)

// Command kinds
const (
	KindAddDeviceType    = "add-device-type"
	KindUpdateDeviceType = "update-device-type"
	KindDeleteDeviceType = "delete-device-type"
	KindPlaceDevice      = "place-device"
	KindMoveDevice       = "move-device"
	KindRemoveDevice     = "remove-device"
	KindSetDeviceFace    = "set-device-face"
	KindSetDeviceName    = "set-device-name"
	KindUpdateRack       = "update-rack"
	KindClearRack        = "clear-rack"
	KindBatch            = "batch"
)

// ErrStale is returned by Undo when the layout no longer matches what the command recorded
var ErrStale = errors.New("layout changed since command was executed")

// Target is the set of raw layout mutators commands are built on
type Target interface {
	Layout() models.Layout
	Device(index int) (models.PlacedDevice, bool)

	AddDeviceType(dt models.DeviceType) error
	InsertDeviceType(index int, dt models.DeviceType) error
	RemoveDeviceType(slug string) []models.IndexedDevice
	UpdateDeviceType(slug string, u models.DeviceTypeUpdate) error
	ReplaceDeviceType(dt models.DeviceType) error

	PlaceDevice(d models.PlacedDevice) (int, error)
	MoveDevice(index, position int) error
	SetDeviceFace(index int, face models.Face) error
	SetDeviceName(index int, name string) error
	RemoveDeviceAt(index int) (models.PlacedDevice, bool)
	InsertDevices(items []models.IndexedDevice) error

	UpdateRack(u models.RackUpdate) error
	ClearRack() []models.PlacedDevice
}

var (
	_ history.Command = (*AddDeviceType)(nil)
	_ history.Command = (*UpdateDeviceType)(nil)
	_ history.Command = (*DeleteDeviceType)(nil)
	_ history.Command = (*PlaceDevice)(nil)
	_ history.Command = (*MoveDevice)(nil)
	_ history.Command = (*RemoveDevice)(nil)
	_ history.Command = (*SetDeviceFace)(nil)
	_ history.Command = (*SetDeviceName)(nil)
	_ history.Command = (*UpdateRack)(nil)
	_ history.Command = (*ClearRack)(nil)
	_ history.Command = (*Batch)(nil)
)

// meta carries the identity fields shared by every command
type meta struct {
	id          string
	kind        string
	description string
	timestamp   time.Time
}

func newMeta(kind, description string) meta {
	return meta{
		id:          uuid.NewString(),
		kind:        kind,
		description: description,
		timestamp:   time.Now(),
	}
}

// ID returns a unique identifier usable as a UI list key
func (m meta) ID() string { return m.id }

// Type returns the command kind
func (m meta) Type() string { return m.kind }

// Description returns a short label for display
func (m meta) Description() string { return m.description }

// Timestamp returns when the command was created
func (m meta) Timestamp() time.Time { return m.timestamp }

// typeName returns the display name of slug in the target's current layout
func typeName(t Target, slug string) string {
	if dt, ok := models.FindDeviceType(t.Layout().DeviceTypes, slug); ok {
		return dt.DisplayName()
	}
	return slug
}

// deviceLabel returns the label of the device at index, or a positional fallback
func deviceLabel(t Target, index int) string {
	if d, ok := t.Device(index); ok {
		return d.Label()
	}
	return fmt.Sprintf("device #%d", index)
}
