package models

import "github.com/braunma/rackplanner/internal/constants"

// Rack represents a single equipment rack.
// Devices is ordered; the index of a device is its address for move and remove.
type Rack struct {
	Name      string         `yaml:"name" json:"name" validate:"required"`
	Height    int            `yaml:"height" json:"height" validate:"min=1,max=100"`
	Width     int            `yaml:"width,omitempty" json:"width,omitempty" validate:"omitempty,oneof=10 19 23"`
	DescUnits bool           `yaml:"desc_units,omitempty" json:"desc_units,omitempty"`
	ShowRear  bool           `yaml:"show_rear,omitempty" json:"show_rear,omitempty"`
	Devices   []PlacedDevice `yaml:"devices" json:"devices" validate:"dive"`
}

// Clone returns a copy of the rack with its own devices slice
func (r Rack) Clone() Rack {
	c := r
	if r.Devices != nil {
		c.Devices = make([]PlacedDevice, len(r.Devices))
		copy(c.Devices, r.Devices)
	}
	return c
}

// RackUpdate is a partial rack. Nil fields are left unchanged; devices are not touched.
type RackUpdate struct {
	Name      *string `yaml:"name,omitempty" json:"name,omitempty"`
	Height    *int    `yaml:"height,omitempty" json:"height,omitempty"`
	Width     *int    `yaml:"width,omitempty" json:"width,omitempty"`
	DescUnits *bool   `yaml:"desc_units,omitempty" json:"desc_units,omitempty"`
	ShowRear  *bool   `yaml:"show_rear,omitempty" json:"show_rear,omitempty"`
}

// Apply merges the update over r. The devices slice is shared with r.
func (u RackUpdate) Apply(r Rack) Rack {
	out := r
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Height != nil {
		out.Height = *u.Height
	}
	if u.Width != nil {
		out.Width = *u.Width
	}
	if u.DescUnits != nil {
		out.DescUnits = *u.DescUnits
	}
	if u.ShowRear != nil {
		out.ShowRear = *u.ShowRear
	}
	return out
}

// Snapshot returns an update that sets every field back to r's current values
func (r Rack) Snapshot() RackUpdate {
	name, height, width, desc, rear := r.Name, r.Height, r.Width, r.DescUnits, r.ShowRear
	return RackUpdate{Name: &name, Height: &height, Width: &width, DescUnits: &desc, ShowRear: &rear}
}

// Settings holds display preferences saved with a layout
type Settings struct {
	DisplayMode        string `yaml:"display_mode,omitempty" json:"display_mode,omitempty" validate:"omitempty,oneof=label image"`
	ShowLabelsOnImages bool   `yaml:"show_labels_on_images,omitempty" json:"show_labels_on_images,omitempty"`
	ShowAirflow        bool   `yaml:"show_airflow,omitempty" json:"show_airflow,omitempty"`
}

// Layout is the aggregate root: one rack plus the device types it may reference
type Layout struct {
	Version     string       `yaml:"version,omitempty" json:"version,omitempty"`
	Name        string       `yaml:"name" json:"name" validate:"required"`
	Rack        Rack         `yaml:"rack" json:"rack"`
	DeviceTypes []DeviceType `yaml:"device_types" json:"device_types" validate:"dive"`
	Settings    Settings     `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// NewLayout creates an empty layout with a default rack of the given height
func NewLayout(name string, height int) Layout {
	if height <= 0 {
		height = constants.DefaultRackHeight
	}
	return Layout{
		Version: "1",
		Name:    name,
		Rack: Rack{
			Name:    constants.DefaultRackName,
			Height:  height,
			Width:   constants.DefaultRackWidth,
			Devices: []PlacedDevice{},
		},
		DeviceTypes: []DeviceType{},
		Settings:    Settings{DisplayMode: constants.DefaultDisplayMode},
	}
}

// Clone returns a deep copy of the layout
func (l Layout) Clone() Layout {
	c := l
	c.Rack = l.Rack.Clone()
	if l.DeviceTypes != nil {
		c.DeviceTypes = make([]DeviceType, len(l.DeviceTypes))
		for i, dt := range l.DeviceTypes {
			c.DeviceTypes[i] = dt.Clone()
		}
	}
	return c
}
