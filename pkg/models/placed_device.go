package models

// PlacedDevice represents a device instance mounted in a rack.
// Position is the bottom-most U the device occupies.
type PlacedDevice struct {
	DeviceType string `yaml:"device_type" json:"device_type" validate:"required,slug"`
	Position   int    `yaml:"position" json:"position" validate:"min=1"`
	Face       Face   `yaml:"face" json:"face" validate:"required,oneof=front rear both"`
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Label returns the name override, falling back to the device type slug
func (d PlacedDevice) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.DeviceType
}

// IndexedDevice pairs a placed device with its index in Rack.Devices.
// The index is the current position in the ordered sequence, not a stable identity.
type IndexedDevice struct {
	Index  int          `yaml:"index" json:"index"`
	Device PlacedDevice `yaml:"device" json:"device"`
}
