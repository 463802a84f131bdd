package models

import "github.com/braunma/rackplanner/pkg/geometry"

// DeviceType represents a device template (blueprint for placed devices).
// Records are never changed in place; updates produce a new record keyed by slug.
type DeviceType struct {
	Slug         string   `yaml:"slug" json:"slug" validate:"required,slug"`
	Model        string   `yaml:"model,omitempty" json:"model,omitempty"`
	Manufacturer string   `yaml:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	UHeight      float64  `yaml:"u_height" json:"u_height" validate:"required,halfu"`
	IsFullDepth  *bool    `yaml:"is_full_depth,omitempty" json:"is_full_depth,omitempty"`
	Airflow      Airflow  `yaml:"airflow,omitempty" json:"airflow,omitempty" validate:"omitempty,oneof=front-to-rear rear-to-front side-to-rear passive"`
	Colour       string   `yaml:"colour,omitempty" json:"colour,omitempty" validate:"omitempty,len=6,hexadecimal"`
	Category     string   `yaml:"category,omitempty" json:"category,omitempty"`
	Notes        string   `yaml:"notes,omitempty" json:"notes,omitempty"`
	Tags         []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// DisplayName returns the model name, falling back to the slug
func (dt DeviceType) DisplayName() string {
	if dt.Model != "" {
		return dt.Model
	}
	return dt.Slug
}

// Clone returns a deep copy that shares no memory with dt
func (dt DeviceType) Clone() DeviceType {
	c := dt
	if dt.IsFullDepth != nil {
		v := *dt.IsFullDepth
		c.IsFullDepth = &v
	}
	if dt.Tags != nil {
		c.Tags = make([]string, len(dt.Tags))
		copy(c.Tags, dt.Tags)
	}
	return c
}

// DeviceTypeUpdate is a partial device type. Nil fields are left unchanged.
// The slug is the record key and cannot be updated.
type DeviceTypeUpdate struct {
	Model        *string   `yaml:"model,omitempty" json:"model,omitempty"`
	Manufacturer *string   `yaml:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	UHeight      *float64  `yaml:"u_height,omitempty" json:"u_height,omitempty"`
	IsFullDepth  *bool     `yaml:"is_full_depth,omitempty" json:"is_full_depth,omitempty"`
	Airflow      *Airflow  `yaml:"airflow,omitempty" json:"airflow,omitempty"`
	Colour       *string   `yaml:"colour,omitempty" json:"colour,omitempty"`
	Category     *string   `yaml:"category,omitempty" json:"category,omitempty"`
	Notes        *string   `yaml:"notes,omitempty" json:"notes,omitempty"`
	Tags         *[]string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Apply shallow-merges the update over dt and returns the new record
func (u DeviceTypeUpdate) Apply(dt DeviceType) DeviceType {
	out := dt.Clone()
	if u.Model != nil {
		out.Model = *u.Model
	}
	if u.Manufacturer != nil {
		out.Manufacturer = *u.Manufacturer
	}
	if u.UHeight != nil {
		out.UHeight = *u.UHeight
	}
	if u.IsFullDepth != nil {
		v := *u.IsFullDepth
		out.IsFullDepth = &v
	}
	if u.Airflow != nil {
		out.Airflow = *u.Airflow
	}
	if u.Colour != nil {
		out.Colour = *u.Colour
	}
	if u.Category != nil {
		out.Category = *u.Category
	}
	if u.Notes != nil {
		out.Notes = *u.Notes
	}
	if u.Tags != nil {
		out.Tags = make([]string, len(*u.Tags))
		copy(out.Tags, *u.Tags)
	}
	return out
}

// ResolvedDeviceType is a device type with every defaulted field filled in.
// Consumers that need depth, height or airflow read this instead of DeviceType.
type ResolvedDeviceType struct {
	Slug        string
	UHeight     float64
	Slots       int
	IsFullDepth bool
	Airflow     Airflow
}

// Resolve applies the default policy: full depth when unset, neutral airflow when unset,
// and one whole U slot per started U of height.
func Resolve(dt DeviceType) ResolvedDeviceType {
	fullDepth := true
	if dt.IsFullDepth != nil {
		fullDepth = *dt.IsFullDepth
	}
	return ResolvedDeviceType{
		Slug:        dt.Slug,
		UHeight:     dt.UHeight,
		Slots:       geometry.Slots(dt.UHeight),
		IsFullDepth: fullDepth,
		Airflow:     dt.Airflow,
	}
}

// ResolveAll indexes the resolved form of each device type by slug.
// On duplicate slugs the first record wins, matching FindDeviceType.
func ResolveAll(types []DeviceType) map[string]ResolvedDeviceType {
	resolved := make(map[string]ResolvedDeviceType, len(types))
	for _, dt := range types {
		if _, ok := resolved[dt.Slug]; ok {
			continue
		}
		resolved[dt.Slug] = Resolve(dt)
	}
	return resolved
}

// FindDeviceType returns the device type with the given slug
func FindDeviceType(types []DeviceType, slug string) (DeviceType, bool) {
	if i := IndexOfDeviceType(types, slug); i >= 0 {
		return types[i], true
	}
	return DeviceType{}, false
}

// IndexOfDeviceType returns the position of slug in types, or -1
func IndexOfDeviceType(types []DeviceType, slug string) int {
	for i, dt := range types {
		if dt.Slug == slug {
			return i
		}
	}
	return -1
}

// BoolPtr returns a pointer to v
func BoolPtr(v bool) *bool {
	return &v
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
