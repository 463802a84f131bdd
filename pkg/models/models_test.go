package models

import (
	"strings"
	"testing"
)

func TestFaceIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Face
		expected bool
	}{
		{name: "front front", a: FaceFront, b: FaceFront, expected: true},
		{name: "front rear", a: FaceFront, b: FaceRear, expected: false},
		{name: "rear front", a: FaceRear, b: FaceFront, expected: false},
		{name: "rear rear", a: FaceRear, b: FaceRear, expected: true},
		{name: "front both", a: FaceFront, b: FaceBoth, expected: true},
		{name: "both rear", a: FaceBoth, b: FaceRear, expected: true},
		{name: "both both", a: FaceBoth, b: FaceBoth, expected: true},
		{name: "unknown face", a: Face("side"), b: FaceBoth, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Intersects(tt.b)
			if result != tt.expected {
				t.Errorf("%q.Intersects(%q) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestFaceSharedSides(t *testing.T) {
	shared := FaceBoth.SharedSides(FaceBoth)
	if len(shared) != 2 || shared[0] != FaceFront || shared[1] != FaceRear {
		t.Errorf("both/both SharedSides() = %v, expected [front rear]", shared)
	}

	shared = FaceBoth.SharedSides(FaceRear)
	if len(shared) != 1 || shared[0] != FaceRear {
		t.Errorf("both/rear SharedSides() = %v, expected [rear]", shared)
	}

	if shared := FaceFront.SharedSides(FaceRear); len(shared) != 0 {
		t.Errorf("front/rear SharedSides() = %v, expected none", shared)
	}
}

func TestResolveDefaults(t *testing.T) {
	tests := []struct {
		name          string
		dt            DeviceType
		expectedFull  bool
		expectedSlots int
	}{
		{
			name:          "depth unset defaults to full depth",
			dt:            DeviceType{Slug: "server-1u", UHeight: 1},
			expectedFull:  true,
			expectedSlots: 1,
		},
		{
			name:          "explicit full depth",
			dt:            DeviceType{Slug: "server-2u", UHeight: 2, IsFullDepth: BoolPtr(true)},
			expectedFull:  true,
			expectedSlots: 2,
		},
		{
			name:          "half depth",
			dt:            DeviceType{Slug: "patch-panel", UHeight: 1, IsFullDepth: BoolPtr(false)},
			expectedFull:  false,
			expectedSlots: 1,
		},
		{
			name:          "half U rounds up to a whole slot",
			dt:            DeviceType{Slug: "cable-tray", UHeight: 0.5},
			expectedFull:  true,
			expectedSlots: 1,
		},
		{
			name:          "one and a half U",
			dt:            DeviceType{Slug: "nas", UHeight: 1.5},
			expectedFull:  true,
			expectedSlots: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.dt)
			if r.IsFullDepth != tt.expectedFull {
				t.Errorf("Resolve().IsFullDepth = %v, expected %v", r.IsFullDepth, tt.expectedFull)
			}
			if r.Slots != tt.expectedSlots {
				t.Errorf("Resolve().Slots = %d, expected %d", r.Slots, tt.expectedSlots)
			}
			if r.Airflow != AirflowUnset {
				t.Errorf("Resolve().Airflow = %q, expected unset", r.Airflow)
			}
		})
	}
}

func TestDeviceTypeUpdateApply(t *testing.T) {
	orig := DeviceType{
		Slug:    "poweredge-r740",
		Model:   "PowerEdge R740",
		UHeight: 2,
		Tags:    []string{"dell"},
	}

	model := "PowerEdge R750"
	airflow := AirflowFrontToRear
	tags := []string{"dell", "gen15"}
	updated := DeviceTypeUpdate{Model: &model, Airflow: &airflow, Tags: &tags}.Apply(orig)

	if updated.Model != "PowerEdge R750" {
		t.Errorf("Apply().Model = %q, expected %q", updated.Model, "PowerEdge R750")
	}
	if updated.Slug != orig.Slug {
		t.Errorf("Apply().Slug = %q, expected %q", updated.Slug, orig.Slug)
	}
	if updated.UHeight != 2 {
		t.Errorf("Apply().UHeight = %v, expected 2", updated.UHeight)
	}
	if updated.Airflow != AirflowFrontToRear {
		t.Errorf("Apply().Airflow = %q, expected %q", updated.Airflow, AirflowFrontToRear)
	}

	tags[0] = "mutated"
	if updated.Tags[0] != "dell" {
		t.Error("Apply() result shares the tags slice with the update")
	}
	if orig.Model != "PowerEdge R740" || len(orig.Tags) != 1 {
		t.Error("Apply() modified the original record")
	}
}

func TestDeviceTypeClone(t *testing.T) {
	orig := DeviceType{Slug: "switch-48", UHeight: 1, IsFullDepth: BoolPtr(false), Tags: []string{"network"}}
	c := orig.Clone()

	*c.IsFullDepth = true
	c.Tags[0] = "changed"

	if *orig.IsFullDepth {
		t.Error("Clone() shares IsFullDepth with the original")
	}
	if orig.Tags[0] != "network" {
		t.Error("Clone() shares Tags with the original")
	}
}

func TestDisplayName(t *testing.T) {
	if got := (DeviceType{Slug: "ups-2u", Model: "Smart-UPS 1500"}).DisplayName(); got != "Smart-UPS 1500" {
		t.Errorf("DisplayName() = %q, expected %q", got, "Smart-UPS 1500")
	}
	if got := (DeviceType{Slug: "ups-2u"}).DisplayName(); got != "ups-2u" {
		t.Errorf("DisplayName() = %q, expected %q", got, "ups-2u")
	}
}

func TestFindDeviceType(t *testing.T) {
	types := []DeviceType{
		{Slug: "server-1u", UHeight: 1},
		{Slug: "server-2u", UHeight: 2},
	}

	dt, ok := FindDeviceType(types, "server-2u")
	if !ok || dt.UHeight != 2 {
		t.Errorf("FindDeviceType(server-2u) = %+v, %v", dt, ok)
	}

	if _, ok := FindDeviceType(types, "missing"); ok {
		t.Error("FindDeviceType(missing) found a record")
	}

	if i := IndexOfDeviceType(types, "server-1u"); i != 0 {
		t.Errorf("IndexOfDeviceType(server-1u) = %d, expected 0", i)
	}
}

func TestRackUpdateSnapshot(t *testing.T) {
	rack := Rack{Name: "Main", Height: 42, Width: 19, ShowRear: true}
	snap := rack.Snapshot()

	height := 12
	name := "Lab"
	changed := RackUpdate{Name: &name, Height: &height}.Apply(rack)
	if changed.Height != 12 || changed.Name != "Lab" || !changed.ShowRear {
		t.Errorf("Apply() = %+v", changed)
	}

	restored := snap.Apply(changed)
	if restored.Name != rack.Name || restored.Height != rack.Height || restored.Width != rack.Width || restored.ShowRear != rack.ShowRear {
		t.Errorf("Snapshot().Apply() = %+v, expected %+v", restored, rack)
	}
}

func TestNewLayoutDefaults(t *testing.T) {
	l := NewLayout("Home lab", 0)
	if l.Rack.Height != 42 {
		t.Errorf("NewLayout().Rack.Height = %d, expected 42", l.Rack.Height)
	}
	if l.Rack.Devices == nil || l.DeviceTypes == nil {
		t.Error("NewLayout() should start with empty, non-nil collections")
	}
	if err := ValidateLayout(l); err != nil {
		t.Errorf("ValidateLayout(NewLayout()) error = %v", err)
	}
}

func TestValidateDeviceType(t *testing.T) {
	tests := []struct {
		name    string
		dt      DeviceType
		wantErr string
	}{
		{name: "valid", dt: DeviceType{Slug: "server-1u", UHeight: 1}},
		{name: "valid half U", dt: DeviceType{Slug: "shelf", UHeight: 0.5}},
		{name: "valid airflow", dt: DeviceType{Slug: "switch", UHeight: 1, Airflow: AirflowRearToFront}},
		{name: "missing slug", dt: DeviceType{UHeight: 1}, wantErr: "Slug"},
		{name: "uppercase slug", dt: DeviceType{Slug: "Server", UHeight: 1}, wantErr: "slug"},
		{name: "zero height", dt: DeviceType{Slug: "server", UHeight: 0}, wantErr: "UHeight"},
		{name: "not a half U", dt: DeviceType{Slug: "server", UHeight: 1.25}, wantErr: "halfu"},
		{name: "unknown airflow", dt: DeviceType{Slug: "server", UHeight: 1, Airflow: "top-down"}, wantErr: "Airflow"},
		{name: "bad colour", dt: DeviceType{Slug: "server", UHeight: 1, Colour: "#ff0000"}, wantErr: "Colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeviceType(tt.dt)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateDeviceType() error = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateDeviceType() error = nil, expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateDeviceType() error = %q, expected to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidatePlacedDevice(t *testing.T) {
	if err := ValidatePlacedDevice(PlacedDevice{DeviceType: "server-1u", Position: 1, Face: FaceFront}); err != nil {
		t.Errorf("ValidatePlacedDevice() error = %v", err)
	}
	if err := ValidatePlacedDevice(PlacedDevice{DeviceType: "server-1u", Position: 0, Face: FaceFront}); err == nil {
		t.Error("ValidatePlacedDevice() accepted position 0")
	}
	if err := ValidatePlacedDevice(PlacedDevice{DeviceType: "server-1u", Position: 3, Face: "top"}); err == nil {
		t.Error("ValidatePlacedDevice() accepted an unknown face")
	}
}
