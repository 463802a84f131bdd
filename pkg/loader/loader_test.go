package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/utils"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDataLoaderInitialization(t *testing.T) {
	logger := utils.NewLogger(true)
	loader := NewDataLoader("/test/path", logger)

	if loader == nil {
		t.Fatal("NewDataLoader() returned nil")
	}

	if loader.logger == nil {
		t.Error("DataLoader logger is nil")
	}

	if got := loader.resolve("layouts/a.yaml"); got != filepath.Join("/test/path", "layouts/a.yaml") {
		t.Errorf("resolve() = %q", got)
	}
	if got := loader.resolve("/abs/a.yaml"); got != "/abs/a.yaml" {
		t.Errorf("resolve() = %q, absolute paths should be kept", got)
	}
}

const layoutYAML = `
version: "1"
name: Home lab
rack:
  name: Rack A
  height: 12
  width: 19
  devices:
    - device_type: server-2u
      position: 1
      face: front
    - device_type: patch-panel
      position: 12
      face: rear
      name: PP-1
device_types:
  - slug: server-2u
    model: Server 2U
    u_height: 2
    airflow: front-to-rear
    colour: "#F00"
  - slug: patch-panel
    u_height: 1
    is_full_depth: false
    category: patch-panel
settings:
  display_mode: label
  show_airflow: true
`

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "layout.yaml", layoutYAML)

	dl := NewDataLoader(dir, nil)
	layout, err := dl.LoadLayout("layout.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Home lab", layout.Name)
	assert.Equal(t, 12, layout.Rack.Height)
	require.Len(t, layout.Rack.Devices, 2)
	assert.Equal(t, models.FaceRear, layout.Rack.Devices[1].Face)
	assert.Equal(t, "PP-1", layout.Rack.Devices[1].Name)

	require.Len(t, layout.DeviceTypes, 2)
	assert.Equal(t, "ff0000", layout.DeviceTypes[0].Colour)
	assert.Equal(t, models.AirflowFrontToRear, layout.DeviceTypes[0].Airflow)
	assert.Nil(t, layout.DeviceTypes[0].IsFullDepth)
	require.NotNil(t, layout.DeviceTypes[1].IsFullDepth)
	assert.False(t, *layout.DeviceTypes[1].IsFullDepth)
	assert.Equal(t, "607d8b", layout.DeviceTypes[1].Colour)
	assert.True(t, layout.Settings.ShowAirflow)
}

func TestLoadLayoutErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad-height.yaml", "name: x\nrack:\n  name: r\n  height: 0\n")
	writeFile(t, dir, "bad-face.yaml", "name: x\nrack:\n  name: r\n  height: 10\n  devices:\n    - device_type: a\n      position: 1\n      face: top\n")
	writeFile(t, dir, "not-yaml.yaml", "name: [unclosed\n")

	dl := NewDataLoader(dir, nil)

	tests := []string{"bad-height.yaml", "bad-face.yaml", "not-yaml.yaml", "missing.yaml"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := dl.LoadLayout(name)
			assert.Error(t, err)
		})
	}
}

func TestLoadLayoutEmptyCollections(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.yaml", "name: Empty\nrack:\n  name: r\n  height: 42\n")

	layout, err := NewDataLoader(dir, nil).LoadLayout("empty.yaml")
	require.NoError(t, err)
	assert.NotNil(t, layout.Rack.Devices)
	assert.NotNil(t, layout.DeviceTypes)
}

func TestSaveLayoutRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "layout.yaml", layoutYAML)

	dl := NewDataLoader(dir, nil)
	layout, err := dl.LoadLayout("layout.yaml")
	require.NoError(t, err)

	require.NoError(t, dl.SaveLayout("out/saved.yaml", layout))

	again, err := dl.LoadLayout("out/saved.yaml")
	require.NoError(t, err)
	assert.Equal(t, layout, again)
}

func TestLoadPacks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "packs/dell.yaml", `
- slug: dell-r740
  manufacturer: Dell
  model: PowerEdge R740
  u_height: 2
  airflow: front-to-rear
- slug: dell-r640
  manufacturer: Dell
  model: PowerEdge R640
  u_height: 1
`)
	writeFile(t, dir, "packs/generic/shelves.yml", `
- slug: shelf-half
  u_height: 0.5
  colour: "ABC"
`)
	writeFile(t, dir, "packs/README.md", "not a pack")

	dl := NewDataLoader(dir, nil)
	packs, err := dl.LoadPacks("packs")
	require.NoError(t, err)
	require.Len(t, packs, 2)

	assert.Equal(t, "dell", packs[0].Name)
	assert.Len(t, packs[0].DeviceTypes, 2)
	assert.Equal(t, "generic/shelves", packs[1].Name)
	assert.Equal(t, "aabbcc", packs[1].DeviceTypes[0].Colour)

	all, err := dl.LoadDeviceTypes("packs")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLoadPacksDerivesSlug(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "packs/ubiquiti.yaml", "- manufacturer: Ubiquiti\n  model: USW Pro 24\n  u_height: 1\n  category: network\n")

	packs, err := NewDataLoader(dir, nil).LoadPacks("packs")
	require.NoError(t, err)
	require.Len(t, packs, 1)

	dt := packs[0].DeviceTypes[0]
	assert.Equal(t, "ubiquiti-usw-pro-24", dt.Slug)
	assert.Equal(t, "7b61ff", dt.Colour)
}

func TestLoadPacksMissingFolder(t *testing.T) {
	packs, err := NewDataLoader(t.TempDir(), nil).LoadPacks("nope")
	require.NoError(t, err)
	assert.Empty(t, packs)
}

func TestLoadPacksRejectsInvalidDeviceType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "packs/bad.yaml", "- slug: Bad Slug\n  u_height: 1\n")

	_, err := NewDataLoader(dir, nil).LoadPacks("packs")
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ops.yaml", `
name: build
operations:
  - op: add-type
    device_type:
      slug: ups-2u
      u_height: 2
      colour: "#00FF00"
  - op: place
    slug: ups-2u
    position: 1
    face: front
  - op: update-rack
    rack:
      name: Renamed
  - op: remove
    index: 0
  - op: undo
    times: 2
`)

	script, err := NewDataLoader(dir, nil).LoadScript("ops.yaml")
	require.NoError(t, err)
	require.Len(t, script.Operations, 5)

	assert.Equal(t, models.OpAddType, script.Operations[0].Op)
	assert.Equal(t, "00ff00", script.Operations[0].DeviceType.Colour)
	assert.Equal(t, models.FaceFront, script.Operations[1].Face)
	require.NotNil(t, script.Operations[2].Rack)
	assert.Equal(t, "Renamed", *script.Operations[2].Rack.Name)
	require.NotNil(t, script.Operations[3].Index)
	assert.Equal(t, 0, *script.Operations[3].Index)
	assert.Nil(t, script.Operations[1].Index)
	assert.Equal(t, 2, script.Operations[4].Times)
}

func TestLoadScriptRejectsUnknownOp(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ops.yaml", "operations:\n  - op: explode\n")

	_, err := NewDataLoader(dir, nil).LoadScript("ops.yaml")
	assert.Error(t, err)
}
