package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/utils"
)

// Pack is a named set of device types loaded from one brand pack file
type Pack struct {
	Name        string
	DeviceTypes []models.DeviceType
}

// DataLoader handles loading and saving the YAML files the engine works with
type DataLoader struct {
	basePath string
	logger   *utils.Logger
}

// NewDataLoader creates a new data loader. Relative paths are resolved against basePath.
func NewDataLoader(basePath string, logger *utils.Logger) *DataLoader {
	if logger == nil {
		logger = utils.NewLogger(false)
	}
	return &DataLoader{
		basePath: basePath,
		logger:   logger,
	}
}

// LoadLayout reads a layout file and checks its field rules.
// Cross-record invariants are left to placement.CheckLayout.
func (dl *DataLoader) LoadLayout(path string) (models.Layout, error) {
	var layout models.Layout
	if err := dl.decodeFile(dl.resolve(path), &layout); err != nil {
		return models.Layout{}, err
	}

	for i := range layout.DeviceTypes {
		normalizeDeviceType(&layout.DeviceTypes[i])
	}
	if layout.Rack.Devices == nil {
		layout.Rack.Devices = []models.PlacedDevice{}
	}
	if layout.DeviceTypes == nil {
		layout.DeviceTypes = []models.DeviceType{}
	}

	if err := models.ValidateLayout(layout); err != nil {
		return models.Layout{}, fmt.Errorf("invalid layout in %s: %w", path, err)
	}

	dl.logger.Debug("Loaded layout %s: %d device types, %d devices", layout.Name, len(layout.DeviceTypes), len(layout.Rack.Devices))
	return layout, nil
}

// SaveLayout writes layout to path as YAML, creating parent directories as needed
func (dl *DataLoader) SaveLayout(path string, layout models.Layout) error {
	target := dl.resolve(path)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	dl.logger.Debug("Saved layout %s to %s", layout.Name, target)
	return nil
}

// LoadScript reads an operation script and checks its field rules
func (dl *DataLoader) LoadScript(path string) (models.Script, error) {
	var script models.Script
	if err := dl.decodeFile(dl.resolve(path), &script); err != nil {
		return models.Script{}, err
	}

	for _, op := range script.Operations {
		if op.DeviceType != nil {
			normalizeDeviceType(op.DeviceType)
		}
	}

	if err := models.ValidateScript(script); err != nil {
		return models.Script{}, fmt.Errorf("invalid script in %s: %w", path, err)
	}

	dl.logger.Debug("Loaded script with %d operations from %s", len(script.Operations), path)
	return script, nil
}

// LoadDeviceTypes loads every device type found in the YAML files under folder
func (dl *DataLoader) LoadDeviceTypes(folder string) ([]models.DeviceType, error) {
	packs, err := dl.LoadPacks(folder)
	if err != nil {
		return nil, err
	}

	var deviceTypes []models.DeviceType
	for _, p := range packs {
		deviceTypes = append(deviceTypes, p.DeviceTypes...)
	}
	dl.logger.Debug("Loaded %d device types from %s", len(deviceTypes), folder)
	return deviceTypes, nil
}

// LoadPacks loads brand packs from a folder. Each YAML file holds a list of device types
// and becomes one pack named after its path relative to folder, without extension.
// A missing folder yields no packs.
func (dl *DataLoader) LoadPacks(folder string) ([]Pack, error) {
	targetDir := dl.resolve(folder)

	// Check if directory exists
	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		dl.logger.Warning("Folder %s not found, skipping", folder)
		return nil, nil
	}

	yamlFiles, err := dl.findYAMLFiles(targetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files in %s: %w", targetDir, err)
	}

	if len(yamlFiles) == 0 {
		dl.logger.Warning("No YAML files found in %s", folder)
		return nil, nil
	}

	packs := make([]Pack, 0, len(yamlFiles))
	for _, file := range yamlFiles {
		var deviceTypes []models.DeviceType
		if err := dl.decodeFile(file, &deviceTypes); err != nil {
			return nil, err
		}

		for i := range deviceTypes {
			normalizeDeviceType(&deviceTypes[i])
			if err := models.ValidateDeviceType(deviceTypes[i]); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", file, err)
			}
		}

		packs = append(packs, Pack{Name: packName(targetDir, file), DeviceTypes: deviceTypes})
	}

	return packs, nil
}

// decodeFile reads a single YAML file into target
func (dl *DataLoader) decodeFile(path string, target interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(content, target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// findYAMLFiles recursively finds all YAML files in a directory, sorted by path
func (dl *DataLoader) findYAMLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			ext := filepath.Ext(path)
			if ext == ".yaml" || ext == ".yml" {
				files = append(files, path)
			}
		}

		return nil
	})

	sort.Strings(files)
	return files, err
}

func (dl *DataLoader) resolve(path string) string {
	if filepath.IsAbs(path) || dl.basePath == "" {
		return path
	}
	return filepath.Join(dl.basePath, path)
}

// normalizeDeviceType derives a missing slug from the model name and fills in the stored
// colour format, or a category colour when none is set
func normalizeDeviceType(dt *models.DeviceType) {
	if dt.Slug == "" && dt.Model != "" {
		dt.Slug = utils.Slugify(strings.TrimSpace(dt.Manufacturer + " " + dt.Model))
	}
	if dt.Colour != "" {
		dt.Colour = utils.NormalizeColor(dt.Colour)
	} else if dt.Category != "" {
		dt.Colour = utils.GetCategoryColor(dt.Category)
	}
}

func packName(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		rel = filepath.Base(file)
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
}
