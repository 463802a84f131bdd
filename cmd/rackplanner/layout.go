package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/braunma/rackplanner/pkg/airflow"
	"github.com/braunma/rackplanner/pkg/catalog"
	"github.com/braunma/rackplanner/pkg/loader"
	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/placement"
	"github.com/braunma/rackplanner/pkg/store"
	"github.com/braunma/rackplanner/pkg/utils"
)

func newNewCmd() *cobra.Command {
	var name string
	var height int

	cmd := &cobra.Command{
		Use:   "new <layout.yaml>",
		Short: "Create an empty layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if height == 0 {
				height = cfg.DefaultRackHeight
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			layout := models.NewLayout(name, height)
			if err := placement.CheckLayout(layout); err != nil {
				logger.Error("Invalid layout", err)
				return err
			}
			if err := loader.NewDataLoader("", logger).SaveLayout(args[0], layout); err != nil {
				logger.Error("Failed to save layout", err)
				return err
			}

			logger.Success("Created %s with a %dU rack", args[0], layout.Rack.Height)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Layout name (default: file name)")
	cmd.Flags().IntVar(&height, "height", 0, "Rack height in U (default: default_rack_height)")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <layout.yaml>",
		Short: "Check a layout and report blocked slots and airflow conflicts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(args[0])
			if err != nil {
				return err
			}

			printReport(s.Layout())
			logger.Success("%s is valid", args[0])
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	var slug, face string
	var position, exclude int

	cmd := &cobra.Command{
		Use:   "check <layout.yaml>",
		Short: "Preview whether a device can be placed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(args[0])
			if err != nil {
				return err
			}

			out := s.Check(placement.Candidate{
				DeviceType: slug,
				Position:   position,
				Face:       models.Face(face),
			}, exclude)

			switch out.Result {
			case placement.Valid:
				logger.Success("%s at U%d (%s) is valid", slug, position, face)
				return nil
			case placement.Blocked:
				logger.Warning("%s at U%d (%s) is blocked: %s", slug, position, face, out.Reason)
			default:
				logger.Warning("%s at U%d (%s) is invalid: %s", slug, position, face, out.Reason)
			}
			return fmt.Errorf("placement is %s", out.Result)
		},
	}

	cmd.Flags().StringVar(&slug, "type", "", "Device type slug")
	cmd.Flags().IntVar(&position, "position", 1, "Bottom U")
	cmd.Flags().StringVar(&face, "face", string(models.FaceFront), "Face: front, rear or both")
	cmd.Flags().IntVar(&exclude, "exclude", placement.NoExclude, "Index of a placed device to ignore, e.g. the one being moved")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

// openStore loads a layout file and checks every invariant
func openStore(path string) (*store.Store, error) {
	layout, err := loader.NewDataLoader("", logger).LoadLayout(path)
	if err != nil {
		logger.Error("Failed to load layout", err)
		return nil, err
	}

	s, err := store.New(layout, logger)
	if err != nil {
		logger.Error("Layout "+path+" is invalid", err)
		return nil, err
	}
	return s, nil
}

// loadCatalog builds the catalog from the configured brand pack folder
func loadCatalog() (*catalog.Catalog, error) {
	packs, err := loader.NewDataLoader("", logger).LoadPacks(cfg.CatalogDir)
	if err != nil {
		return nil, err
	}

	c := catalog.New(logger)
	for _, p := range packs {
		if err := c.Load(p.Name, p.DeviceTypes); err != nil {
			return nil, err
		}
	}
	logger.Debug("Catalog: %d device types from %s", c.Size(), utils.Pluralize(len(packs), "pack", "packs"))
	return c, nil
}

// printReport prints the rack contents, blocked slots per face and airflow conflicts
func printReport(l models.Layout) {
	rack := l.Rack
	logger.Info("%s: %s, %dU, %d %s, %d device %s", l.Name, rack.Name, rack.Height,
		len(rack.Devices), utils.Pluralize(len(rack.Devices), "device", "devices"),
		len(l.DeviceTypes), utils.Pluralize(len(l.DeviceTypes), "type", "types"))

	for i, d := range rack.Devices {
		dt, _ := models.FindDeviceType(l.DeviceTypes, d.DeviceType)
		span := models.Resolve(dt)
		logger.Debug("  [%d] U%d-U%d %-5s %s", i, d.Position, d.Position+span.Slots-1, d.Face, d.Label())
	}

	for _, face := range []models.Face{models.FaceFront, models.FaceRear} {
		blocked := placement.BlockedSlots(rack, face, l.DeviceTypes)
		if len(blocked) == 0 {
			continue
		}
		ranges := make([]string, len(blocked))
		for i, r := range blocked {
			ranges[i] = fmt.Sprintf("U%d-U%d", r.Bottom, r.Top)
		}
		logger.Info("Blocked on %s view: %s", face, strings.Join(ranges, ", "))
	}

	conflicts := airflow.FindConflicts(rack, l.DeviceTypes)
	for _, c := range conflicts {
		logger.Warning("Airflow conflict at U%d (%s): %s exhausts into %s",
			c.Position, c.Face, rack.Devices[c.Lower].Label(), rack.Devices[c.Upper].Label())
	}
	if len(conflicts) == 0 && l.Settings.ShowAirflow {
		logger.Info("No airflow conflicts")
	}
}
