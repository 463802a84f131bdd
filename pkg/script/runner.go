// Package script replays operation scripts against a layout through the command history,
// the same path interactive edits take.
package script

import (
	"errors"
	"fmt"

	"github.com/braunma/rackplanner/pkg/catalog"
	"github.com/braunma/rackplanner/pkg/commands"
	"github.com/braunma/rackplanner/pkg/history"
	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/store"
	"github.com/braunma/rackplanner/pkg/utils"
)

var (
	ErrMissingField = errors.New("operation is missing a required field")
	ErrUnknownOp    = errors.New("unknown operation")
)

// Runner applies script operations to a store
type Runner struct {
	store   *store.Store
	history *history.History
	catalog *catalog.Catalog
	logger  *utils.Logger
	applied int
}

// NewRunner creates a runner. The catalog may be nil, in which case place never imports device types.
func NewRunner(s *store.Store, h *history.History, c *catalog.Catalog, logger *utils.Logger) *Runner {
	if logger == nil {
		logger = utils.NewLogger(false)
	}
	return &Runner{
		store:   s,
		history: h,
		catalog: c,
		logger:  logger,
	}
}

// Run applies every operation in order and stops at the first failure.
// Operations before the failure stay applied and remain undoable.
func (r *Runner) Run(s models.Script) error {
	r.logger.Info("Applying %d operations...", len(s.Operations))

	for i, op := range s.Operations {
		r.logger.Debug("──── Operation %d/%d: %s ────", i+1, len(s.Operations), op.Op)
		if err := r.Apply(op); err != nil {
			return fmt.Errorf("operation %d (%s): %w", i+1, op.Op, err)
		}
	}

	r.logger.Success("Applied %d operations", len(s.Operations))
	return nil
}

// Apply runs a single operation
func (r *Runner) Apply(op models.Operation) error {
	switch op.Op {
	case models.OpUndo:
		return r.repeat(op.Times, r.history.CanUndo, r.history.Undo)
	case models.OpRedo:
		return r.repeat(op.Times, r.history.CanRedo, r.history.Redo)
	}

	cmd, err := r.command(op)
	if err != nil {
		return err
	}
	if err := r.history.Execute(cmd); err != nil {
		return err
	}

	r.applied++
	r.logger.Debug("✓ %s", cmd.Description())
	return nil
}

// Applied returns how many commands the runner has executed
func (r *Runner) Applied() int {
	return r.applied
}

// command builds the command for op
func (r *Runner) command(op models.Operation) (history.Command, error) {
	switch op.Op {
	case models.OpAddType:
		return r.addType(op)

	case models.OpUpdateType:
		if op.Slug == "" || op.Update == nil {
			return nil, fmt.Errorf("%w: update-type needs slug and update", ErrMissingField)
		}
		return commands.NewUpdateDeviceType(r.store, op.Slug, *op.Update), nil

	case models.OpDeleteType:
		if op.Slug == "" {
			return nil, fmt.Errorf("%w: delete-type needs slug", ErrMissingField)
		}
		return commands.NewDeleteDeviceType(r.store, op.Slug), nil

	case models.OpPlace:
		return r.place(op)

	case models.OpMove, models.OpRemove, models.OpSetFace, models.OpSetName:
		return r.deviceCommand(op)

	case models.OpUpdateRack:
		if op.Rack == nil {
			return nil, fmt.Errorf("%w: update-rack needs rack", ErrMissingField)
		}
		return commands.NewUpdateRack(r.store, *op.Rack), nil

	case models.OpClear:
		return commands.NewClearRack(r.store), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
}

// deviceCommand builds a command addressing a placed device by index
func (r *Runner) deviceCommand(op models.Operation) (history.Command, error) {
	if op.Index == nil {
		return nil, fmt.Errorf("%w: %s needs index", ErrMissingField, op.Op)
	}
	index := *op.Index

	switch op.Op {
	case models.OpMove:
		return commands.NewMoveDevice(r.store, index, op.Position), nil
	case models.OpRemove:
		return commands.NewRemoveDevice(r.store, index), nil
	case models.OpSetFace:
		return commands.NewSetDeviceFace(r.store, index, op.Face), nil
	default:
		return commands.NewSetDeviceName(r.store, index, op.Name), nil
	}
}

// addType adds the inline device type, or imports op.Slug from the catalog
func (r *Runner) addType(op models.Operation) (history.Command, error) {
	if op.DeviceType != nil {
		return commands.NewAddDeviceType(r.store, *op.DeviceType), nil
	}
	if op.Slug == "" {
		return nil, fmt.Errorf("%w: add-type needs device_type or slug", ErrMissingField)
	}

	dt, ok := r.lookup(op.Slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not in the catalog", store.ErrUnknownDeviceType, op.Slug)
	}
	return commands.NewAddDeviceType(r.store, dt), nil
}

// place places a device. A slug the layout lacks but the catalog has is imported
// in the same history entry.
func (r *Runner) place(op models.Operation) (history.Command, error) {
	if op.Slug == "" {
		return nil, fmt.Errorf("%w: place needs slug", ErrMissingField)
	}

	face := op.Face
	if face == "" {
		face = models.FaceFront
	}
	device := models.PlacedDevice{DeviceType: op.Slug, Position: op.Position, Face: face, Name: op.Name}

	if _, ok := models.FindDeviceType(r.store.DeviceTypes(), op.Slug); ok {
		return commands.NewPlaceDevice(r.store, device), nil
	}

	dt, ok := r.lookup(op.Slug)
	if !ok {
		return commands.NewPlaceDevice(r.store, device), nil
	}

	r.logger.Debug("Importing %s from catalog", op.Slug)
	return commands.NewBatch("Place "+dt.DisplayName(),
		commands.NewAddDeviceType(r.store, dt),
		commands.NewPlaceDevice(r.store, device),
	), nil
}

func (r *Runner) lookup(slug string) (models.DeviceType, bool) {
	if r.catalog == nil {
		return models.DeviceType{}, false
	}
	return r.catalog.Get(slug)
}

// repeat calls step up to times (at least once) while can reports true
func (r *Runner) repeat(times int, can func() bool, step func() error) error {
	if times < 1 {
		times = 1
	}
	for i := 0; i < times && can(); i++ {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
