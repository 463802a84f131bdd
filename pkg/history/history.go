// Package history keeps the undo and redo stacks of executed commands.
package history

import (
	"fmt"
	"time"

	"github.com/braunma/rackplanner/internal/constants"
	"github.com/braunma/rackplanner/pkg/utils"
)

// Command is a reversible mutation. Execute and Undo each either complete or leave
// the layout as it was.
type Command interface {
	ID() string
	Type() string
	Description() string
	Timestamp() time.Time
	Execute() error
	Undo() error
}

// History is a bounded two-stack undo/redo log. It is not safe for concurrent use.
type History struct {
	undo   []Command
	redo   []Command
	limit  int
	logger *utils.Logger
}

// New creates a history holding at most limit undo entries.
// A limit below one uses the default.
func New(limit int, logger *utils.Logger) *History {
	if limit < 1 {
		limit = constants.DefaultHistoryLimit
	}
	if logger == nil {
		logger = utils.NewLogger(false)
	}
	return &History{
		limit:  limit,
		logger: logger,
	}
}

// Execute runs cmd and records it. Any redo entries are discarded.
// If cmd fails nothing is recorded and the redo stack is kept.
func (h *History) Execute(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Description(), err)
	}

	h.push(cmd)
	h.redo = nil

	h.logger.Debug("Executed %s (%s)", cmd.Description(), cmd.ID())
	return nil
}

// Undo reverts the most recent command. It is a no-op when there is nothing to undo.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return nil
	}

	cmd := h.undo[len(h.undo)-1]
	if err := cmd.Undo(); err != nil {
		return fmt.Errorf("undo %s: %w", cmd.Description(), err)
	}

	h.undo[len(h.undo)-1] = nil
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)

	h.logger.Debug("Undid %s", cmd.Description())
	return nil
}

// Redo re-executes the most recently undone command. It is a no-op when there is nothing to redo.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return nil
	}

	cmd := h.redo[len(h.redo)-1]
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("redo %s: %w", cmd.Description(), err)
	}

	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	h.push(cmd)

	h.logger.Debug("Redid %s", cmd.Description())
	return nil
}

// push appends to the undo stack, dropping the oldest entry when full
func (h *History) push(cmd Command) {
	if len(h.undo) >= h.limit {
		dropped := h.undo[0]
		n := copy(h.undo, h.undo[1:])
		h.undo[n] = nil
		h.undo = h.undo[:n]
		h.logger.Debug("History full, dropped %s", dropped.Description())
	}
	h.undo = append(h.undo, cmd)
}

// CanUndo reports whether there is a command to undo
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether there is a command to redo
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDescription returns the description of the next command to undo, or "" if there is none
func (h *History) UndoDescription() string {
	if len(h.undo) == 0 {
		return ""
	}
	return h.undo[len(h.undo)-1].Description()
}

// RedoDescription returns the description of the next command to redo, or "" if there is none
func (h *History) RedoDescription() string {
	if len(h.redo) == 0 {
		return ""
	}
	return h.redo[len(h.redo)-1].Description()
}

// Entries returns the undo stack, oldest first
func (h *History) Entries() []Command {
	out := make([]Command, len(h.undo))
	copy(out, h.undo)
	return out
}

// Len returns the number of undoable commands
func (h *History) Len() int {
	return len(h.undo)
}

// Limit returns the maximum number of undo entries
func (h *History) Limit() int {
	return h.limit
}
