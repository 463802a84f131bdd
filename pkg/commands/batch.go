package commands

import (
	"fmt"

	"github.com/braunma/rackplanner/pkg/history"
)

// Batch runs several commands as one history entry
type Batch struct {
	meta
	children []history.Command
}

// NewBatch creates a batch of children, executed in order and undone in reverse
func NewBatch(description string, children ...history.Command) *Batch {
	return &Batch{
		meta:     newMeta(KindBatch, description),
		children: children,
	}
}

// Execute runs every child. If one fails, the children already run are undone
// and the error is returned.
func (b *Batch) Execute() error {
	for i, child := range b.children {
		if err := child.Execute(); err != nil {
			if rerr := undoAll(b.children[:i]); rerr != nil {
				return fmt.Errorf("%s: %w (rollback failed: %v)", child.Description(), err, rerr)
			}
			return fmt.Errorf("%s: %w", child.Description(), err)
		}
	}
	return nil
}

// Undo reverts every child in reverse order. If one fails, the children already
// reverted are executed again.
func (b *Batch) Undo() error {
	for i := len(b.children) - 1; i >= 0; i-- {
		if err := b.children[i].Undo(); err != nil {
			for _, child := range b.children[i+1:] {
				if rerr := child.Execute(); rerr != nil {
					return fmt.Errorf("undo %s: %w (rollback failed: %v)", b.children[i].Description(), err, rerr)
				}
			}
			return fmt.Errorf("undo %s: %w", b.children[i].Description(), err)
		}
	}
	return nil
}

// Children returns the commands in execution order
func (b *Batch) Children() []history.Command {
	out := make([]history.Command, len(b.children))
	copy(out, b.children)
	return out
}

func undoAll(cmds []history.Command) error {
	for i := len(cmds) - 1; i >= 0; i-- {
		if err := cmds[i].Undo(); err != nil {
			return err
		}
	}
	return nil
}
