package models

// Operation kinds understood by a script
const (
	OpAddType    = "add-type"
	OpUpdateType = "update-type"
	OpDeleteType = "delete-type"
	OpPlace      = "place"
	OpMove       = "move"
	OpRemove     = "remove"
	OpSetFace    = "set-face"
	OpSetName    = "set-name"
	OpUpdateRack = "update-rack"
	OpClear      = "clear"
	OpUndo       = "undo"
	OpRedo       = "redo"
)

// Script is an ordered list of edits replayed against a layout
type Script struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Operations []Operation `yaml:"operations" json:"operations" validate:"dive"`
}

// Operation is one user action. Which fields are read depends on Op:
//
//	add-type     device_type
//	update-type  slug, update
//	delete-type  slug
//	place        slug, position, face, name
//	move         index, position
//	remove       index
//	set-face     index, face
//	set-name     index, name
//	update-rack  rack
//	clear        -
//	undo, redo   times (default 1)
type Operation struct {
	Op         string            `yaml:"op" json:"op" validate:"required,oneof=add-type update-type delete-type place move remove set-face set-name update-rack clear undo redo"`
	Slug       string            `yaml:"slug,omitempty" json:"slug,omitempty"`
	DeviceType *DeviceType       `yaml:"device_type,omitempty" json:"device_type,omitempty"`
	Update     *DeviceTypeUpdate `yaml:"update,omitempty" json:"update,omitempty"`
	Rack       *RackUpdate       `yaml:"rack,omitempty" json:"rack,omitempty"`
	Index      *int              `yaml:"index,omitempty" json:"index,omitempty" validate:"omitempty,min=0"`
	Position   int               `yaml:"position,omitempty" json:"position,omitempty"`
	Face       Face              `yaml:"face,omitempty" json:"face,omitempty"`
	Name       string            `yaml:"name,omitempty" json:"name,omitempty"`
	Times      int               `yaml:"times,omitempty" json:"times,omitempty" validate:"min=0"`
}
