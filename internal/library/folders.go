package library

import (
	"path/filepath"

	"github.com/handiism/audio-studio/internal/model"
)

// AddTrackedFolder adds a folder to the scan list. Already tracked folders
// do not apply.
type AddTrackedFolder struct {
	path string
}

// NewAddTrackedFolder creates an AddTrackedFolder command.
func NewAddTrackedFolder(path string) *AddTrackedFolder {
	return &AddTrackedFolder{path: path}
}

// Name implements command.Command.
func (c *AddTrackedFolder) Name() string { return "add-tracked-folder" }

// Result implements command.Command.
func (c *AddTrackedFolder) Result() any { return c.path }

// Execute implements command.Command.
func (c *AddTrackedFolder) Execute(lib *model.Library) (bool, error) {
	if c.path == "" {
		return false, nil
	}
	if abs, err := filepath.Abs(c.path); err == nil {
		c.path = abs
	}
	return lib.AddTrackedFolder(c.path), nil
}

// Undo implements command.Command.
func (c *AddTrackedFolder) Undo(lib *model.Library) {
	lib.RemoveTrackedFolder(c.path)
}

// RemoveTrackedFolder drops a folder from the scan list.
type RemoveTrackedFolder struct {
	path  string
	index int
}

// NewRemoveTrackedFolder creates a RemoveTrackedFolder command.
func NewRemoveTrackedFolder(path string) *RemoveTrackedFolder {
	return &RemoveTrackedFolder{path: path}
}

// Name implements command.Command.
func (c *RemoveTrackedFolder) Name() string { return "remove-tracked-folder" }

// Result implements command.Command.
func (c *RemoveTrackedFolder) Result() any { return c.path }

// Execute implements command.Command.
func (c *RemoveTrackedFolder) Execute(lib *model.Library) (bool, error) {
	if c.path == "" {
		return false, nil
	}
	c.index = lib.RemoveTrackedFolder(c.path)
	return c.index >= 0, nil
}

// Undo implements command.Command.
func (c *RemoveTrackedFolder) Undo(lib *model.Library) {
	lib.InsertTrackedFolder(c.index, c.path)
}
