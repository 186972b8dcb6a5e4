package command

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/handiism/audio-studio/internal/model"
)

// ErrAlreadyExecuted is returned by History.Submit for a command instance
// it has already run, including one that was later undone.
var ErrAlreadyExecuted = errors.New("command: already executed")

// Command is a reversible library mutation.
//
// Commands are compared by identity, so implementations must be pointer
// types.
type Command interface {
	// Name identifies the command kind in logs, e.g. "add-song".
	Name() string

	// Execute applies the mutation. It is called at most once per command.
	Execute(lib *model.Library) (applied bool, err error)

	// Undo reverts the most recent Execute, restoring collection
	// membership, ordering and attributes exactly.
	Undo(lib *model.Library)

	// Result describes what the last Execute affected: the created or
	// changed entity, or a count for bulk commands. It is only meaningful
	// after Execute applied.
	Result() any
}

// Saver persists the whole library.
type Saver interface {
	Save(lib *model.Library) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(lib *model.Library) error

// Save calls f(lib).
func (f SaverFunc) Save(lib *model.Library) error {
	return f(lib)
}

// History runs commands against a library and keeps them for undo.
type History struct {
	lib     *model.Library
	saver   Saver
	logger  *zap.Logger
	entries []Command
	seen    map[Command]struct{}
}

// NewHistory creates an empty history. saver and logger may be nil.
func NewHistory(lib *model.Library, saver Saver, logger *zap.Logger) *History {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &History{lib: lib, saver: saver, logger: logger, seen: make(map[Command]struct{})}
}

// Library returns the library the history mutates.
func (h *History) Library() *model.Library {
	return h.lib
}

// Submit executes cmd and, if it applied, pushes it and saves the library.
// Commands that do not apply are discarded.
//
// Each command instance runs at most once: submitting one again, whether it
// is still on the stack or was undone, returns ErrAlreadyExecuted without
// touching the library.
func (h *History) Submit(cmd Command) (bool, error) {
	if cmd == nil {
		return false, nil
	}
	if _, ok := h.seen[cmd]; ok {
		h.logger.Debug("command resubmitted", zap.String("command", cmd.Name()))
		return false, fmt.Errorf("submit %s: %w", cmd.Name(), ErrAlreadyExecuted)
	}
	h.seen[cmd] = struct{}{}

	applied, err := cmd.Execute(h.lib)
	if err != nil {
		h.logger.Debug("command rejected", zap.String("command", cmd.Name()), zap.Error(err))
		return false, err
	}
	if !applied {
		h.logger.Debug("command skipped", zap.String("command", cmd.Name()))
		return false, nil
	}

	h.entries = append(h.entries, cmd)
	h.logger.Debug("command executed", zap.String("command", cmd.Name()), zap.Int("depth", len(h.entries)))
	h.save(cmd, "execute")
	return true, nil
}

// UndoLast pops the most recent command and undoes it. It returns the
// undone command, or nil if the history was empty.
func (h *History) UndoLast() Command {
	if len(h.entries) == 0 {
		return nil
	}

	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]

	last.Undo(h.lib)
	h.logger.Debug("command undone", zap.String("command", last.Name()), zap.Int("depth", len(h.entries)))
	h.save(last, "undo")
	return last
}

// Len returns the number of commands that can be undone.
func (h *History) Len() int {
	return len(h.entries)
}

// Peek returns the command UndoLast would undo, or nil.
func (h *History) Peek() Command {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[len(h.entries)-1]
}

func (h *History) save(cmd Command, phase string) {
	if h.saver == nil {
		return
	}
	if err := h.saver.Save(h.lib); err != nil {
		h.logger.Warn("failed to save library",
			zap.String("command", cmd.Name()),
			zap.String("phase", phase),
			zap.Error(err))
	}
}
