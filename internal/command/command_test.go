package command

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/handiism/audio-studio/internal/model"
)

// folderCommand tracks a folder, or fails with err when set.
type folderCommand struct {
	path     string
	err      error
	executed int
	undone   int
}

func (c *folderCommand) Name() string { return "track-folder" }

func (c *folderCommand) Execute(lib *model.Library) (bool, error) {
	c.executed++
	if c.err != nil {
		return false, c.err
	}
	if c.path == "" {
		return false, nil
	}
	return lib.AddTrackedFolder(c.path), nil
}

func (c *folderCommand) Undo(lib *model.Library) {
	c.undone++
	lib.RemoveTrackedFolder(c.path)
}

func (c *folderCommand) Result() any { return c.path }

type countingSaver struct {
	saves int
	err   error
}

func (s *countingSaver) Save(*model.Library) error {
	s.saves++
	return s.err
}

func TestHistory_SubmitAndUndo(t *testing.T) {
	lib := model.NewLibrary()
	saver := &countingSaver{}
	h := NewHistory(lib, saver, nil)

	cmd := &folderCommand{path: "/music"}
	applied, err := h.Submit(cmd)
	if err != nil || !applied {
		t.Fatalf("Submit() = %v, %v; want true, nil", applied, err)
	}
	if h.Len() != 1 || h.Peek() != cmd {
		t.Fatalf("history after submit: len=%d", h.Len())
	}
	if saver.saves != 1 {
		t.Errorf("saves after submit = %d, want 1", saver.saves)
	}

	if got := h.UndoLast(); got != cmd {
		t.Fatalf("UndoLast() = %v, want submitted command", got)
	}
	if len(lib.TrackedFolders) != 0 {
		t.Errorf("TrackedFolders after undo = %v, want empty", lib.TrackedFolders)
	}
	if saver.saves != 2 {
		t.Errorf("saves after undo = %d, want 2", saver.saves)
	}
	if cmd.executed != 1 || cmd.undone != 1 {
		t.Errorf("executed=%d undone=%d, want 1 and 1", cmd.executed, cmd.undone)
	}
}

func TestHistory_UndoEmptyIsNoop(t *testing.T) {
	saver := &countingSaver{}
	h := NewHistory(model.NewLibrary(), saver, nil)

	if got := h.UndoLast(); got != nil {
		t.Errorf("UndoLast() on empty history = %v, want nil", got)
	}
	if saver.saves != 0 {
		t.Errorf("saves = %d, want 0", saver.saves)
	}
}

func TestHistory_SkippedAndRejectedCommandsAreNotPushed(t *testing.T) {
	saver := &countingSaver{}
	h := NewHistory(model.NewLibrary(), saver, nil)

	applied, err := h.Submit(&folderCommand{})
	if applied || err != nil {
		t.Errorf("Submit(no input) = %v, %v; want false, nil", applied, err)
	}

	wantErr := errors.New("rejected")
	applied, err = h.Submit(&folderCommand{path: "/x", err: wantErr})
	if applied || !errors.Is(err, wantErr) {
		t.Errorf("Submit(rejected) = %v, %v; want false, %v", applied, err, wantErr)
	}

	if applied, _ := h.Submit(nil); applied {
		t.Error("Submit(nil) applied")
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
	if saver.saves != 0 {
		t.Errorf("saves = %d, want 0", saver.saves)
	}
}

func TestHistory_UndoneCommandCannotBeRedone(t *testing.T) {
	lib := model.NewLibrary()
	h := NewHistory(lib, nil, nil)

	first := &folderCommand{path: "/a"}
	second := &folderCommand{path: "/b"}
	h.Submit(first)
	h.Submit(second)

	h.UndoLast()
	third := &folderCommand{path: "/c"}
	h.Submit(third)

	if h.Len() != 2 || h.Peek() != third {
		t.Fatalf("history should hold first and third, len=%d", h.Len())
	}
	h.UndoLast()
	if got := h.UndoLast(); got != first {
		t.Errorf("second UndoLast() = %v, want first command", got)
	}
	if second.undone != 1 {
		t.Errorf("second command undone %d times, want 1", second.undone)
	}
	if h.UndoLast() != nil {
		t.Error("history should be empty")
	}

	applied, err := h.Submit(second)
	if applied || !errors.Is(err, ErrAlreadyExecuted) {
		t.Errorf("Submit(undone) = %v, %v; want false, ErrAlreadyExecuted", applied, err)
	}
	if second.executed != 1 || len(lib.TrackedFolders) != 0 {
		t.Errorf("undone command ran again: executed=%d folders=%v", second.executed, lib.TrackedFolders)
	}
}

func TestHistory_ResubmitIsRejected(t *testing.T) {
	tests := []struct {
		name string
		cmd  *folderCommand
	}{
		{"applied", &folderCommand{path: "/music"}},
		{"skipped", &folderCommand{}},
		{"rejected", &folderCommand{path: "/x", err: errors.New("rejected")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := model.NewLibrary()
			saver := &countingSaver{}
			h := NewHistory(lib, saver, nil)

			h.Submit(tt.cmd)
			depth, saves := h.Len(), saver.saves

			applied, err := h.Submit(tt.cmd)
			if applied || !errors.Is(err, ErrAlreadyExecuted) {
				t.Errorf("second Submit() = %v, %v; want false, ErrAlreadyExecuted", applied, err)
			}
			if tt.cmd.executed != 1 {
				t.Errorf("executed %d times, want 1", tt.cmd.executed)
			}
			if h.Len() != depth || saver.saves != saves {
				t.Errorf("resubmit changed history: len %d -> %d, saves %d -> %d", depth, h.Len(), saves, saver.saves)
			}
		})
	}
}

func TestHistory_SaveFailureKeepsMutation(t *testing.T) {
	core, observed := observer.New(zap.WarnLevel)
	lib := model.NewLibrary()
	saver := &countingSaver{err: errors.New("disk full")}
	h := NewHistory(lib, saver, zap.New(core))

	applied, err := h.Submit(&folderCommand{path: "/music"})
	if !applied || err != nil {
		t.Fatalf("Submit() = %v, %v; want true, nil", applied, err)
	}
	if len(lib.TrackedFolders) != 1 {
		t.Errorf("mutation was rolled back after save failure")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}

	entries := observed.FilterMessage("failed to save library").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 save warning, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["phase"]; got != "execute" {
		t.Errorf("phase = %v, want execute", got)
	}
}

func TestSaverFunc(t *testing.T) {
	called := false
	var s Saver = SaverFunc(func(*model.Library) error {
		called = true
		return nil
	})
	if err := s.Save(model.NewLibrary()); err != nil || !called {
		t.Errorf("SaverFunc.Save() err=%v called=%v", err, called)
	}
}
