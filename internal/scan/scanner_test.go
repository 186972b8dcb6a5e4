package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/handiism/audio-studio/internal/config"
	"github.com/handiism/audio-studio/internal/library"
	"github.com/handiism/audio-studio/internal/model"
)

type fakeProber struct {
	mu    sync.Mutex
	calls int
}

func (p *fakeProber) DurationSeconds(path string) int {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return len(filepath.Base(path))
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func newFixture(t *testing.T) (string, *library.Handler, *fakeProber) {
	t.Helper()
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Roxy - Avalon.mp3"))
	touch(t, filepath.Join(dir, "b.wav"))
	touch(t, filepath.Join(dir, "cover.jpg"))
	touch(t, filepath.Join(dir, "sub", "c.FLAC"))

	prober := &fakeProber{}
	h := library.NewHandler(model.NewLibrary(), nil, prober, nil)
	if _, err := h.AddTrackedFolder(dir); err != nil {
		t.Fatal(err)
	}
	return dir, h, prober
}

func TestScanner_ImportsNewFiles(t *testing.T) {
	dir, h, prober := newFixture(t)

	var events []ProgressEvent
	s := NewScanner(config.DefaultSettings(), h, prober, nil, func(e ProgressEvent) {
		events = append(events, e)
	})

	res, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if want := (Result{Found: 3, Added: 3}); res != want {
		t.Errorf("Scan() = %+v, want %+v", res, want)
	}

	var got []string
	for _, song := range h.Library().Songs {
		got = append(got, song.Path)
	}
	want := []string{
		filepath.Join(dir, "Roxy - Avalon.mp3"),
		filepath.Join(dir, "b.wav"),
		filepath.Join(dir, "sub", "c.FLAC"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("songs = %v, want %v", got, want)
	}

	first := h.Library().Songs[0]
	if first.GuessedArtist != "Roxy" || first.DurationSeconds != len("Roxy - Avalon.mp3") {
		t.Errorf("first song = %+v", first)
	}
	if prober.calls != 3 {
		t.Errorf("probe calls = %d, want 3", prober.calls)
	}

	last := events[len(events)-1]
	if last.Level != LevelSuccess {
		t.Errorf("last event = %+v, want success", last)
	}
}

func TestScanner_SkipsKnownFiles(t *testing.T) {
	_, h, prober := newFixture(t)
	s := NewScanner(config.DefaultSettings(), h, prober, nil, nil)

	if _, err := s.Scan(context.Background()); err != nil {
		t.Fatal(err)
	}
	res, err := s.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if want := (Result{Found: 3, Skipped: 3}); res != want {
		t.Errorf("second Scan() = %+v, want %+v", res, want)
	}
	if prober.calls != 3 {
		t.Errorf("probe calls = %d, want 3", prober.calls)
	}
}

func TestScanner_EachImportIsUndoable(t *testing.T) {
	_, h, prober := newFixture(t)
	s := NewScanner(config.DefaultSettings(), h, prober, nil, nil)

	if _, err := s.Scan(context.Background()); err != nil {
		t.Fatal(err)
	}
	if name := h.Undo(); name != "add-song" {
		t.Errorf("Undo() = %q, want add-song", name)
	}
	if n := len(h.Library().Songs); n != 2 {
		t.Errorf("songs after undo = %d, want 2", n)
	}
}

func TestScanner_MissingFolderIsReported(t *testing.T) {
	h := library.NewHandler(model.NewLibrary(), nil, nil, nil)

	var warnings int
	s := NewScanner(config.DefaultSettings(), h, nil, nil, func(e ProgressEvent) {
		if e.Level == LevelWarning {
			warnings++
		}
	})

	res, err := s.ScanFolders(context.Background(), []string{filepath.Join(t.TempDir(), "gone")})
	if err != nil {
		t.Fatalf("ScanFolders() error = %v", err)
	}
	if res != (Result{}) {
		t.Errorf("ScanFolders() = %+v, want zero", res)
	}
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}
}

func TestScanner_NilProberLeavesDurationUnresolved(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mp3"))
	h := library.NewHandler(model.NewLibrary(), nil, nil, nil)

	if _, err := NewScanner(config.DefaultSettings(), h, nil, nil, nil).ScanFolders(context.Background(), []string{dir}); err != nil {
		t.Fatal(err)
	}
	if s := h.Library().Songs[0]; s.DurationResolved() {
		t.Errorf("DurationSeconds = %d, want unresolved", s.DurationSeconds)
	}
}

func TestScanner_Cancelled(t *testing.T) {
	_, h, prober := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(config.DefaultSettings(), h, prober, nil, nil).Scan(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Scan() error = %v, want context.Canceled", err)
	}
	if n := len(h.Library().Songs); n != 0 {
		t.Errorf("songs = %d, want 0", n)
	}
}
