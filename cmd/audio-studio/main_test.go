package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/audio-studio/internal/audio"
	"github.com/handiism/audio-studio/internal/library"
	"github.com/handiism/audio-studio/internal/model"
)

func newTestHandler(t *testing.T) *library.Handler {
	t.Helper()
	h := library.NewHandler(model.NewLibrary(), nil, nil, nil)
	for _, p := range []string{"/music/Roxy - Avalon.mp3", "/music/Roxy - More.mp3"} {
		if _, err := h.AddSong(p); err != nil {
			t.Fatal(err)
		}
	}
	return h
}

func TestFindPlaylist(t *testing.T) {
	h := newTestHandler(t)
	p, err := h.CreatePlaylist("Demos")
	if err != nil {
		t.Fatal(err)
	}
	lib := h.Library()

	tests := []struct {
		ref  string
		want *model.Playlist
	}{
		{p.ID, p},
		{"demos", p},
		{" Demos ", p},
		{"missing", nil},
	}
	for _, tt := range tests {
		if got := findPlaylist(lib, tt.ref); got != tt.want {
			t.Errorf("findPlaylist(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestSongArtist(t *testing.T) {
	h := newTestHandler(t)
	lib := h.Library()
	avalon, more := lib.Songs[0], lib.Songs[1]

	p, err := h.CreateProject("Roxy Music")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.AssignSong(avalon, p); err != nil {
		t.Fatal(err)
	}

	if got := songArtist(lib, avalon); got != "Roxy Music" {
		t.Errorf("songArtist(owned) = %q, want Roxy Music", got)
	}
	if got := songArtist(lib, more); got != "Roxy" {
		t.Errorf("songArtist(unowned) = %q, want Roxy", got)
	}
}

func TestExportPlaylist(t *testing.T) {
	h := newTestHandler(t)
	lib := h.Library()
	p, err := h.CreatePlaylist("Demos / Live")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.AddSongToPlaylist(p, lib.Songs[1]); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	creator := audio.NewPlaylistCreator(audio.FormatM3U, false)
	path, err := exportPlaylist(context.Background(), h, creator, p, dir)
	if err != nil {
		t.Fatalf("exportPlaylist() error = %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Ext(path) != ".m3u" {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "/music/Roxy - More.mp3") {
		t.Errorf("exported playlist = %q", data)
	}
}

func TestRenderTable(t *testing.T) {
	h := newTestHandler(t)
	out := renderTable(
		[]string{"#", "Title", "Artist"},
		songRows(h, h.Songs()),
		[]columnAlignment{alignRight},
	)
	for _, want := range []string{"Avalon", "More", "Roxy"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Error("renderTable() with no headers is not empty")
	}
}
