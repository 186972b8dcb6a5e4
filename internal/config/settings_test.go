package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/handiism/audio-studio/internal/audio"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.DataPath != filepath.Join("data", "library.json") {
		t.Errorf("DataPath = %q", s.DataPath)
	}
	if s.FadeInMs != 20 {
		t.Errorf("FadeInMs = %d, want 20", s.FadeInMs)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.DataPath = "/srv/library.json"
	s.PlaylistFormat = "zpl"
	s.FadeInMs = 50
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.DataPath != s.DataPath || got.PlaylistFormat != "zpl" || got.FadeIn() != 50*time.Millisecond {
		t.Errorf("Load() = %+v", got)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"modify_tags": false}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ModifyTags {
		t.Error("ModifyTags = true, want false")
	}
	if s.ScanConcurrency != 4 || len(s.AudioExtensions) != 3 {
		t.Errorf("defaults lost: %+v", s)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed", `{`, "parse settings"},
		{"bad format", `{"playlist_format": "xspf"}`, "playlist_format"},
		{"zero concurrency", `{"scan_concurrency": 0}`, "scan_concurrency"},
		{"loud volume", `{"default_volume": 1.5}`, "default_volume"},
		{"negative fade", `{"fade_in_ms": -1}`, "fade_in_ms"},
		{"empty data path", `{"data_path": " "}`, "data_path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestToPlaylistFormat(t *testing.T) {
	tests := []struct {
		value string
		want  audio.PlaylistFormat
	}{
		{"m3u", audio.FormatM3U},
		{"PLS", audio.FormatPLS},
		{"wpl", audio.FormatWPL},
		{"zpl", audio.FormatZPL},
		{"unknown", audio.FormatM3U},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := &Settings{PlaylistFormat: tt.value}
			if got := s.ToPlaylistFormat(); got != tt.want {
				t.Errorf("ToPlaylistFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAudioFile(t *testing.T) {
	s := DefaultSettings()
	tests := []struct {
		path string
		want bool
	}{
		{"/music/a.mp3", true},
		{"/music/B.FLAC", true},
		{"/music/c.wav", true},
		{"/music/cover.jpg", false},
		{"/music/noext", false},
	}
	for _, tt := range tests {
		if got := s.IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestToLoggingOptions(t *testing.T) {
	s := DefaultSettings()
	if got := s.ToLoggingOptions(false).Level; got != "info" {
		t.Errorf("Level = %q, want info", got)
	}
	if got := s.ToLoggingOptions(true).Level; got != "debug" {
		t.Errorf("verbose Level = %q, want debug", got)
	}
}
