package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/audio-studio/internal/audio"
	"github.com/handiism/audio-studio/internal/logging"
)

// Settings holds all configuration options.
type Settings struct {
	// Library settings
	DataPath        string   `json:"data_path"`
	AudioExtensions []string `json:"audio_extensions"`
	ScanConcurrency int      `json:"scan_concurrency"`

	// Playlist export settings
	PlaylistFormat string `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// Playback settings
	FadeInMs      int     `json:"fade_in_ms"`
	DefaultVolume float64 `json:"default_volume"`

	// Project image settings
	ProjectImageMaxSize int `json:"project_image_max_size"`

	// Interface settings
	LogLevel string `json:"log_level"` // debug, info, warn, error
	GUIStyle string `json:"gui_style"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataPath:        filepath.Join("data", "library.json"),
		AudioExtensions: []string{".mp3", ".flac", ".wav"},
		ScanConcurrency: 4,

		PlaylistFormat: "m3u",
		M3UExtended:    true,

		ModifyTags: true,

		FadeInMs:      20,
		DefaultVolume: 1.0,

		ProjectImageMaxSize: 1000,

		LogLevel: "info",
		GUIStyle: "dark",
	}
}

// Load reads settings from a JSON file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot be used.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.DataPath) == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if s.ScanConcurrency < 1 {
		return fmt.Errorf("scan_concurrency must be at least 1, got %d", s.ScanConcurrency)
	}
	if _, ok := audio.ParsePlaylistFormat(s.PlaylistFormat); !ok {
		return fmt.Errorf("playlist_format: unsupported value %q", s.PlaylistFormat)
	}
	if s.FadeInMs < 0 {
		return fmt.Errorf("fade_in_ms must not be negative, got %d", s.FadeInMs)
	}
	if s.DefaultVolume < 0 || s.DefaultVolume > 1 {
		return fmt.Errorf("default_volume must be within [0, 1], got %v", s.DefaultVolume)
	}
	return nil
}

// ToPlaylistFormat converts the playlist_format setting. Unknown values
// fall back to M3U.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	if f, ok := audio.ParsePlaylistFormat(s.PlaylistFormat); ok {
		return f
	}
	return audio.FormatM3U
}

// ToTagConfig converts settings to a TagConfig.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	return cfg
}

// ToLoggingOptions converts settings to logging options. verbose forces
// debug output.
func (s *Settings) ToLoggingOptions(verbose bool) logging.Options {
	opts := logging.Options{Level: s.LogLevel}
	if verbose {
		opts.Level = "debug"
	}
	return opts
}

// FadeIn returns the playback fade-in duration.
func (s *Settings) FadeIn() time.Duration {
	return time.Duration(s.FadeInMs) * time.Millisecond
}

// IsAudioFile reports whether path has one of the configured audio
// extensions, compared case-insensitively.
func (s *Settings) IsAudioFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range s.AudioExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
