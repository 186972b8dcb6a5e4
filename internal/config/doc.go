// Package config provides configuration management for audio-studio.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to playlist, tagging and logging options for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Library stored in data/library.json, relative to the working directory
//	// MP3, FLAC and WAV files picked up by folder scans
//	// 20 ms fade-in when playback starts
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Malformed or invalid file. A missing file yields the defaults.
//	}
//
// # Saving Settings
//
//	settings.DataPath = "/srv/studio/library.json"
//	err := settings.Save("/path/to/config.json")
package config
