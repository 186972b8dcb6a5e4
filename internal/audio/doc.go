// Package audio reads and writes audio files on behalf of the library.
//
// # Probing
//
// Probe reads durations and embedded tags without decoding audio:
//
//	probe := audio.NewProbe(logger)
//	seconds := probe.DurationSeconds(song.Path)
//
// MP3, FLAC and WAV durations are supported. Anything else reports 0.
//
// # ID3 Tagging
//
// Tagger writes library metadata back into MP3 files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(song, projectName, artworkBytes)
//
// The tagger writes:
//   - Title (TIT2) and Subtitle (TIT3)
//   - Artist (TPE1)
//   - The revision number, as a comment described AUDIO_STUDIO_VERSION
//   - Cover Art (embedded front cover)
//
// # Playlist Export
//
// Export playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(pl.Title, entries)
//	os.WriteFile("demos.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
