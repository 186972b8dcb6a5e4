package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DurationUnresolved marks a song whose duration has not been probed yet.
const DurationUnresolved = -1

// artistTitleSeparator splits "Artist - Title" style file names.
const artistTitleSeparator = " - "

// Song represents one audio file in the library.
//
// The file path is the song's identity: it is unique across the library and
// every other entity refers to a song by its path.
//
// Example:
//
//	song := NewSong("/music/Roxy - Avalon.wav")
//	song.ApplyFileNameGuess()
//	// song.GuessedArtist = "Roxy", song.Title = "Avalon"
type Song struct {
	// Path is the absolute file path and the song's unique key.
	Path string `json:"path"`

	// Title is the song title, guessed from the file name on import.
	Title string `json:"title"`

	// Subtitle is a free-form secondary title (mix name, take, etc.).
	Subtitle string `json:"subtitle,omitempty"`

	// GuessedArtist is the artist parsed from the file name.
	GuessedArtist string `json:"guessed_artist"`

	// Version is the revision number within a version group.
	Version int `json:"version,omitempty"`

	// Note is a free-form user note.
	Note string `json:"note,omitempty"`

	// Owners holds the IDs of the projects this song is linked to, in link order.
	// Only LinkSongToProject and UnlinkSongFromProject modify it.
	Owners []string `json:"owners,omitempty"`

	// ChangeHistory records when the song entry was created or changed.
	ChangeHistory []time.Time `json:"change_history,omitempty"`

	// Group is the ID of the VersionGroup this song belongs to, if any.
	Group string `json:"group,omitempty"`

	// DurationSeconds caches the probed duration. DurationUnresolved until
	// first resolved; never persisted.
	DurationSeconds int `json:"-"`
}

// NewSong creates a song for the given path with an unresolved duration.
func NewSong(path string) *Song {
	return &Song{
		Path:            path,
		DurationSeconds: DurationUnresolved,
	}
}

// HasOwner reports whether the project with the given ID owns this song.
func (s *Song) HasOwner(projectID string) bool {
	return indexOf(s.Owners, projectID) >= 0
}

// DurationResolved reports whether the duration has been probed.
func (s *Song) DurationResolved() bool {
	return s.DurationSeconds >= 0
}

// FileName returns the base name of the song path.
func (s *Song) FileName() string {
	return filepath.Base(s.Path)
}

// DisplayTitle returns the title, falling back to the file name.
func (s *Song) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.FileName()
}

// ApplyFileNameGuess sets Title and GuessedArtist from the file name.
func (s *Song) ApplyFileNameGuess() {
	s.GuessedArtist, s.Title = GuessArtistTitle(s.Path)
}

// GuessArtistTitle parses "Artist - Title.ext" file names.
//
// The extension is dropped, then the name is split on " - ". The first
// segment is the artist and the second the title, and both are trimmed. If
// the separator is missing or either side is blank, both results are empty.
//
// Example:
//
//	GuessArtistTitle("/music/Artist - Title.wav") // "Artist", "Title"
//	GuessArtistTitle("/music/notitle.wav")        // "", ""
func GuessArtistTitle(path string) (artist, title string) {
	name := filepath.Base(path)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}

	parts := strings.Split(name, artistTitleSeparator)
	if len(parts) < 2 {
		return "", ""
	}

	artist = strings.TrimSpace(parts[0])
	title = strings.TrimSpace(parts[1])
	if artist == "" || title == "" {
		return "", ""
	}
	return artist, title
}
