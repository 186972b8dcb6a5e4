package model

import "github.com/google/uuid"

// Playlist is an ordered list of song references.
//
// Songs holds song paths in insertion order; the same path may appear more
// than once. Paths whose song was removed from the library are kept and
// skipped when the playlist is resolved.
type Playlist struct {
	// ID is the opaque handle assigned at creation.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Songs holds song paths in playlist order.
	Songs []string `json:"songs,omitempty"`

	// Note is a free-form user note.
	Note string `json:"note,omitempty"`
}

// NewPlaylist creates an empty playlist with a fresh handle.
func NewPlaylist(title string) *Playlist {
	return &Playlist{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Append adds a song path to the end of the playlist.
func (p *Playlist) Append(path string) {
	p.Songs = append(p.Songs, path)
}

// InsertAt inserts a song path at index i.
func (p *Playlist) InsertAt(i int, path string) {
	p.Songs = insertAt(p.Songs, i, path)
}

// RemoveAt removes the entry at index i and returns its path.
// ok is false if i is out of range.
func (p *Playlist) RemoveAt(i int) (path string, ok bool) {
	if i < 0 || i >= len(p.Songs) {
		return "", false
	}
	path = p.Songs[i]
	p.Songs = removeAt(p.Songs, i)
	return path, true
}
