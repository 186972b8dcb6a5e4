package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectType classifies a ProjectArtist.
type ProjectType string

const (
	// ProjectTypeArtist is a performing artist or alias.
	ProjectTypeArtist ProjectType = "artist"

	// ProjectTypeProject is a body of work such as an album in progress.
	ProjectTypeProject ProjectType = "project"

	// ProjectTypeLabel is a label grouping several artists.
	ProjectTypeLabel ProjectType = "label"
)

// ProjectArtist groups songs under an artist, project or label.
//
// Projects form a tree through Parent and Children (both hold project IDs).
// Songs holds the paths of owned songs in link order and mirrors
// Song.Owners; see LinkSongToProject.
type ProjectArtist struct {
	// ID is the opaque handle assigned at creation.
	ID string `json:"id"`

	// Name is the display name, e.g. "Worldroom".
	Name string `json:"name"`

	// Type is artist, project or label.
	Type ProjectType `json:"type,omitempty"`

	// Created is when the project was created.
	Created time.Time `json:"created"`

	// Note is a free-form user note.
	Note string `json:"note,omitempty"`

	// Description is a longer free-form description.
	Description string `json:"description,omitempty"`

	// ImagePath points at the project image on disk, if any.
	ImagePath string `json:"image_path,omitempty"`

	// Songs holds the paths of owned songs in link order.
	Songs []string `json:"songs,omitempty"`

	// Parent is the ID of the parent project; empty at top level.
	Parent string `json:"parent,omitempty"`

	// Children holds the IDs of child projects.
	Children []string `json:"children,omitempty"`
}

// NewProject creates a project with a fresh handle.
func NewProject(name string, typ ProjectType, created time.Time) *ProjectArtist {
	return &ProjectArtist{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    typ,
		Created: created,
	}
}

// HasSong reports whether the project owns the song with the given path.
func (p *ProjectArtist) HasSong(path string) bool {
	return indexOf(p.Songs, path) >= 0
}
