package library

import (
	"strings"
	"time"

	"github.com/handiism/audio-studio/internal/model"
)

// unknownArtist is the placeholder artist name that is never sorted.
const unknownArtist = "unknown"

// SortSongsToProjects assigns every unowned song to a project named after
// its guessed artist.
//
// Songs are visited in library order. A song is skipped when it already
// has an owner or when its guessed artist is blank or "unknown" (any case).
// Otherwise it is linked to the first project whose name matches the artist
// case-insensitively; if there is none, a project named exactly like the
// guessed artist is created first. Projects created earlier in the same run
// are matched like existing ones.
type SortSongsToProjects struct {
	created time.Time

	links    []*linkRecord
	projects []*model.ProjectArtist
}

type linkRecord struct {
	song    *model.Song
	project *model.ProjectArtist
}

// NewSortSongsToProjects creates a SortSongsToProjects command. created is
// the creation time given to new projects.
func NewSortSongsToProjects(created time.Time) *SortSongsToProjects {
	return &SortSongsToProjects{created: created}
}

// Name implements command.Command.
func (c *SortSongsToProjects) Name() string { return "sort-songs-to-projects" }

// Result implements command.Command.
func (c *SortSongsToProjects) Result() any { return len(c.links) }

// Count returns the number of songs linked by the last Execute.
func (c *SortSongsToProjects) Count() int { return len(c.links) }

// Created returns the projects created by the last Execute.
func (c *SortSongsToProjects) Created() []*model.ProjectArtist { return c.projects }

// Execute implements command.Command. It does not apply when no song was
// linked.
func (c *SortSongsToProjects) Execute(lib *model.Library) (bool, error) {
	c.links = nil
	c.projects = nil

	for _, song := range lib.Songs {
		if len(song.Owners) > 0 {
			continue
		}
		artist := strings.TrimSpace(song.GuessedArtist)
		if artist == "" || strings.EqualFold(artist, unknownArtist) {
			continue
		}

		project := lib.ProjectByName(artist)
		if project == nil {
			project = model.NewProject(artist, model.ProjectTypeArtist, c.created)
			if err := lib.AddProject(project); err != nil {
				c.Undo(lib)
				return false, err
			}
			c.projects = append(c.projects, project)
		}

		linked, err := lib.LinkSongToProject(song, project)
		if err != nil {
			c.Undo(lib)
			return false, err
		}
		if linked {
			c.links = append(c.links, &linkRecord{song: song, project: project})
		}
	}

	return len(c.links) > 0 || len(c.projects) > 0, nil
}

// Undo implements command.Command.
func (c *SortSongsToProjects) Undo(lib *model.Library) {
	for i := len(c.links) - 1; i >= 0; i-- {
		lib.UnlinkSongFromProject(c.links[i].song, c.links[i].project)
	}
	for i := len(c.projects) - 1; i >= 0; i-- {
		lib.RemoveProject(c.projects[i])
	}
}
