package library

import (
	"path/filepath"
	"time"

	"github.com/handiism/audio-studio/internal/model"
)

// DurationProber resolves the duration of an audio file in whole seconds.
// It returns 0 when the duration cannot be determined.
type DurationProber interface {
	DurationSeconds(path string) int
}

// AddSong imports one audio file into the library.
//
// Title and GuessedArtist are guessed from the file name and the duration
// is probed immediately. Adding a path that is already in the library is
// rejected with model.ErrDuplicateSong.
type AddSong struct {
	path   string
	prober DurationProber
	added  time.Time

	song *model.Song
}

// NewAddSong creates an AddSong command. prober may be nil, in which case
// the duration stays unresolved.
func NewAddSong(path string, prober DurationProber, added time.Time) *AddSong {
	return &AddSong{path: path, prober: prober, added: added}
}

// Name implements command.Command.
func (c *AddSong) Name() string { return "add-song" }

// Result implements command.Command.
func (c *AddSong) Result() any { return c.song }

// Song returns the created song, or nil if the command did not apply.
func (c *AddSong) Song() *model.Song { return c.song }

// Execute implements command.Command.
func (c *AddSong) Execute(lib *model.Library) (bool, error) {
	if c.path == "" {
		return false, nil
	}
	path := c.path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	song := model.NewSong(path)
	song.ApplyFileNameGuess()
	if !c.added.IsZero() {
		song.ChangeHistory = []time.Time{c.added}
	}
	if err := lib.AddSong(song); err != nil {
		return false, err
	}
	if c.prober != nil {
		song.DurationSeconds = c.prober.DurationSeconds(path)
	}

	c.song = song
	return true, nil
}

// Undo implements command.Command.
func (c *AddSong) Undo(lib *model.Library) {
	lib.RemoveSong(c.song)
}

// ownerLink is one broken song/project link and where it sat on each side.
type ownerLink struct {
	song     *model.Song
	project  *model.ProjectArtist
	songPos  int
	ownerPos int
}

// relink restores links broken in order, walking them backwards so every
// recorded position is valid again when it is reinserted.
func relink(lib *model.Library, links []ownerLink) {
	for i := len(links) - 1; i >= 0; i-- {
		l := links[i]
		_ = lib.LinkSongToProjectAt(l.song, l.project, l.songPos, l.ownerPos)
	}
}

// RemoveSong deletes a song from the library.
//
// The song is unlinked from every owner and detached from its version
// group. Playlist entries that reference it are left in place and are
// skipped when playlists are resolved.
type RemoveSong struct {
	song *model.Song

	index      int
	links      []ownerLink
	groupID    string
	group      *model.VersionGroup
	groupIndex int
	starred    string
}

// NewRemoveSong creates a RemoveSong command.
func NewRemoveSong(song *model.Song) *RemoveSong {
	return &RemoveSong{song: song}
}

// Name implements command.Command.
func (c *RemoveSong) Name() string { return "remove-song" }

// Result implements command.Command.
func (c *RemoveSong) Result() any { return c.song }

// Execute implements command.Command.
func (c *RemoveSong) Execute(lib *model.Library) (bool, error) {
	if c.song == nil || lib.Song(c.song.Path) != c.song {
		return false, nil
	}

	c.links = c.links[:0]
	for _, owner := range lib.OwnersOf(c.song) {
		songPos, ownerPos, ok := lib.UnlinkSongFromProject(c.song, owner)
		if ok {
			c.links = append(c.links, ownerLink{c.song, owner, songPos, ownerPos})
		}
	}
	c.groupID = c.song.Group
	c.group, c.groupIndex, c.starred = lib.DetachVersion(c.song)
	c.index = lib.RemoveSong(c.song)
	return true, nil
}

// Undo implements command.Command.
func (c *RemoveSong) Undo(lib *model.Library) {
	if err := lib.InsertSong(c.index, c.song); err != nil {
		return
	}
	if c.group != nil {
		lib.RestoreVersion(c.group, c.song, c.groupIndex, c.starred)
	} else {
		c.song.Group = c.groupID
	}
	relink(lib, c.links)
}
