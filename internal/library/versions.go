package library

import (
	"fmt"

	"github.com/handiism/audio-studio/internal/model"
)

// AddVersion records song as a newer revision of base.
//
// If base is not in a version group yet, a group is created with base as
// its first (starred) revision. Song.Version is set to one more than the
// highest revision already in the group, so numbers are never reused after
// a revision is removed. A song that already belongs to a group is
// rejected.
type AddVersion struct {
	base *model.Song
	song *model.Song

	group          *model.VersionGroup
	createdGroup   bool
	oldBaseVersion int
	oldVersion     int
	oldStarred     string
	oldBaseGroup   string
}

// NewAddVersion creates an AddVersion command.
func NewAddVersion(base, song *model.Song) *AddVersion {
	return &AddVersion{base: base, song: song}
}

// Name implements command.Command.
func (c *AddVersion) Name() string { return "add-version" }

// Result implements command.Command.
func (c *AddVersion) Result() any { return c.group }

// Group returns the group the song was added to.
func (c *AddVersion) Group() *model.VersionGroup { return c.group }

// Execute implements command.Command.
func (c *AddVersion) Execute(lib *model.Library) (bool, error) {
	if c.base == nil || c.song == nil || c.base == c.song {
		return false, nil
	}
	if lib.Song(c.base.Path) != c.base {
		return false, fmt.Errorf("add version to %q: %w", c.base.Path, model.ErrUnknownSong)
	}
	if lib.Song(c.song.Path) != c.song {
		return false, fmt.Errorf("add version %q: %w", c.song.Path, model.ErrUnknownSong)
	}
	if c.song.Group != "" {
		return false, fmt.Errorf("add version %q: already in a version group: %w", c.song.Path, model.ErrDuplicateEntity)
	}

	c.oldBaseVersion = c.base.Version
	c.oldVersion = c.song.Version
	c.oldBaseGroup = c.base.Group
	c.createdGroup = false

	c.group = lib.Group(c.base.Group)
	if c.group == nil {
		c.group = model.NewVersionGroup()
		if err := lib.AddGroup(c.group); err != nil {
			return false, err
		}
		c.createdGroup = true
		if err := lib.AttachVersion(c.group, c.base); err != nil {
			lib.RemoveGroup(c.group)
			return false, err
		}
		c.base.Version = 1
	}

	c.oldStarred = c.group.Starred
	next := latestVersion(lib, c.group) + 1
	if err := lib.AttachVersion(c.group, c.song); err != nil {
		c.Undo(lib)
		return false, err
	}
	c.song.Version = next
	return true, nil
}

// latestVersion returns the highest revision number among the live songs of
// g, or 0 for an empty group.
func latestVersion(lib *model.Library, g *model.VersionGroup) int {
	latest := 0
	for _, s := range lib.ResolveSongs(g.Versions) {
		if s.Version > latest {
			latest = s.Version
		}
	}
	return latest
}

// Undo implements command.Command.
func (c *AddVersion) Undo(lib *model.Library) {
	if c.group.Contains(c.song.Path) {
		lib.DetachVersion(c.song)
		c.group.Starred = c.oldStarred
	}
	c.song.Version = c.oldVersion
	if c.createdGroup {
		lib.DetachVersion(c.base)
		lib.RemoveGroup(c.group)
		c.base.Group = c.oldBaseGroup
		c.base.Version = c.oldBaseVersion
	}
}

// StarVersion designates the preferred revision of a version group.
type StarVersion struct {
	group      *model.VersionGroup
	song       *model.Song
	oldStarred string
}

// NewStarVersion creates a StarVersion command. A nil song clears the star.
func NewStarVersion(g *model.VersionGroup, s *model.Song) *StarVersion {
	return &StarVersion{group: g, song: s}
}

// Name implements command.Command.
func (c *StarVersion) Name() string { return "star-version" }

// Result implements command.Command.
func (c *StarVersion) Result() any { return c.group }

// Execute implements command.Command. Starring a song outside the group is
// rejected with model.ErrNotMember.
func (c *StarVersion) Execute(lib *model.Library) (bool, error) {
	if c.group == nil || lib.Group(c.group.ID) != c.group {
		return false, nil
	}
	path := ""
	if c.song != nil {
		path = c.song.Path
	}
	if c.group.Starred == path {
		return false, nil
	}
	c.oldStarred = c.group.Starred
	if err := c.group.SetStarred(path); err != nil {
		return false, err
	}
	return true, nil
}

// Undo implements command.Command.
func (c *StarVersion) Undo(*model.Library) {
	c.group.Starred = c.oldStarred
}
