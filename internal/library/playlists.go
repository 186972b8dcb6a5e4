package library

import "github.com/handiism/audio-studio/internal/model"

// CreatePlaylist adds a new, empty playlist.
type CreatePlaylist struct {
	title    string
	playlist *model.Playlist
}

// NewCreatePlaylist creates a CreatePlaylist command.
func NewCreatePlaylist(title string) *CreatePlaylist {
	return &CreatePlaylist{title: title}
}

// Name implements command.Command.
func (c *CreatePlaylist) Name() string { return "create-playlist" }

// Result implements command.Command.
func (c *CreatePlaylist) Result() any { return c.playlist }

// Playlist returns the created playlist, or nil if the command did not apply.
func (c *CreatePlaylist) Playlist() *model.Playlist { return c.playlist }

// Execute implements command.Command.
func (c *CreatePlaylist) Execute(lib *model.Library) (bool, error) {
	p := model.NewPlaylist(c.title)
	if err := lib.AddPlaylist(p); err != nil {
		return false, err
	}
	c.playlist = p
	return true, nil
}

// Undo implements command.Command.
func (c *CreatePlaylist) Undo(lib *model.Library) {
	lib.RemovePlaylist(c.playlist)
}

// RenamePlaylist changes a playlist title.
type RenamePlaylist struct {
	playlist *model.Playlist
	title    string
	oldTitle string
}

// NewRenamePlaylist creates a RenamePlaylist command.
func NewRenamePlaylist(p *model.Playlist, title string) *RenamePlaylist {
	return &RenamePlaylist{playlist: p, title: title}
}

// Name implements command.Command.
func (c *RenamePlaylist) Name() string { return "rename-playlist" }

// Result implements command.Command.
func (c *RenamePlaylist) Result() any { return c.playlist }

// Execute implements command.Command.
func (c *RenamePlaylist) Execute(lib *model.Library) (bool, error) {
	if c.playlist == nil || lib.Playlist(c.playlist.ID) != c.playlist {
		return false, nil
	}
	c.oldTitle = c.playlist.Title
	c.playlist.Title = c.title
	return true, nil
}

// Undo implements command.Command.
func (c *RenamePlaylist) Undo(*model.Library) {
	c.playlist.Title = c.oldTitle
}

// DeletePlaylist removes a playlist. If it was the active filter, the
// filter is cleared and restored on undo.
type DeletePlaylist struct {
	playlist  *model.Playlist
	index     int
	oldFilter model.Filter
}

// NewDeletePlaylist creates a DeletePlaylist command.
func NewDeletePlaylist(p *model.Playlist) *DeletePlaylist {
	return &DeletePlaylist{playlist: p}
}

// Name implements command.Command.
func (c *DeletePlaylist) Name() string { return "delete-playlist" }

// Result implements command.Command.
func (c *DeletePlaylist) Result() any { return c.playlist }

// Execute implements command.Command.
func (c *DeletePlaylist) Execute(lib *model.Library) (bool, error) {
	if c.playlist == nil {
		return false, nil
	}
	c.index = lib.RemovePlaylist(c.playlist)
	if c.index < 0 {
		return false, nil
	}
	c.oldFilter = lib.ActiveFilter
	if c.oldFilter == (model.Filter{Kind: model.FilterPlaylist, ID: c.playlist.ID}) {
		lib.SetActiveFilter(model.Filter{})
	}
	return true, nil
}

// Undo implements command.Command.
func (c *DeletePlaylist) Undo(lib *model.Library) {
	_ = lib.InsertPlaylist(c.index, c.playlist)
	lib.SetActiveFilter(c.oldFilter)
}

// AddSongToPlaylist appends a song to a playlist.
type AddSongToPlaylist struct {
	playlist *model.Playlist
	song     *model.Song
	index    int
}

// NewAddSongToPlaylist creates an AddSongToPlaylist command.
func NewAddSongToPlaylist(p *model.Playlist, s *model.Song) *AddSongToPlaylist {
	return &AddSongToPlaylist{playlist: p, song: s}
}

// Name implements command.Command.
func (c *AddSongToPlaylist) Name() string { return "add-to-playlist" }

// Result implements command.Command.
func (c *AddSongToPlaylist) Result() any { return c.playlist }

// Execute implements command.Command.
func (c *AddSongToPlaylist) Execute(lib *model.Library) (bool, error) {
	if c.playlist == nil || c.song == nil {
		return false, nil
	}
	if lib.Playlist(c.playlist.ID) != c.playlist || lib.Song(c.song.Path) != c.song {
		return false, nil
	}
	c.index = len(c.playlist.Songs)
	c.playlist.Append(c.song.Path)
	return true, nil
}

// Undo implements command.Command.
func (c *AddSongToPlaylist) Undo(*model.Library) {
	c.playlist.RemoveAt(c.index)
}

// RemoveSongFromPlaylist removes one playlist entry by position.
type RemoveSongFromPlaylist struct {
	playlist *model.Playlist
	index    int
	path     string
}

// NewRemoveSongFromPlaylist creates a RemoveSongFromPlaylist command.
func NewRemoveSongFromPlaylist(p *model.Playlist, index int) *RemoveSongFromPlaylist {
	return &RemoveSongFromPlaylist{playlist: p, index: index}
}

// Name implements command.Command.
func (c *RemoveSongFromPlaylist) Name() string { return "remove-from-playlist" }

// Result implements command.Command.
func (c *RemoveSongFromPlaylist) Result() any { return c.playlist }

// Execute implements command.Command.
func (c *RemoveSongFromPlaylist) Execute(lib *model.Library) (bool, error) {
	if c.playlist == nil || lib.Playlist(c.playlist.ID) != c.playlist {
		return false, nil
	}
	path, ok := c.playlist.RemoveAt(c.index)
	if !ok {
		return false, nil
	}
	c.path = path
	return true, nil
}

// Undo implements command.Command.
func (c *RemoveSongFromPlaylist) Undo(*model.Library) {
	c.playlist.InsertAt(c.index, c.path)
}
