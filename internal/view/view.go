package view

import (
	"github.com/handiism/audio-studio/internal/model"
)

// Songs returns the songs selected by the library's active filter.
//
// With no filter every song is returned in library order. A playlist or
// project filter returns that entity's songs in their stored order,
// duplicates included. A filter pointing at a missing playlist or project
// yields an empty list.
func Songs(lib *model.Library) []*model.Song {
	if lib == nil {
		return nil
	}
	return Filtered(lib, lib.ActiveFilter)
}

// Filtered returns the songs selected by f, independent of the library's
// active filter.
func Filtered(lib *model.Library, f model.Filter) []*model.Song {
	switch f.Kind {
	case model.FilterPlaylist:
		p := lib.Playlist(f.ID)
		if p == nil {
			return []*model.Song{}
		}
		return lib.ResolveSongs(p.Songs)
	case model.FilterProject:
		p := lib.Project(f.ID)
		if p == nil {
			return []*model.Song{}
		}
		return lib.ResolveSongs(p.Songs)
	default:
		songs := make([]*model.Song, len(lib.Songs))
		copy(songs, lib.Songs)
		return songs
	}
}

// Title describes the active filter for headings, e.g. "Playlist: Demos".
func Title(lib *model.Library) string {
	switch lib.ActiveFilter.Kind {
	case model.FilterPlaylist:
		if p := lib.Playlist(lib.ActiveFilter.ID); p != nil {
			return "Playlist: " + p.Title
		}
	case model.FilterProject:
		if p := lib.Project(lib.ActiveFilter.ID); p != nil {
			return string(p.Type) + ": " + p.Name
		}
	}
	return "All songs"
}
