// Package model defines the library data structures used throughout
// audio-studio and the mutators that keep their relationships consistent.
//
// # Library
//
// Library is the aggregate root. It owns every Song (keyed by file path),
// every Playlist, every ProjectArtist and every VersionGroup, plus the list
// of tracked folders and the active view filter:
//
//	lib := model.NewLibrary()
//	song := model.NewSong("/music/Roxy - Avalon.wav")
//	_ = lib.AddSong(song)
//
// # References
//
// Entities never embed each other. Playlists and projects store song paths,
// songs store the IDs of the projects that own them, and a song in a version
// group stores the group ID. Live entities are resolved at read time:
//
//	songs := lib.ResolveSongs(playlist.Songs) // stale paths are skipped
//
// # Ownership
//
// LinkSongToProject and UnlinkSongFromProject are the only functions that
// touch Song.Owners and ProjectArtist.Songs. Both sides are always updated
// together, so for every song s and project p:
//
//	p.HasSong(s.Path) == s.HasOwner(p.ID)
//
// The Library has no internal locking; callers serialize access.
package model
