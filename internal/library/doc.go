// Package library implements every reversible library mutation as a
// command.Command, plus Handler, the facade the CLI and TUI call.
//
// # Commands
//
// Each command captures, while executing, exactly the state it needs to
// undo itself: former indexes, former attribute values, the links it made
// or broke. Undo never recomputes that state from the current model.
//
//	AddSong                  CreatePlaylist      CreateProject
//	RemoveSong               RenamePlaylist      RenameProject
//	AddSongToPlaylist        DeletePlaylist      DeleteProject
//	RemoveSongFromPlaylist   AssignSong          UnassignSong
//	SortSongsToProjects      SetProjectParent    SetProjectImage
//	AddVersion               StarVersion
//	AddTrackedFolder         RemoveTrackedFolder
//
// Commands built with a nil required argument do nothing and are not
// recorded. Integrity violations are returned as errors wrapping the model
// sentinels and leave the library unchanged.
//
// # Handler
//
//	h := library.NewHandler(lib, store, probe, logger)
//	song, err := h.AddSong("/music/Roxy - Avalon.wav")
//	n, _ := h.SortSongsToProjects()
//	h.Undo()
package library
