// Package view derives the song list the user currently sees.
//
// The projection reads the library's active filter on every call and is
// never cached, so it cannot go stale relative to the model:
//
//	lib.SetActiveFilter(model.Filter{Kind: model.FilterPlaylist, ID: p.ID})
//	songs := view.Songs(lib) // p's songs, in playlist order
//
// References to songs that are no longer in the library are skipped.
package view
