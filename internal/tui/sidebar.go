package tui

import (
	"github.com/handiism/audio-studio/internal/model"
)

// entry is one selectable row of the sidebar.
type entry struct {
	label  string
	filter model.Filter
	depth  int
}

// sidebarEntries lists "All songs", then every playlist, then the project
// tree in depth-first order.
func sidebarEntries(lib *model.Library) []entry {
	entries := []entry{{label: "All songs"}}

	for _, p := range lib.Playlists {
		entries = append(entries, entry{
			label:  "♫ " + p.Title,
			filter: model.Filter{Kind: model.FilterPlaylist, ID: p.ID},
		})
	}

	var walk func(p *model.ProjectArtist, depth int)
	walk = func(p *model.ProjectArtist, depth int) {
		entries = append(entries, entry{
			label:  p.Name,
			filter: model.Filter{Kind: model.FilterProject, ID: p.ID},
			depth:  depth,
		})
		for _, id := range p.Children {
			if child := lib.Project(id); child != nil {
				walk(child, depth+1)
			}
		}
	}
	for _, p := range lib.Projects {
		if p.Parent == "" || lib.Project(p.Parent) == nil {
			walk(p, 0)
		}
	}

	return entries
}

// playlistIndex maps a row of the resolved playlist view back to its
// position in p.Songs, skipping stale references the view leaves out.
func playlistIndex(lib *model.Library, p *model.Playlist, row int) int {
	seen := 0
	for i, path := range p.Songs {
		if lib.Song(path) == nil {
			continue
		}
		if seen == row {
			return i
		}
		seen++
	}
	return -1
}
