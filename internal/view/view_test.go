package view

import (
	"testing"
	"time"

	"github.com/handiism/audio-studio/internal/model"
)

func paths(songs []*model.Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.Path
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newLibrary(t *testing.T, songPaths ...string) *model.Library {
	t.Helper()
	lib := model.NewLibrary()
	for _, p := range songPaths {
		if err := lib.AddSong(model.NewSong(p)); err != nil {
			t.Fatalf("AddSong(%q) error = %v", p, err)
		}
	}
	return lib
}

func TestSongs(t *testing.T) {
	lib := newLibrary(t, "/a.wav", "/b.wav", "/c.wav")

	playlist := model.NewPlaylist("Demos")
	playlist.Songs = []string{"/c.wav", "/gone.wav", "/a.wav", "/c.wav"}
	if err := lib.AddPlaylist(playlist); err != nil {
		t.Fatal(err)
	}

	project := model.NewProject("Roxy", model.ProjectTypeArtist, time.Now())
	if err := lib.AddProject(project); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.LinkSongToProject(lib.Song("/b.wav"), project); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter model.Filter
		want   []string
	}{
		{"no filter", model.Filter{}, []string{"/a.wav", "/b.wav", "/c.wav"}},
		{"playlist skips stale", model.Filter{Kind: model.FilterPlaylist, ID: playlist.ID}, []string{"/c.wav", "/a.wav", "/c.wav"}},
		{"project", model.Filter{Kind: model.FilterProject, ID: project.ID}, []string{"/b.wav"}},
		{"missing playlist", model.Filter{Kind: model.FilterPlaylist, ID: "nope"}, []string{}},
		{"missing project", model.Filter{Kind: model.FilterProject, ID: "nope"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib.SetActiveFilter(tt.filter)
			if got := paths(Songs(lib)); !equal(got, tt.want) {
				t.Errorf("Songs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSongs_RecomputedOnEveryCall(t *testing.T) {
	lib := newLibrary(t, "/a.wav")
	playlist := model.NewPlaylist("Live")
	if err := lib.AddPlaylist(playlist); err != nil {
		t.Fatal(err)
	}
	lib.SetActiveFilter(model.Filter{Kind: model.FilterPlaylist, ID: playlist.ID})

	if got := Songs(lib); len(got) != 0 {
		t.Fatalf("Songs() = %v, want empty", paths(got))
	}

	playlist.Append("/a.wav")
	if got := paths(Songs(lib)); !equal(got, []string{"/a.wav"}) {
		t.Errorf("Songs() after append = %v, want [/a.wav]", got)
	}

	lib.RemoveSong(lib.Song("/a.wav"))
	if got := Songs(lib); len(got) != 0 {
		t.Errorf("Songs() after removal = %v, want empty", paths(got))
	}
}

func TestSongs_DoesNotAliasLibrary(t *testing.T) {
	lib := newLibrary(t, "/a.wav", "/b.wav")
	got := Songs(lib)
	got[0] = nil
	if lib.Songs[0] == nil {
		t.Error("mutating the projection changed the library")
	}
}

func TestTitle(t *testing.T) {
	lib := newLibrary(t)
	playlist := model.NewPlaylist("Demos")
	_ = lib.AddPlaylist(playlist)
	project := model.NewProject("Roxy", model.ProjectTypeArtist, time.Now())
	_ = lib.AddProject(project)

	tests := []struct {
		filter model.Filter
		want   string
	}{
		{model.Filter{}, "All songs"},
		{model.Filter{Kind: model.FilterPlaylist, ID: playlist.ID}, "Playlist: Demos"},
		{model.Filter{Kind: model.FilterProject, ID: project.ID}, "artist: Roxy"},
		{model.Filter{Kind: model.FilterProject, ID: "gone"}, "All songs"},
	}
	for _, tt := range tests {
		lib.SetActiveFilter(tt.filter)
		if got := Title(lib); got != tt.want {
			t.Errorf("Title(%+v) = %q, want %q", tt.filter, got, tt.want)
		}
	}
}
