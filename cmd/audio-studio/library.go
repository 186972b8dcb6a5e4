package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/handiism/audio-studio/internal/audio"
	ioutils "github.com/handiism/audio-studio/internal/io"
	"github.com/handiism/audio-studio/internal/library"
	"github.com/handiism/audio-studio/internal/model"
)

// findPlaylist looks a playlist up by ID or, failing that, by title
// compared case-insensitively.
func findPlaylist(lib *model.Library, ref string) *model.Playlist {
	if p := lib.Playlist(ref); p != nil {
		return p
	}
	for _, p := range lib.Playlists {
		if strings.EqualFold(p.Title, strings.TrimSpace(ref)) {
			return p
		}
	}
	return nil
}

// findProject looks a project up by ID or name.
func findProject(lib *model.Library, ref string) *model.ProjectArtist {
	if p := lib.Project(ref); p != nil {
		return p
	}
	return lib.ProjectByName(ref)
}

// songArtist is the artist written into tags: the first owning project,
// or the artist guessed from the file name.
func songArtist(lib *model.Library, s *model.Song) string {
	if owners := lib.OwnersOf(s); len(owners) > 0 {
		return owners[0].Name
	}
	return s.GuessedArtist
}

// songRows renders songs for the -list table.
func songRows(h *library.Handler, songs []*model.Song) [][]string {
	lib := h.Library()
	rows := make([][]string, 0, len(songs))
	for i, s := range songs {
		owners := make([]string, 0, len(s.Owners))
		for _, p := range lib.OwnersOf(s) {
			owners = append(owners, p.Name)
		}
		version := ""
		if g := lib.Group(s.Group); g != nil {
			version = "v" + strconv.Itoa(s.Version)
			if g.Starred == s.Path {
				version += " *"
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.DisplayTitle(),
			s.GuessedArtist,
			formatDuration(h.Duration(s)),
			strings.Join(owners, ", "),
			version,
		})
	}
	return rows
}

// exportPlaylist writes p into dir, named after its sanitized title, and
// returns the written path.
func exportPlaylist(ctx context.Context, h *library.Handler, creator *audio.PlaylistCreator, p *model.Playlist, dir string) (string, error) {
	songs := h.Library().ResolveSongs(p.Songs)
	entries := make([]audio.Entry, 0, len(songs))
	for _, s := range songs {
		entries = append(entries, audio.NewEntry(s, h.Duration(s)))
	}

	name := ioutils.SanitizeFileName(p.Title)
	if name == "" {
		name = "playlist"
	}
	path := filepath.Join(dir, name+creator.Format().Extension())

	content := creator.CreatePlaylist(p.Title, entries)
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		return "", fmt.Errorf("export playlist %q: %w", p.Title, err)
	}
	return path, nil
}

func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
