package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/handiism/audio-studio/internal/command"
	ioutils "github.com/handiism/audio-studio/internal/io"
	"github.com/handiism/audio-studio/internal/model"
	"github.com/handiism/audio-studio/internal/view"
)

// Handler is the single entry point front ends use to change the library.
//
// Every mutation is submitted as a command to one linear history, so any
// of them can be undone with Undo. Methods that create an entity return it,
// or nil when the input was missing and nothing happened.
//
// Handler is not safe for concurrent use.
type Handler struct {
	history *command.History
	prober  DurationProber
	images  *ioutils.ImageService
	logger  *zap.Logger

	// Now returns the time stamped on created songs and projects.
	Now func() time.Time
}

// NewHandler creates a Handler over lib. saver, prober and logger may be nil.
func NewHandler(lib *model.Library, saver command.Saver, prober DurationProber, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		history: command.NewHistory(lib, saver, logger),
		prober:  prober,
		images:  ioutils.NewImageService(),
		logger:  logger,
		Now:     time.Now,
	}
}

// Library returns the managed library.
func (h *Handler) Library() *model.Library {
	return h.history.Library()
}

// Submit runs an arbitrary command through the history.
func (h *Handler) Submit(cmd command.Command) (bool, error) {
	return h.history.Submit(cmd)
}

// Undo reverts the most recent command and returns its name, or "" when
// there was nothing to undo.
func (h *Handler) Undo() string {
	cmd := h.history.UndoLast()
	if cmd == nil {
		return ""
	}
	return cmd.Name()
}

// CanUndo reports whether Undo would revert anything.
func (h *Handler) CanUndo() bool {
	return h.history.Len() > 0
}

// AddSong imports the audio file at path.
func (h *Handler) AddSong(path string) (*model.Song, error) {
	cmd := NewAddSong(path, h.prober, h.Now())
	if _, err := h.history.Submit(cmd); err != nil {
		return nil, err
	}
	return cmd.Song(), nil
}

// RemoveSong deletes a song and its ownership links.
func (h *Handler) RemoveSong(s *model.Song) (bool, error) {
	return h.history.Submit(NewRemoveSong(s))
}

// CreatePlaylist adds an empty playlist.
func (h *Handler) CreatePlaylist(title string) (*model.Playlist, error) {
	cmd := NewCreatePlaylist(title)
	if _, err := h.history.Submit(cmd); err != nil {
		return nil, err
	}
	return cmd.Playlist(), nil
}

// RenamePlaylist changes a playlist title.
func (h *Handler) RenamePlaylist(p *model.Playlist, title string) (bool, error) {
	return h.history.Submit(NewRenamePlaylist(p, title))
}

// DeletePlaylist removes a playlist.
func (h *Handler) DeletePlaylist(p *model.Playlist) (bool, error) {
	return h.history.Submit(NewDeletePlaylist(p))
}

// AddSongToPlaylist appends a song to a playlist.
func (h *Handler) AddSongToPlaylist(p *model.Playlist, s *model.Song) (bool, error) {
	return h.history.Submit(NewAddSongToPlaylist(p, s))
}

// RemoveSongFromPlaylist removes the playlist entry at index.
func (h *Handler) RemoveSongFromPlaylist(p *model.Playlist, index int) (bool, error) {
	return h.history.Submit(NewRemoveSongFromPlaylist(p, index))
}

// CreateProject adds a project of type model.ProjectTypeProject.
func (h *Handler) CreateProject(name string) (*model.ProjectArtist, error) {
	return h.CreateProjectOfType(name, model.ProjectTypeProject)
}

// CreateProjectOfType adds a project of the given type.
func (h *Handler) CreateProjectOfType(name string, typ model.ProjectType) (*model.ProjectArtist, error) {
	cmd := NewCreateProject(name, typ, h.Now())
	if _, err := h.history.Submit(cmd); err != nil {
		return nil, err
	}
	return cmd.Project(), nil
}

// RenameProject changes a project name.
func (h *Handler) RenameProject(p *model.ProjectArtist, name string) (bool, error) {
	return h.history.Submit(NewRenameProject(p, name))
}

// DeleteProject removes a project and its relationships.
func (h *Handler) DeleteProject(p *model.ProjectArtist) (bool, error) {
	return h.history.Submit(NewDeleteProject(p))
}

// AssignSong links a song to a project.
func (h *Handler) AssignSong(s *model.Song, p *model.ProjectArtist) (bool, error) {
	return h.history.Submit(NewAssignSong(s, p))
}

// UnassignSong breaks a song/project link.
func (h *Handler) UnassignSong(s *model.Song, p *model.ProjectArtist) (bool, error) {
	return h.history.Submit(NewUnassignSong(s, p))
}

// SetProjectParent moves child under parent, or to the top level when
// parent is nil.
func (h *Handler) SetProjectParent(child, parent *model.ProjectArtist) (bool, error) {
	return h.history.Submit(NewSetProjectParent(child, parent))
}

// SortSongsToProjects assigns unowned songs to projects named after their
// guessed artist and returns how many songs were linked.
func (h *Handler) SortSongsToProjects() (int, error) {
	cmd := NewSortSongsToProjects(h.Now())
	applied, err := h.history.Submit(cmd)
	if err != nil || !applied {
		return 0, err
	}
	h.logger.Info("sorted songs to projects",
		zap.Int("linked", cmd.Count()),
		zap.Int("created", len(cmd.Created())))
	return cmd.Count(), nil
}

// AddVersion records song as a newer revision of base.
func (h *Handler) AddVersion(base, song *model.Song) (*model.VersionGroup, error) {
	cmd := NewAddVersion(base, song)
	applied, err := h.history.Submit(cmd)
	if err != nil || !applied {
		return nil, err
	}
	return cmd.Group(), nil
}

// StarVersion designates the preferred revision of a group.
func (h *Handler) StarVersion(g *model.VersionGroup, s *model.Song) (bool, error) {
	return h.history.Submit(NewStarVersion(g, s))
}

// AddTrackedFolder adds a folder to the scan list.
func (h *Handler) AddTrackedFolder(path string) (bool, error) {
	return h.history.Submit(NewAddTrackedFolder(path))
}

// RemoveTrackedFolder drops a folder from the scan list.
func (h *Handler) RemoveTrackedFolder(path string) (bool, error) {
	return h.history.Submit(NewRemoveTrackedFolder(path))
}

// SetProjectImage points a project at an existing image file.
func (h *Handler) SetProjectImage(p *model.ProjectArtist, path string) (bool, error) {
	return h.history.Submit(NewSetProjectImage(p, path))
}

// ImportProjectImage copies the image at src into dir as a JPEG no larger
// than maxSize pixels on either side, then points the project at the copy.
// Images that cannot be decoded are copied unchanged. maxSize <= 0 keeps
// the original dimensions.
func (h *Handler) ImportProjectImage(ctx context.Context, p *model.ProjectArtist, src, dir string, maxSize int) (string, error) {
	if p == nil || src == "" {
		return "", nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read project image: %w", err)
	}

	base := ioutils.SanitizeFileName(p.Name)
	if base == "" {
		base = "project"
	}
	base += "-" + shortID(p.ID)

	var converted []byte
	if maxSize > 0 {
		converted, err = h.images.ResizeImage(ctx, data, maxSize, maxSize)
	} else {
		converted, err = h.images.ConvertToJPEG(ctx, data)
	}

	var dst string
	if err != nil {
		h.logger.Warn("project image not converted, copying as is",
			zap.String("source", src), zap.Error(err))
		dst = filepath.Join(dir, base+filepath.Ext(src))
		if err := ioutils.CopyFile(ctx, src, dst); err != nil {
			return "", fmt.Errorf("copy project image: %w", err)
		}
	} else {
		dst = filepath.Join(dir, base+".jpg")
		if err := ioutils.WriteFile(ctx, dst, converted); err != nil {
			return "", fmt.Errorf("write project image: %w", err)
		}
	}

	if _, err := h.SetProjectImage(p, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetActiveFilter narrows the song view. Filter changes are not recorded
// in the undo history.
func (h *Handler) SetActiveFilter(f model.Filter) {
	h.Library().SetActiveFilter(f)
}

// Songs returns the songs selected by the active filter.
func (h *Handler) Songs() []*model.Song {
	return view.Songs(h.Library())
}

// Duration returns the song duration in seconds, probing and caching it on
// first use. It returns 0 when the duration cannot be determined.
func (h *Handler) Duration(s *model.Song) int {
	if s == nil {
		return 0
	}
	if !s.DurationResolved() {
		s.DurationSeconds = 0
		if h.prober != nil {
			s.DurationSeconds = h.prober.DurationSeconds(s.Path)
		}
	}
	return s.DurationSeconds
}
