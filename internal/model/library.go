package model

import (
	"fmt"
	"strings"
)

// FilterKind selects what the active filter narrows the song view to.
type FilterKind string

const (
	// FilterNone shows every song.
	FilterNone FilterKind = ""

	// FilterPlaylist shows the songs of one playlist.
	FilterPlaylist FilterKind = "playlist"

	// FilterProject shows the songs of one project.
	FilterProject FilterKind = "project"
)

// Filter references the playlist or project the song view is narrowed to.
type Filter struct {
	Kind FilterKind `json:"kind,omitempty"`
	ID   string     `json:"id,omitempty"`
}

// Library is the aggregate root holding every entity of the collection.
//
// Collections keep insertion order, which is the display order. Songs are
// additionally indexed by path. A Library built by json.Unmarshal must be
// reindexed before use:
//
//	var lib model.Library
//	_ = json.Unmarshal(data, &lib)
//	lib.Reindex()
type Library struct {
	// GUIStyle is the user-selected interface style tag.
	GUIStyle string `json:"gui_style,omitempty"`

	// Songs holds every song in natural (insertion) order.
	Songs []*Song `json:"songs,omitempty"`

	// Playlists holds every playlist in insertion order.
	Playlists []*Playlist `json:"playlists,omitempty"`

	// Projects holds every project/artist in insertion order.
	Projects []*ProjectArtist `json:"projects,omitempty"`

	// Groups holds every version group.
	Groups []*VersionGroup `json:"version_groups,omitempty"`

	// TrackedFolders lists folders scanned for new audio files.
	TrackedFolders []string `json:"tracked_folders,omitempty"`

	// ActiveFilter narrows the song view; the zero value shows all songs.
	ActiveFilter Filter `json:"active_filter"`

	songIndex map[string]*Song
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{songIndex: make(map[string]*Song)}
}

// Reindex rebuilds the path index and marks every duration unresolved.
// Duplicate paths keep their first occurrence only.
func (l *Library) Reindex() {
	l.songIndex = make(map[string]*Song, len(l.Songs))
	songs := l.Songs[:0]
	for _, s := range l.Songs {
		if s == nil || s.Path == "" {
			continue
		}
		if _, dup := l.songIndex[s.Path]; dup {
			continue
		}
		s.DurationSeconds = DurationUnresolved
		l.songIndex[s.Path] = s
		songs = append(songs, s)
	}
	if len(songs) == 0 {
		songs = nil
	}
	l.Songs = songs
}

func (l *Library) index() map[string]*Song {
	if l.songIndex == nil {
		l.Reindex()
	}
	return l.songIndex
}

// Song returns the song with the given path, or nil.
func (l *Library) Song(path string) *Song {
	return l.index()[path]
}

// AddSong appends a song to the song table.
// Ownership back-references are not touched.
func (l *Library) AddSong(s *Song) error {
	return l.InsertSong(len(l.Songs), s)
}

// InsertSong inserts a song into the song table at position i.
func (l *Library) InsertSong(i int, s *Song) error {
	if s == nil {
		return ErrNilEntity
	}
	if s.Path == "" {
		return ErrEmptyPath
	}
	if _, dup := l.index()[s.Path]; dup {
		return fmt.Errorf("add song %q: %w", s.Path, ErrDuplicateSong)
	}
	l.Songs = insertAt(l.Songs, i, s)
	l.songIndex[s.Path] = s
	return nil
}

// RemoveSong removes a song from the song table and returns its former
// index, or -1 if it was not present. Ownership back-references are not
// touched.
func (l *Library) RemoveSong(s *Song) int {
	if s == nil {
		return -1
	}
	i := indexOf(l.Songs, s)
	if i < 0 {
		return -1
	}
	l.Songs = removeAt(l.Songs, i)
	delete(l.index(), s.Path)
	return i
}

// Playlist returns the playlist with the given ID, or nil.
func (l *Library) Playlist(id string) *Playlist {
	for _, p := range l.Playlists {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddPlaylist appends a playlist.
func (l *Library) AddPlaylist(p *Playlist) error {
	return l.InsertPlaylist(len(l.Playlists), p)
}

// InsertPlaylist inserts a playlist at position i.
func (l *Library) InsertPlaylist(i int, p *Playlist) error {
	if p == nil {
		return ErrNilEntity
	}
	if l.Playlist(p.ID) != nil {
		return fmt.Errorf("add playlist %q: %w", p.ID, ErrDuplicateEntity)
	}
	l.Playlists = insertAt(l.Playlists, i, p)
	return nil
}

// RemovePlaylist removes a playlist and returns its former index, or -1.
func (l *Library) RemovePlaylist(p *Playlist) int {
	i := indexOf(l.Playlists, p)
	if p == nil || i < 0 {
		return -1
	}
	l.Playlists = removeAt(l.Playlists, i)
	return i
}

// Project returns the project with the given ID, or nil.
func (l *Library) Project(id string) *ProjectArtist {
	for _, p := range l.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ProjectByName returns the first project whose name matches
// case-insensitively, or nil.
func (l *Library) ProjectByName(name string) *ProjectArtist {
	for _, p := range l.Projects {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// AddProject appends a project.
func (l *Library) AddProject(p *ProjectArtist) error {
	return l.InsertProject(len(l.Projects), p)
}

// InsertProject inserts a project at position i.
func (l *Library) InsertProject(i int, p *ProjectArtist) error {
	if p == nil {
		return ErrNilEntity
	}
	if l.Project(p.ID) != nil {
		return fmt.Errorf("add project %q: %w", p.ID, ErrDuplicateEntity)
	}
	l.Projects = insertAt(l.Projects, i, p)
	return nil
}

// RemoveProject removes a project and returns its former index, or -1.
// Song links and hierarchy references are not touched.
func (l *Library) RemoveProject(p *ProjectArtist) int {
	i := indexOf(l.Projects, p)
	if p == nil || i < 0 {
		return -1
	}
	l.Projects = removeAt(l.Projects, i)
	return i
}

// Group returns the version group with the given ID, or nil.
func (l *Library) Group(id string) *VersionGroup {
	for _, g := range l.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// AddGroup appends a version group.
func (l *Library) AddGroup(g *VersionGroup) error {
	if g == nil {
		return ErrNilEntity
	}
	if l.Group(g.ID) != nil {
		return fmt.Errorf("add group %q: %w", g.ID, ErrDuplicateEntity)
	}
	l.Groups = append(l.Groups, g)
	return nil
}

// RemoveGroup removes a version group and returns its former index, or -1.
func (l *Library) RemoveGroup(g *VersionGroup) int {
	i := indexOf(l.Groups, g)
	if g == nil || i < 0 {
		return -1
	}
	l.Groups = removeAt(l.Groups, i)
	return i
}

// InsertGroup inserts a version group at position i.
func (l *Library) InsertGroup(i int, g *VersionGroup) error {
	if g == nil {
		return ErrNilEntity
	}
	if l.Group(g.ID) != nil {
		return fmt.Errorf("add group %q: %w", g.ID, ErrDuplicateEntity)
	}
	l.Groups = insertAt(l.Groups, i, g)
	return nil
}

// AddTrackedFolder appends a folder; already tracked folders are ignored.
// It reports whether the folder was added.
func (l *Library) AddTrackedFolder(path string) bool {
	if path == "" || indexOf(l.TrackedFolders, path) >= 0 {
		return false
	}
	l.TrackedFolders = append(l.TrackedFolders, path)
	return true
}

// InsertTrackedFolder inserts a folder at position i.
func (l *Library) InsertTrackedFolder(i int, path string) {
	l.TrackedFolders = insertAt(l.TrackedFolders, i, path)
}

// RemoveTrackedFolder removes a folder and returns its former index, or -1.
func (l *Library) RemoveTrackedFolder(path string) int {
	i := indexOf(l.TrackedFolders, path)
	if i >= 0 {
		l.TrackedFolders = removeAt(l.TrackedFolders, i)
	}
	return i
}

// LinkSongToProject records that p owns s, updating both s.Owners and
// p.Songs. Linking an already linked pair is a no-op and reports false.
func (l *Library) LinkSongToProject(s *Song, p *ProjectArtist) (bool, error) {
	if err := l.checkLink(s, p); err != nil {
		return false, err
	}
	if s.HasOwner(p.ID) && p.HasSong(s.Path) {
		return false, nil
	}
	return true, l.LinkSongToProjectAt(s, p, len(p.Songs), len(s.Owners))
}

// LinkSongToProjectAt links s and p, placing the song at songPos in
// p.Songs and the project at ownerPos in s.Owners. A side that already
// holds the reference is left as is.
func (l *Library) LinkSongToProjectAt(s *Song, p *ProjectArtist, songPos, ownerPos int) error {
	if err := l.checkLink(s, p); err != nil {
		return err
	}
	if !p.HasSong(s.Path) {
		p.Songs = insertAt(p.Songs, songPos, s.Path)
	}
	if !s.HasOwner(p.ID) {
		s.Owners = insertAt(s.Owners, ownerPos, p.ID)
	}
	return nil
}

// UnlinkSongFromProject removes the ownership link between s and p from
// both sides. It returns the former positions of the song in p.Songs and of
// the project in s.Owners; ok is false if they were not linked.
func (l *Library) UnlinkSongFromProject(s *Song, p *ProjectArtist) (songPos, ownerPos int, ok bool) {
	if s == nil || p == nil {
		return -1, -1, false
	}
	songPos = indexOf(p.Songs, s.Path)
	ownerPos = indexOf(s.Owners, p.ID)
	if songPos < 0 && ownerPos < 0 {
		return -1, -1, false
	}
	if songPos >= 0 {
		p.Songs = removeAt(p.Songs, songPos)
	}
	if ownerPos >= 0 {
		s.Owners = removeAt(s.Owners, ownerPos)
	}
	return songPos, ownerPos, true
}

func (l *Library) checkLink(s *Song, p *ProjectArtist) error {
	if s == nil || p == nil {
		return ErrNilEntity
	}
	if l.Song(s.Path) != s {
		return fmt.Errorf("link %q: %w", s.Path, ErrUnknownSong)
	}
	if l.Project(p.ID) != p {
		return fmt.Errorf("link %q: %w", p.Name, ErrUnknownProject)
	}
	return nil
}

// OwnersOf returns the live projects that own s, in link order.
func (l *Library) OwnersOf(s *Song) []*ProjectArtist {
	if s == nil {
		return nil
	}
	owners := make([]*ProjectArtist, 0, len(s.Owners))
	for _, id := range s.Owners {
		if p := l.Project(id); p != nil {
			owners = append(owners, p)
		}
	}
	return owners
}

// ResolveSongs maps song paths to live songs, preserving order and
// duplicates and silently skipping paths no longer in the library.
func (l *Library) ResolveSongs(paths []string) []*Song {
	songs := make([]*Song, 0, len(paths))
	for _, path := range paths {
		if s := l.Song(path); s != nil {
			songs = append(songs, s)
		}
	}
	return songs
}

// SetActiveFilter replaces the active view filter.
func (l *Library) SetActiveFilter(f Filter) {
	l.ActiveFilter = f
}

// SetProjectParent detaches child from its current parent and attaches it
// under parent (nil for top level). It returns the former parent ID and the
// child's former index in that parent's Children.
func (l *Library) SetProjectParent(child, parent *ProjectArtist) (oldParent string, oldIndex int, err error) {
	if child == nil {
		return "", -1, ErrNilEntity
	}
	if l.Project(child.ID) != child {
		return "", -1, fmt.Errorf("reparent %q: %w", child.Name, ErrUnknownProject)
	}
	newParent := ""
	if parent != nil {
		if l.Project(parent.ID) != parent {
			return "", -1, fmt.Errorf("reparent under %q: %w", parent.Name, ErrUnknownProject)
		}
		if l.isAncestorOrSelf(child.ID, parent) {
			return "", -1, fmt.Errorf("reparent %q under %q: %w", child.Name, parent.Name, ErrCycle)
		}
		newParent = parent.ID
	}

	oldParent, oldIndex = l.detachChild(child)
	l.AttachChildAt(child, newParent, -1)
	return oldParent, oldIndex, nil
}

// AttachChildAt places child under the project with ID parentID at index i
// (-1 appends). An empty parentID leaves the child at top level.
func (l *Library) AttachChildAt(child *ProjectArtist, parentID string, i int) {
	child.Parent = parentID
	if parentID == "" {
		return
	}
	if p := l.Project(parentID); p != nil {
		p.Children = insertAt(p.Children, i, child.ID)
	}
}

// DetachChild removes child from its parent and returns the former parent
// ID and index.
func (l *Library) DetachChild(child *ProjectArtist) (parentID string, index int) {
	return l.detachChild(child)
}

func (l *Library) detachChild(child *ProjectArtist) (string, int) {
	parentID := child.Parent
	index := -1
	if p := l.Project(parentID); p != nil {
		index = indexOf(p.Children, child.ID)
		p.Children = removeAt(p.Children, index)
	}
	child.Parent = ""
	return parentID, index
}

// isAncestorOrSelf reports whether the project with ID id is p or one of
// p's ancestors.
func (l *Library) isAncestorOrSelf(id string, p *ProjectArtist) bool {
	seen := make(map[string]bool)
	for p != nil && !seen[p.ID] {
		if p.ID == id {
			return true
		}
		seen[p.ID] = true
		p = l.Project(p.Parent)
	}
	return false
}

// AttachVersion adds s to group g and points s.Group at g.
func (l *Library) AttachVersion(g *VersionGroup, s *Song) error {
	if g == nil || s == nil {
		return ErrNilEntity
	}
	if l.Song(s.Path) != s {
		return fmt.Errorf("attach version %q: %w", s.Path, ErrUnknownSong)
	}
	g.Add(s.Path)
	s.Group = g.ID
	return nil
}

// DetachVersion removes s from its version group. It returns the group,
// the song's former index in it and the group's starred revision before
// removal, so the detach can be reverted with RestoreVersion.
func (l *Library) DetachVersion(s *Song) (g *VersionGroup, index int, starred string) {
	if s == nil || s.Group == "" {
		return nil, -1, ""
	}
	g = l.Group(s.Group)
	s.Group = ""
	if g == nil {
		return nil, -1, ""
	}
	starred = g.Starred
	index = g.Remove(s.Path)
	return g, index, starred
}

// RestoreVersion reverts a DetachVersion.
func (l *Library) RestoreVersion(g *VersionGroup, s *Song, index int, starred string) {
	if g == nil || s == nil {
		return
	}
	g.Versions = insertAt(g.Versions, index, s.Path)
	g.Starred = starred
	s.Group = g.ID
}
