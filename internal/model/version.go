package model

import (
	"fmt"

	"github.com/google/uuid"
)

// VersionGroup collects revisions of the same creative work.
//
// Versions holds song paths in the order they were added. Starred is the
// preferred revision; it is always one of Versions or empty.
type VersionGroup struct {
	ID       string   `json:"id"`
	Versions []string `json:"versions,omitempty"`
	Starred  string   `json:"starred,omitempty"`
}

// NewVersionGroup creates an empty group with a fresh handle.
func NewVersionGroup() *VersionGroup {
	return &VersionGroup{ID: uuid.NewString()}
}

// Contains reports whether path is one of the group's versions.
func (g *VersionGroup) Contains(path string) bool {
	return indexOf(g.Versions, path) >= 0
}

// IsEmpty reports whether the group has no versions.
func (g *VersionGroup) IsEmpty() bool {
	return len(g.Versions) == 0
}

// Add appends a revision. The first revision added becomes the starred one.
func (g *VersionGroup) Add(path string) {
	g.insert(len(g.Versions), path)
}

func (g *VersionGroup) insert(i int, path string) {
	g.Versions = insertAt(g.Versions, i, path)
	if g.Starred == "" {
		g.Starred = path
	}
}

// Remove drops a revision and returns its former index, or -1 if absent.
// Removing the starred revision stars the first remaining one, or clears
// the star when the group becomes empty.
func (g *VersionGroup) Remove(path string) int {
	i := indexOf(g.Versions, path)
	if i < 0 {
		return -1
	}
	g.Versions = removeAt(g.Versions, i)
	if g.Starred == path {
		g.Starred = ""
		if len(g.Versions) > 0 {
			g.Starred = g.Versions[0]
		}
	}
	return i
}

// SetStarred stars the given revision. An empty path clears the star.
// A path outside the group is rejected and the group is left unchanged.
func (g *VersionGroup) SetStarred(path string) error {
	if path != "" && !g.Contains(path) {
		return fmt.Errorf("star %q: %w", path, ErrNotMember)
	}
	g.Starred = path
	return nil
}
