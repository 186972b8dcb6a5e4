package library

import (
	"time"

	"github.com/handiism/audio-studio/internal/model"
)

// CreateProject adds a new project with the given name and creation time.
type CreateProject struct {
	name    string
	typ     model.ProjectType
	created time.Time
	project *model.ProjectArtist
}

// NewCreateProject creates a CreateProject command.
func NewCreateProject(name string, typ model.ProjectType, created time.Time) *CreateProject {
	return &CreateProject{name: name, typ: typ, created: created}
}

// Name implements command.Command.
func (c *CreateProject) Name() string { return "create-project" }

// Result implements command.Command.
func (c *CreateProject) Result() any { return c.project }

// Project returns the created project, or nil if the command did not apply.
func (c *CreateProject) Project() *model.ProjectArtist { return c.project }

// Execute implements command.Command.
func (c *CreateProject) Execute(lib *model.Library) (bool, error) {
	p := model.NewProject(c.name, c.typ, c.created)
	if err := lib.AddProject(p); err != nil {
		return false, err
	}
	c.project = p
	return true, nil
}

// Undo implements command.Command.
func (c *CreateProject) Undo(lib *model.Library) {
	lib.RemoveProject(c.project)
}

// RenameProject changes a project name.
type RenameProject struct {
	project *model.ProjectArtist
	name    string
	oldName string
}

// NewRenameProject creates a RenameProject command.
func NewRenameProject(p *model.ProjectArtist, name string) *RenameProject {
	return &RenameProject{project: p, name: name}
}

// Name implements command.Command.
func (c *RenameProject) Name() string { return "rename-project" }

// Result implements command.Command.
func (c *RenameProject) Result() any { return c.project }

// Execute implements command.Command.
func (c *RenameProject) Execute(lib *model.Library) (bool, error) {
	if c.project == nil || lib.Project(c.project.ID) != c.project {
		return false, nil
	}
	c.oldName = c.project.Name
	c.project.Name = c.name
	return true, nil
}

// Undo implements command.Command.
func (c *RenameProject) Undo(*model.Library) {
	c.project.Name = c.oldName
}

// DeleteProject removes a project together with its relationships.
//
// Every owned song is unlinked, the project is detached from its parent
// and its children move to the top level. All of it is restored on undo,
// so the song/owner links come back exactly as they were.
type DeleteProject struct {
	project *model.ProjectArtist

	index       int
	links       []ownerLink
	parentID    string
	parentIndex int
	children    []*model.ProjectArtist
	oldFilter   model.Filter
}

// NewDeleteProject creates a DeleteProject command.
func NewDeleteProject(p *model.ProjectArtist) *DeleteProject {
	return &DeleteProject{project: p}
}

// Name implements command.Command.
func (c *DeleteProject) Name() string { return "delete-project" }

// Result implements command.Command.
func (c *DeleteProject) Result() any { return c.project }

// Execute implements command.Command.
func (c *DeleteProject) Execute(lib *model.Library) (bool, error) {
	p := c.project
	if p == nil || lib.Project(p.ID) != p {
		return false, nil
	}

	c.links = c.links[:0]
	for _, s := range lib.ResolveSongs(append([]string(nil), p.Songs...)) {
		songPos, ownerPos, ok := lib.UnlinkSongFromProject(s, p)
		if ok {
			c.links = append(c.links, ownerLink{s, p, songPos, ownerPos})
		}
	}

	c.parentID, c.parentIndex = lib.DetachChild(p)

	c.children = c.children[:0]
	for _, id := range p.Children {
		if child := lib.Project(id); child != nil && child.Parent == p.ID {
			child.Parent = ""
			c.children = append(c.children, child)
		}
	}

	c.oldFilter = lib.ActiveFilter
	if c.oldFilter == (model.Filter{Kind: model.FilterProject, ID: p.ID}) {
		lib.SetActiveFilter(model.Filter{})
	}

	c.index = lib.RemoveProject(p)
	return true, nil
}

// Undo implements command.Command.
func (c *DeleteProject) Undo(lib *model.Library) {
	p := c.project
	if err := lib.InsertProject(c.index, p); err != nil {
		return
	}
	lib.AttachChildAt(p, c.parentID, c.parentIndex)
	for _, child := range c.children {
		child.Parent = p.ID
	}
	relink(lib, c.links)
	lib.SetActiveFilter(c.oldFilter)
}

// AssignSong links a song to a project. Assigning an already linked pair
// does not apply.
type AssignSong struct {
	song    *model.Song
	project *model.ProjectArtist
}

// NewAssignSong creates an AssignSong command.
func NewAssignSong(s *model.Song, p *model.ProjectArtist) *AssignSong {
	return &AssignSong{song: s, project: p}
}

// Name implements command.Command.
func (c *AssignSong) Name() string { return "assign-song" }

// Result implements command.Command.
func (c *AssignSong) Result() any { return c.song }

// Execute implements command.Command.
func (c *AssignSong) Execute(lib *model.Library) (bool, error) {
	if c.song == nil || c.project == nil {
		return false, nil
	}
	return lib.LinkSongToProject(c.song, c.project)
}

// Undo implements command.Command.
func (c *AssignSong) Undo(lib *model.Library) {
	lib.UnlinkSongFromProject(c.song, c.project)
}

// UnassignSong breaks the link between a song and a project.
type UnassignSong struct {
	link ownerLink
}

// NewUnassignSong creates an UnassignSong command.
func NewUnassignSong(s *model.Song, p *model.ProjectArtist) *UnassignSong {
	return &UnassignSong{link: ownerLink{song: s, project: p}}
}

// Name implements command.Command.
func (c *UnassignSong) Name() string { return "unassign-song" }

// Result implements command.Command.
func (c *UnassignSong) Result() any { return c.link.song }

// Execute implements command.Command.
func (c *UnassignSong) Execute(lib *model.Library) (bool, error) {
	songPos, ownerPos, ok := lib.UnlinkSongFromProject(c.link.song, c.link.project)
	if !ok {
		return false, nil
	}
	c.link.songPos, c.link.ownerPos = songPos, ownerPos
	return true, nil
}

// Undo implements command.Command.
func (c *UnassignSong) Undo(lib *model.Library) {
	relink(lib, []ownerLink{c.link})
}

// SetProjectParent moves a project under another one, or to the top level
// when parent is nil. Moves that would create a cycle are rejected with
// model.ErrCycle.
type SetProjectParent struct {
	child    *model.ProjectArtist
	parent   *model.ProjectArtist
	oldID    string
	oldIndex int
}

// NewSetProjectParent creates a SetProjectParent command.
func NewSetProjectParent(child, parent *model.ProjectArtist) *SetProjectParent {
	return &SetProjectParent{child: child, parent: parent}
}

// Name implements command.Command.
func (c *SetProjectParent) Name() string { return "set-project-parent" }

// Result implements command.Command.
func (c *SetProjectParent) Result() any { return c.child }

// Execute implements command.Command.
func (c *SetProjectParent) Execute(lib *model.Library) (bool, error) {
	if c.child == nil {
		return false, nil
	}
	newID := ""
	if c.parent != nil {
		newID = c.parent.ID
	}
	if c.child.Parent == newID {
		return false, nil
	}

	oldID, oldIndex, err := lib.SetProjectParent(c.child, c.parent)
	if err != nil {
		return false, err
	}
	c.oldID, c.oldIndex = oldID, oldIndex
	return true, nil
}

// Undo implements command.Command.
func (c *SetProjectParent) Undo(lib *model.Library) {
	lib.DetachChild(c.child)
	lib.AttachChildAt(c.child, c.oldID, c.oldIndex)
}

// SetProjectImage points a project at a new image file.
type SetProjectImage struct {
	project *model.ProjectArtist
	path    string
	oldPath string
}

// NewSetProjectImage creates a SetProjectImage command.
func NewSetProjectImage(p *model.ProjectArtist, path string) *SetProjectImage {
	return &SetProjectImage{project: p, path: path}
}

// Name implements command.Command.
func (c *SetProjectImage) Name() string { return "set-project-image" }

// Result implements command.Command.
func (c *SetProjectImage) Result() any { return c.project }

// Execute implements command.Command.
func (c *SetProjectImage) Execute(lib *model.Library) (bool, error) {
	if c.project == nil || lib.Project(c.project.ID) != c.project || c.project.ImagePath == c.path {
		return false, nil
	}
	c.oldPath = c.project.ImagePath
	c.project.ImagePath = c.path
	return true, nil
}

// Undo implements command.Command.
func (c *SetProjectImage) Undo(*model.Library) {
	c.project.ImagePath = c.oldPath
}
