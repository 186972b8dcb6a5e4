// Package tui provides a Bubble Tea terminal user interface for audio-studio.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/handiism/audio-studio/internal/config"
	"github.com/handiism/audio-studio/internal/library"
	"github.com/handiism/audio-studio/internal/model"
	"github.com/handiism/audio-studio/internal/player"
	"github.com/handiism/audio-studio/internal/scan"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)
)

// seekStep is how far left/right move the playback position.
const seekStep = 5 * time.Second

// Pane identifies which list has keyboard focus.
type Pane int

const (
	PaneSongs Pane = iota
	PaneSidebar
)

// Prompt identifies what the text input is collecting.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptNewPlaylist
	PromptNewProject
	PromptRename
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   scan.ProgressLevel
}

// Options are the collaborators the TUI drives.
type Options struct {
	Settings *config.Settings
	Handler  *library.Handler
	Player   *player.Player
	Prober   library.DurationProber
	Logger   *zap.Logger
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	settings *config.Settings
	handler  *library.Handler
	player   *player.Player
	prober   library.DurationProber
	logger   *zap.Logger

	textInput textinput.Model
	progress  progress.Model
	prompt    Prompt

	focus         Pane
	songCursor    int
	sidebarCursor int

	logs    []LogEntry
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	if opts.Settings == nil {
		opts.Settings = config.DefaultSettings()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return Model{
		settings:  opts.Settings,
		handler:   opts.Handler,
		player:    opts.Player,
		prober:    opts.Prober,
		logger:    opts.Logger,
		textInput: ti,
		progress:  prog,
		logs:      make([]LogEntry, 0),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.tickTransport()
}

// TickMsg is for periodic transport updates.
type TickMsg struct{}

// tickTransport returns a command to refresh the playback position.
func (m Model) tickTransport() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-40, 20), 80)
		return m, nil

	case TickMsg:
		return m, m.tickTransport()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.prompt != PromptNone {
			return m.updatePrompt(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endPrompt()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.textInput.Value())
		prompt := m.prompt
		m.endPrompt()
		if value != "" {
			m.confirmPrompt(prompt, value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "tab":
		if m.focus == PaneSongs {
			m.focus = PaneSidebar
		} else {
			m.focus = PaneSongs
		}

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "enter":
		if m.focus == PaneSidebar {
			m.applyFilter()
		} else if s := m.selectedSong(); s != nil {
			m.player.Play(s.Path)
			m.log(LogEntry{Message: "Playing " + s.DisplayTitle(), Level: scan.LevelVerbose})
		}

	case " ", "space":
		if m.player.IsPlaying() {
			m.player.Pause()
		} else if m.player.IsPaused() {
			m.player.Resume()
		}

	case "x":
		m.player.Stop()

	case "left":
		m.player.Seek(m.player.PositionMs() - seekStep.Milliseconds())

	case "right":
		m.player.Seek(m.player.PositionMs() + seekStep.Milliseconds())

	case "+", "=":
		m.player.SetVolume(m.player.Volume() + 0.1)

	case "-":
		m.player.SetVolume(m.player.Volume() - 0.1)

	case "n":
		m.startPrompt(PromptNewPlaylist, "Playlist title", "")

	case "N":
		m.startPrompt(PromptNewProject, "Project name", "")

	case "r":
		if label := m.renameTarget(); label != "" {
			m.startPrompt(PromptRename, "New name", label)
		}

	case "a":
		m.addToSelected()

	case "d":
		m.deleteSelected()

	case "o":
		m.sortSongs()

	case "S":
		m.scanFolders()

	case "u":
		if name := m.handler.Undo(); name != "" {
			m.log(LogEntry{Message: "Undid " + name, Level: scan.LevelInfo})
		} else {
			m.log(LogEntry{Message: "Nothing to undo", Level: scan.LevelWarning})
		}
		m.clampCursors()

	case "v":
		m.verbose = !m.verbose
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.focus == PaneSidebar {
		m.sidebarCursor += delta
	} else {
		m.songCursor += delta
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	entries := sidebarEntries(m.handler.Library())
	m.sidebarCursor = min(max(m.sidebarCursor, 0), len(entries)-1)
	songs := m.handler.Songs()
	m.songCursor = min(max(m.songCursor, 0), max(len(songs)-1, 0))
}

func (m Model) selectedEntry() entry {
	entries := sidebarEntries(m.handler.Library())
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(entries) {
		return entries[0]
	}
	return entries[m.sidebarCursor]
}

func (m Model) selectedSong() *model.Song {
	songs := m.handler.Songs()
	if m.songCursor < 0 || m.songCursor >= len(songs) {
		return nil
	}
	return songs[m.songCursor]
}

func (m *Model) applyFilter() {
	m.handler.SetActiveFilter(m.selectedEntry().filter)
	m.songCursor = 0
	m.focus = PaneSongs
}

func (m *Model) startPrompt(p Prompt, placeholder, value string) {
	m.prompt = p
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue(value)
	m.textInput.Focus()
}

func (m *Model) endPrompt() {
	m.prompt = PromptNone
	m.textInput.Blur()
	m.textInput.SetValue("")
}

func (m *Model) confirmPrompt(p Prompt, value string) {
	lib := m.handler.Library()
	switch p {
	case PromptNewPlaylist:
		pl, err := m.handler.CreatePlaylist(value)
		m.report(err, "Created playlist "+value)
		if pl != nil {
			m.logger.Debug("playlist created", zap.String("id", pl.ID))
		}
	case PromptNewProject:
		_, err := m.handler.CreateProject(value)
		m.report(err, "Created project "+value)
	case PromptRename:
		f := m.selectedEntry().filter
		var err error
		switch f.Kind {
		case model.FilterPlaylist:
			_, err = m.handler.RenamePlaylist(lib.Playlist(f.ID), value)
		case model.FilterProject:
			_, err = m.handler.RenameProject(lib.Project(f.ID), value)
		}
		m.report(err, "Renamed to "+value)
	}
	m.clampCursors()
}

// renameTarget returns the current name of the selected sidebar entry, or
// "" when it cannot be renamed.
func (m Model) renameTarget() string {
	lib := m.handler.Library()
	f := m.selectedEntry().filter
	switch f.Kind {
	case model.FilterPlaylist:
		if p := lib.Playlist(f.ID); p != nil {
			return p.Title
		}
	case model.FilterProject:
		if p := lib.Project(f.ID); p != nil {
			return p.Name
		}
	}
	return ""
}

// addToSelected puts the selected song into the playlist or project
// selected in the sidebar.
func (m *Model) addToSelected() {
	s := m.selectedSong()
	if s == nil {
		return
	}
	lib := m.handler.Library()
	f := m.selectedEntry().filter
	switch f.Kind {
	case model.FilterPlaylist:
		p := lib.Playlist(f.ID)
		_, err := m.handler.AddSongToPlaylist(p, s)
		m.report(err, fmt.Sprintf("Added %s to %s", s.DisplayTitle(), p.Title))
	case model.FilterProject:
		p := lib.Project(f.ID)
		applied, err := m.handler.AssignSong(s, p)
		if err == nil && !applied {
			m.log(LogEntry{Message: s.DisplayTitle() + " already belongs to " + p.Name, Level: scan.LevelWarning})
			return
		}
		m.report(err, fmt.Sprintf("Assigned %s to %s", s.DisplayTitle(), p.Name))
	default:
		m.log(LogEntry{Message: "Select a playlist or project in the sidebar first", Level: scan.LevelWarning})
	}
}

// deleteSelected deletes the selected sidebar entry, or removes the
// selected song from the current view.
func (m *Model) deleteSelected() {
	lib := m.handler.Library()
	if m.focus == PaneSidebar {
		f := m.selectedEntry().filter
		switch f.Kind {
		case model.FilterPlaylist:
			_, err := m.handler.DeletePlaylist(lib.Playlist(f.ID))
			m.report(err, "Deleted playlist")
		case model.FilterProject:
			_, err := m.handler.DeleteProject(lib.Project(f.ID))
			m.report(err, "Deleted project")
		}
		m.clampCursors()
		return
	}

	s := m.selectedSong()
	if s == nil {
		return
	}
	f := lib.ActiveFilter
	switch f.Kind {
	case model.FilterPlaylist:
		p := lib.Playlist(f.ID)
		_, err := m.handler.RemoveSongFromPlaylist(p, playlistIndex(lib, p, m.songCursor))
		m.report(err, "Removed "+s.DisplayTitle()+" from playlist")
	case model.FilterProject:
		_, err := m.handler.UnassignSong(s, lib.Project(f.ID))
		m.report(err, "Unassigned "+s.DisplayTitle())
	default:
		if m.player.Path() == s.Path {
			m.player.Stop()
		}
		_, err := m.handler.RemoveSong(s)
		m.report(err, "Removed "+s.DisplayTitle()+" from library")
	}
	m.clampCursors()
}

func (m *Model) sortSongs() {
	n, err := m.handler.SortSongsToProjects()
	if err != nil {
		m.log(LogEntry{Message: err.Error(), Level: scan.LevelError})
		return
	}
	if n == 0 {
		m.log(LogEntry{Message: "Nothing to sort", Level: scan.LevelInfo})
		return
	}
	m.log(LogEntry{Message: fmt.Sprintf("Sorted %d song(s) into projects", n), Level: scan.LevelSuccess})
}

// scanFolders imports new files from the tracked folders. It runs on the
// UI goroutine because the library is not safe for concurrent use.
func (m *Model) scanFolders() {
	var events []scan.ProgressEvent
	scanner := scan.NewScanner(m.settings, m.handler, m.prober, m.logger, func(e scan.ProgressEvent) {
		events = append(events, e)
	})
	if _, err := scanner.Scan(context.Background()); err != nil {
		events = append(events, scan.ProgressEvent{Message: err.Error(), Level: scan.LevelError})
	}
	for _, e := range events {
		m.log(LogEntry(e))
	}
	m.clampCursors()
}

func (m *Model) report(err error, success string) {
	if err != nil {
		m.log(LogEntry{Message: err.Error(), Level: scan.LevelError})
		return
	}
	m.log(LogEntry{Message: success, Level: scan.LevelSuccess})
}

func (m *Model) log(e LogEntry) {
	if e.Level == scan.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, e)
	// Keep only last 5 logs
	if len(m.logs) > 5 {
		m.logs = m.logs[len(m.logs)-5:]
	}
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
