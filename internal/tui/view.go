package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/audio-studio/internal/model"
	"github.com/handiism/audio-studio/internal/scan"
	"github.com/handiism/audio-studio/internal/view"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Audio Studio"))
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), " ", m.viewSongs())
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.viewTransport())
	b.WriteString("\n")

	if m.prompt != PromptNone {
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewSidebar() string {
	var b strings.Builder
	lib := m.handler.Library()

	for i, e := range sidebarEntries(lib) {
		line := strings.Repeat("  ", e.depth) + e.label
		switch {
		case i == m.sidebarCursor && m.focus == PaneSidebar:
			line = selectedStyle.Render("› " + line)
		case e.filter == lib.ActiveFilter:
			line = subtitleStyle.Render("• " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return boxStyle.Width(28).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewSongs() string {
	var b strings.Builder
	lib := m.handler.Library()
	songs := m.handler.Songs()

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s (%d)", view.Title(lib), len(songs))))
	b.WriteString("\n")

	if len(songs) == 0 {
		b.WriteString(dimStyle.Render("No songs. Press S to scan tracked folders."))
		return boxStyle.Render(b.String())
	}

	start, end := m.visibleRange(len(songs))
	for i := start; i < end; i++ {
		s := songs[i]
		line := fmt.Sprintf("%-32s %-20s %6s %s",
			truncate(s.DisplayTitle(), 32),
			truncate(s.GuessedArtist, 20),
			formatDuration(m.handler.Duration(s)),
			versionMark(lib, s))
		switch {
		case i == m.songCursor && m.focus == PaneSongs:
			line = selectedStyle.Render("› " + line)
		case s.Path == m.player.Path():
			line = successStyle.Render("♪ " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// visibleRange returns the window of song rows that fits the terminal
// and contains the cursor.
func (m Model) visibleRange(n int) (int, int) {
	rows := n
	if m.height > 0 {
		rows = max(m.height-16, 5)
	}
	if n <= rows {
		return 0, n
	}
	start := min(max(m.songCursor-rows/2, 0), n-rows)
	return start, start + rows
}

func (m Model) viewTransport() string {
	path := m.player.Path()
	if path == "" {
		return dimStyle.Render(fmt.Sprintf("■ stopped  vol %d%%", int(m.player.Volume()*100+0.5)))
	}

	state := "▶"
	if m.player.IsPaused() {
		state = "❚❚"
	}
	pos, dur := m.player.PositionMs(), m.player.DurationMs()

	var percent float64
	if dur > 0 {
		percent = float64(pos) / float64(dur)
	}

	return infoStyle.Render(fmt.Sprintf("%s %s  %s / %s  vol %d%%  ",
		state,
		filepath.Base(path),
		formatDuration(int(pos/1000)),
		formatDuration(int(dur/1000)),
		int(m.player.Volume()*100+0.5),
	)) + m.progress.ViewAs(percent)
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case scan.LevelError:
			style = errorStyle
			prefix = "✗"
		case scan.LevelWarning:
			style = warningStyle
			prefix = "!"
		case scan.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case scan.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	if m.prompt != PromptNone {
		return "enter: confirm • esc: cancel"
	}
	if m.focus == PaneSidebar {
		return "enter: show • n/N: new playlist/project • r: rename • d: delete • tab: songs • u: undo • q: quit"
	}
	return "enter: play • space: pause • x: stop • ←/→: seek • +/-: volume • a: add to selected • d: remove • o: sort • S: scan • u: undo • tab: sidebar • q: quit"
}

// versionMark shows the revision number of a versioned song, starred when
// it is the preferred revision.
func versionMark(lib *model.Library, s *model.Song) string {
	g := lib.Group(s.Group)
	if g == nil {
		return ""
	}
	mark := fmt.Sprintf("v%d", s.Version)
	if g.Starred == s.Path {
		mark += "★"
	}
	return mark
}

// formatDuration renders seconds as m:ss, or "--:--" when unknown.
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "--:--"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
