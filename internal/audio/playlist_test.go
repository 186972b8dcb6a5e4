package audio

import (
	"strings"
	"testing"

	"github.com/handiism/audio-studio/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist("Demos", createTestEntries())

	want := "/music/Roxy - Avalon.wav\n/music/notitle.wav\n"
	if content != want {
		t.Errorf("CreatePlaylist() = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist("Demos", createTestEntries())

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:250,Roxy - Avalon\n") {
		t.Errorf("Extended M3U missing artist/title line:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:-1,notitle.wav\n") {
		t.Errorf("unknown duration should be -1:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist("Demos", createTestEntries())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=/music/Roxy - Avalon.wav\n") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=2\n") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatWPL, false)

	content := creator.CreatePlaylist("Demos", createTestEntries())

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<title>Demos</title>") {
		t.Error("WPL should contain the playlist title")
	}
	if strings.Count(content, "<media src=") != 2 {
		t.Error("WPL should contain one media element per entry")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatZPL, false)

	content := creator.CreatePlaylist("Demos", createTestEntries())

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, `trackArtist="Roxy" duration="250000"`) {
		t.Errorf("ZPL should contain artist and duration attributes:\n%s", content)
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	entries := []Entry{{Path: "/music/Artist & Co - Track.wav", Title: "Track \"Quote\"", Artist: "Artist & Co"}}

	content := NewPlaylistCreator(FormatWPL, false).CreatePlaylist("Demos <Special>", entries)

	if !strings.Contains(content, "Artist &amp; Co") {
		t.Error("WPL should escape & as &amp;")
	}
	if strings.Contains(content, "<Special>") {
		t.Error("WPL should escape < and >")
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   PlaylistFormat
		wantOK bool
		ext    string
	}{
		{"m3u", FormatM3U, true, ".m3u"},
		{"PLS", FormatPLS, true, ".pls"},
		{" wpl ", FormatWPL, true, ".wpl"},
		{"zpl", FormatZPL, true, ".zpl"},
		{"xspf", FormatM3U, false, ".m3u"},
	}
	for _, tt := range tests {
		got, ok := ParsePlaylistFormat(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePlaylistFormat(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
		if got.Extension() != tt.ext {
			t.Errorf("%v.Extension() = %q, want %q", got, got.Extension(), tt.ext)
		}
	}
}

func createTestEntries() []Entry {
	avalon := model.NewSong("/music/Roxy - Avalon.wav")
	avalon.ApplyFileNameGuess()
	notitle := model.NewSong("/music/notitle.wav")

	return []Entry{NewEntry(avalon, 250), NewEntry(notitle, 0)}
}
