package audio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/handiism/audio-studio/internal/model"
)

func TestTagger_SaveTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Roxy - Avalon.mp3")
	writeMP3(t, path, map[string]string{"TIT2": "old title"})

	song := model.NewSong(path)
	song.ApplyFileNameGuess()
	song.Subtitle = "Live"
	song.Version = 2

	tagger := NewTagger(nil)
	if err := tagger.SaveTags(song, "Roxy Music", nil); err != nil {
		t.Fatalf("SaveTags() error = %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	if tag.Title() != "Avalon" {
		t.Errorf("Title() = %q, want %q", tag.Title(), "Avalon")
	}
	if tag.Artist() != "Roxy Music" {
		t.Errorf("Artist() = %q, want %q", tag.Artist(), "Roxy Music")
	}
	if got := tag.GetTextFrame("TIT3").Text; got != "Live" {
		t.Errorf("TIT3 = %q, want %q", got, "Live")
	}
	tag.Close()

	if got := VersionFromTags(path); got != 2 {
		t.Errorf("VersionFromTags() = %d, want 2", got)
	}

	// A second save replaces the version instead of adding another one.
	song.Version = 3
	if err := tagger.SaveTags(song, "Roxy Music", nil); err != nil {
		t.Fatal(err)
	}
	if got := VersionFromTags(path); got != 3 {
		t.Errorf("VersionFromTags() after resave = %d, want 3", got)
	}
	tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tag.Close()
	if n := len(tag.GetFrames(tag.CommonID("Comments"))); n != 1 {
		t.Errorf("comment frames = %d, want 1", n)
	}
}

func TestTagger_SkipsNonMP3(t *testing.T) {
	song := model.NewSong(filepath.Join(t.TempDir(), "take.wav"))
	if err := NewTagger(nil).SaveTags(song, "Roxy", nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SaveTags() error = %v, want ErrUnsupportedFormat", err)
	}
	if err := NewTagger(nil).SaveTags(nil, "Roxy", nil); !errors.Is(err, model.ErrNilEntity) {
		t.Errorf("SaveTags(nil) error = %v, want ErrNilEntity", err)
	}
}

func TestTagger_DoNotModify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Roxy - Avalon.mp3")
	writeMP3(t, path, map[string]string{"TPE1": "Keep Me"})

	cfg := DefaultTagConfig()
	cfg.Artist = TagDoNotModify
	song := model.NewSong(path)
	song.ApplyFileNameGuess()

	if err := NewTagger(cfg).SaveTags(song, "Replaced", nil); err != nil {
		t.Fatal(err)
	}
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tag.Close()
	if tag.Artist() != "Keep Me" {
		t.Errorf("Artist() = %q, want unchanged", tag.Artist())
	}
}
