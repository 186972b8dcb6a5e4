package library

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/handiism/audio-studio/internal/model"
)

func TestHandler_DurationIsProbedOnce(t *testing.T) {
	h := NewHandler(model.NewLibrary(), nil, nil, nil)
	s, err := h.AddSong("/music/Roxy - Avalon.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if s.DurationResolved() {
		t.Fatalf("DurationSeconds = %d, want unresolved without a prober at import", s.DurationSeconds)
	}

	prober := &fakeProber{seconds: 215}
	h.prober = prober

	for i := 0; i < 3; i++ {
		if got := h.Duration(s); got != 215 {
			t.Errorf("Duration() = %d, want 215", got)
		}
	}
	if prober.calls != 1 {
		t.Errorf("probe calls = %d, want 1", prober.calls)
	}
	if h.Duration(nil) != 0 {
		t.Error("Duration(nil) != 0")
	}
}

func TestHandler_DurationWithoutProber(t *testing.T) {
	h := NewHandler(model.NewLibrary(), nil, nil, nil)
	s, err := h.AddSong("/music/a.wav")
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Duration(s); got != 0 || !s.DurationResolved() {
		t.Errorf("Duration() = %d, resolved = %v, want 0, true", got, s.DurationResolved())
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestHandler_ImportProjectImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cover.png")
	writePNG(t, src, 400, 200)

	h := NewHandler(model.NewLibrary(), nil, nil, nil)
	p, err := h.CreateProject("Roxy: Live")
	if err != nil {
		t.Fatal(err)
	}

	imagesDir := filepath.Join(dir, "images")
	dst, err := h.ImportProjectImage(context.Background(), p, src, imagesDir, 100)
	if err != nil {
		t.Fatalf("ImportProjectImage() error = %v", err)
	}
	if filepath.Dir(dst) != imagesDir || !strings.HasPrefix(filepath.Base(dst), "Roxy_ Live-") || filepath.Ext(dst) != ".jpg" {
		t.Errorf("destination = %q", dst)
	}
	if p.ImagePath != dst {
		t.Errorf("ImagePath = %q, want %q", p.ImagePath, dst)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("imported image is not a JPEG: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("imported size = %dx%d, want 100x50", cfg.Width, cfg.Height)
	}

	if name := h.Undo(); name != "set-project-image" {
		t.Errorf("Undo() = %q, want set-project-image", name)
	}
	if p.ImagePath != "" {
		t.Errorf("ImagePath after undo = %q, want empty", p.ImagePath)
	}
}

func TestHandler_ImportProjectImageCopiesUndecodable(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cover.bmp")
	if err := os.WriteFile(src, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	h := NewHandler(model.NewLibrary(), nil, nil, zap.New(core))
	p, err := h.CreateProject("Side")
	if err != nil {
		t.Fatal(err)
	}

	dst, err := h.ImportProjectImage(context.Background(), p, src, dir, 0)
	if err != nil {
		t.Fatalf("ImportProjectImage() error = %v", err)
	}
	if filepath.Ext(dst) != ".bmp" {
		t.Errorf("destination = %q, want original extension", dst)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "not an image" {
		t.Errorf("copied data = %q, %v", data, err)
	}
	if logs.Len() != 1 {
		t.Errorf("warnings = %d, want 1", logs.Len())
	}
}
