package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/audio-studio/internal/config"
	"github.com/handiism/audio-studio/internal/library"
	"github.com/handiism/audio-studio/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result summarizes one scan.
type Result struct {
	Found   int // audio files seen
	Added   int // songs imported
	Skipped int // files already in the library
	Failed  int // files that could not be imported
}

// Scanner imports new audio files from the library's tracked folders.
type Scanner struct {
	settings *config.Settings
	handler  *library.Handler
	prober   library.DurationProber
	logger   *zap.Logger

	onProgress func(ProgressEvent)
}

// NewScanner creates a Scanner that submits imports through handler.
// prober may be nil, in which case imported durations stay unresolved.
func NewScanner(settings *config.Settings, handler *library.Handler, prober library.DurationProber, logger *zap.Logger, onProgress func(ProgressEvent)) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		settings:   settings,
		handler:    handler,
		prober:     prober,
		logger:     logger,
		onProgress: onProgress,
	}
}

// Scan imports new files from every tracked folder.
func (s *Scanner) Scan(ctx context.Context) (Result, error) {
	folders := append([]string(nil), s.handler.Library().TrackedFolders...)
	return s.ScanFolders(ctx, folders)
}

// ScanFolders imports new audio files found under folders.
//
// Durations are probed concurrently, bounded by the scan_concurrency
// setting. Each new file is then added with its own AddSong command, in
// walk order, so every import can be undone separately. Folders that
// cannot be read are reported and skipped.
func (s *Scanner) ScanFolders(ctx context.Context, folders []string) (Result, error) {
	var res Result

	var paths []string
	for _, folder := range folders {
		found, err := s.walk(ctx, folder)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			s.progress(ProgressEvent{Message: fmt.Sprintf("Error scanning %s: %v", folder, err), Level: LevelWarning})
			continue
		}
		res.Found += len(found)
		for _, path := range found {
			if s.handler.Library().Song(path) != nil {
				res.Skipped++
				continue
			}
			paths = append(paths, path)
		}
		s.progress(ProgressEvent{Message: fmt.Sprintf("Scanned %s: %d audio files", folder, len(found)), Level: LevelVerbose})
	}

	durations, err := s.prefetch(ctx, paths)
	if err != nil {
		return res, err
	}
	var prober library.DurationProber
	if s.prober != nil {
		prober = durations
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		cmd := library.NewAddSong(path, prober, s.handler.Now())
		applied, err := s.handler.Submit(cmd)
		if err != nil {
			if !errors.Is(err, model.ErrDuplicateSong) {
				res.Failed++
				s.progress(ProgressEvent{Message: fmt.Sprintf("Error adding %s: %v", path, err), Level: LevelError})
			} else {
				res.Skipped++
			}
			continue
		}
		if applied {
			res.Added++
			s.progress(ProgressEvent{Message: fmt.Sprintf("Added: %s", filepath.Base(path)), Level: LevelVerbose})
		}
	}

	level := LevelSuccess
	if res.Failed > 0 {
		level = LevelWarning
	}
	s.progress(ProgressEvent{
		Message: fmt.Sprintf("Scan finished: %d added, %d already known, %d failed", res.Added, res.Skipped, res.Failed),
		Level:   level,
	})
	return res, nil
}

// walk returns the absolute paths of the audio files under folder in
// lexical order.
func (s *Scanner) walk(ctx context.Context, folder string) ([]string, error) {
	root, err := filepath.Abs(folder)
	if err != nil {
		return nil, err
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Debug("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Type().IsRegular() && s.settings.IsAudioFile(path) {
			found = append(found, path)
		}
		return nil
	})
	return found, err
}

// prefetch probes every path concurrently.
func (s *Scanner) prefetch(ctx context.Context, paths []string) (durationCache, error) {
	cache := make(durationCache, len(paths))
	if s.prober == nil || len(paths) == 0 {
		return cache, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.settings.ScanConcurrency, 1))

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			secs := s.prober.DurationSeconds(path)
			mu.Lock()
			cache[path] = secs
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cache, nil
}

func (s *Scanner) progress(event ProgressEvent) {
	if s.onProgress != nil {
		s.onProgress(event)
	}
}

// durationCache serves durations probed ahead of time.
type durationCache map[string]int

// DurationSeconds implements library.DurationProber.
func (c durationCache) DurationSeconds(path string) int {
	return c[path]
}
