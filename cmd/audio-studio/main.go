package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/handiism/audio-studio/internal/audio"
	"github.com/handiism/audio-studio/internal/config"
	"github.com/handiism/audio-studio/internal/library"
	"github.com/handiism/audio-studio/internal/logging"
	"github.com/handiism/audio-studio/internal/model"
	"github.com/handiism/audio-studio/internal/scan"
	"github.com/handiism/audio-studio/internal/store"
	"github.com/handiism/audio-studio/internal/view"
)

type options struct {
	config      string
	data        string
	track       string
	scan        bool
	add         string
	sort        bool
	newPlaylist string
	list        bool
	playlist    string
	project     string
	export      string
	writeTags   bool
	info        string
	verbose     bool
}

func main() {
	var opts options

	// Command line flags
	flag.StringVar(&opts.config, "config", "", "Path to config file")
	flag.StringVar(&opts.data, "data", "", "Library file (overrides config)")
	flag.StringVar(&opts.track, "track", "", "Add a folder to the tracked folders")
	flag.BoolVar(&opts.scan, "scan", false, "Import new audio files from tracked folders")
	flag.StringVar(&opts.add, "add", "", "Import one audio file")
	flag.BoolVar(&opts.sort, "sort", false, "Assign unowned songs to projects named after their artist")
	flag.StringVar(&opts.newPlaylist, "new-playlist", "", "Create an empty playlist with this title")
	flag.BoolVar(&opts.list, "list", false, "List the songs of the current view")
	flag.StringVar(&opts.playlist, "playlist", "", "Narrow the view to a playlist (title or ID)")
	flag.StringVar(&opts.project, "project", "", "Narrow the view to a project (name or ID)")
	flag.StringVar(&opts.export, "export", "", "Export the -playlist into this directory")
	flag.BoolVar(&opts.writeTags, "write-tags", false, "Write library metadata into the MP3 files of the current view")
	flag.StringVar(&opts.info, "info", "", "Show the embedded tags of an audio file")
	flag.BoolVar(&opts.verbose, "verbose", false, "Show verbose output")

	flag.Parse()

	if flag.NFlag() == 0 {
		fmt.Println("Audio Studio - Organize songs into playlists and projects")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  audio-studio [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: audio-studio-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Load config
	settings := config.DefaultSettings()
	if opts.config != "" {
		var err error
		settings, err = config.Load(opts.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if opts.data != "" {
		settings.DataPath = opts.data
	}

	logger, err := logging.New(settings.ToLoggingOptions(opts.verbose))
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	probe := audio.NewProbe(logger)

	if opts.info != "" {
		return printInfo(probe, opts.info)
	}

	st, err := store.Open(settings.DataPath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	handler := library.NewHandler(st.Load(), st, probe, logger)
	lib := handler.Library()

	if opts.track != "" {
		if _, err := handler.AddTrackedFolder(opts.track); err != nil {
			return err
		}
		fmt.Printf("Tracking %s\n", opts.track)
	}

	if opts.add != "" {
		s, err := handler.AddSong(opts.add)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", s.DisplayTitle(), formatDuration(handler.Duration(s)))
	}

	if opts.scan {
		scanner := scan.NewScanner(settings, handler, probe, logger, progressPrinter(opts.verbose))
		if _, err := scanner.Scan(ctx); err != nil {
			return err
		}
	}

	if opts.sort {
		n, err := handler.SortSongsToProjects()
		if err != nil {
			return err
		}
		fmt.Printf("Sorted %d song(s) into projects\n", n)
	}

	if opts.newPlaylist != "" {
		p, err := handler.CreatePlaylist(opts.newPlaylist)
		if err != nil {
			return err
		}
		fmt.Printf("Created playlist %q (%s)\n", p.Title, p.ID)
	}

	var selected *model.Playlist
	switch {
	case opts.playlist != "":
		selected = findPlaylist(lib, opts.playlist)
		if selected == nil {
			return fmt.Errorf("playlist %q not found", opts.playlist)
		}
		handler.SetActiveFilter(model.Filter{Kind: model.FilterPlaylist, ID: selected.ID})
	case opts.project != "":
		p := findProject(lib, opts.project)
		if p == nil {
			return fmt.Errorf("project %q not found", opts.project)
		}
		handler.SetActiveFilter(model.Filter{Kind: model.FilterProject, ID: p.ID})
	}

	if opts.export != "" {
		if selected == nil {
			return errors.New("-export needs -playlist")
		}
		creator := audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended)
		path, err := exportPlaylist(ctx, handler, creator, selected, opts.export)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %s\n", path)
	}

	if opts.writeTags {
		writeTags(handler, audio.NewTagger(settings.ToTagConfig()), logger)
	}

	if opts.list {
		songs := handler.Songs()
		fmt.Printf("%s (%d)\n", view.Title(lib), len(songs))
		fmt.Println(renderTable(
			[]string{"#", "Title", "Artist", "Length", "Projects", "Version"},
			songRows(handler, songs),
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
		))
	}

	return nil
}

func writeTags(h *library.Handler, tagger *audio.Tagger, logger *zap.Logger) {
	lib := h.Library()
	var written, skipped int
	for _, s := range h.Songs() {
		err := tagger.SaveTags(s, songArtist(lib, s), nil)
		switch {
		case errors.Is(err, audio.ErrUnsupportedFormat):
			skipped++
		case err != nil:
			logger.Warn("failed to tag song", zap.String("path", s.Path), zap.Error(err))
		default:
			written++
		}
	}
	fmt.Printf("Tagged %d file(s), skipped %d non-MP3 file(s)\n", written, skipped)
}

func printInfo(probe *audio.Probe, path string) error {
	tags, err := probe.Tags(path)
	if err != nil {
		return fmt.Errorf("reading tags: %w", err)
	}
	rows := [][]string{
		{"Format", tags.Format},
		{"Title", tags.Title},
		{"Artist", tags.Artist},
		{"Album", tags.Album},
		{"Genre", tags.Genre},
		{"Length", formatDuration(probe.DurationSeconds(path))},
	}
	if tags.Year > 0 {
		rows = append(rows, []string{"Year", fmt.Sprint(tags.Year)})
	}
	if tags.Track > 0 {
		rows = append(rows, []string{"Track", fmt.Sprint(tags.Track)})
	}
	if v := audio.VersionFromTags(path); v > 0 {
		rows = append(rows, []string{"Version", fmt.Sprint(v)})
	}
	fmt.Println(renderTable([]string{"Field", "Value"}, rows, nil))
	return nil
}

func progressPrinter(verbose bool) func(scan.ProgressEvent) {
	return func(event scan.ProgressEvent) {
		if event.Level == scan.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case scan.LevelError:
			prefix = "❌ "
		case scan.LevelWarning:
			prefix = "⚠️  "
		case scan.LevelSuccess:
			prefix = "✅ "
		case scan.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	}
}
