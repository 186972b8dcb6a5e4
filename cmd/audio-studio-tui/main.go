package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/audio-studio/internal/audio"
	"github.com/handiism/audio-studio/internal/config"
	ioutils "github.com/handiism/audio-studio/internal/io"
	"github.com/handiism/audio-studio/internal/library"
	"github.com/handiism/audio-studio/internal/logging"
	"github.com/handiism/audio-studio/internal/player"
	"github.com/handiism/audio-studio/internal/store"
	"github.com/handiism/audio-studio/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	dataFlag := flag.String("data", "", "Library file (overrides config)")
	flag.Parse()

	if err := run(*configFlag, *dataFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dataPath string) error {
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if dataPath != "" {
		settings.DataPath = dataPath
	}

	// The terminal belongs to the UI, so logs go to a file next to the library.
	logDir := filepath.Dir(settings.DataPath)
	if err := ioutils.EnsureDir(logDir); err != nil {
		return err
	}
	logOpts := settings.ToLoggingOptions(false)
	logOpts.OutputPaths = []string{filepath.Join(logDir, "audio-studio.log")}
	logger, err := logging.New(logOpts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := store.Open(settings.DataPath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	probe := audio.NewProbe(logger)
	handler := library.NewHandler(st.Load(), st, probe, logger)

	p := player.New(player.NewNullDevice(probe.DurationSeconds), player.Options{
		FadeIn: settings.FadeIn(),
		Volume: settings.DefaultVolume,
	}, logger)
	defer p.Close()

	return tui.Run(tui.Options{
		Settings: settings,
		Handler:  handler,
		Player:   p,
		Prober:   probe,
		Logger:   logger,
	})
}
