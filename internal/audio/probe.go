package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"github.com/go-audio/wav"
	"github.com/go-flac/go-flac"
	"go.uber.org/zap"
)

// Tags is the embedded metadata of an audio file.
type Tags struct {
	Format string
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   int
	Track  int
}

// Probe reads durations and embedded tags from audio files.
//
// Durations come from the container headers only, nothing is decoded:
//   - MP3: the ID3v2 TLEN frame (files without it report 0)
//   - FLAC: total samples and sample rate from STREAMINFO
//   - WAV: the RIFF fmt and data chunks
//
// Example:
//
//	probe := audio.NewProbe(logger)
//	seconds := probe.DurationSeconds("/music/Roxy - Avalon.flac")
type Probe struct {
	logger *zap.Logger
}

// NewProbe creates a Probe. logger may be nil.
func NewProbe(logger *zap.Logger) *Probe {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Probe{logger: logger}
}

// DurationSeconds returns the duration of the file at path in whole
// seconds, or 0 if it cannot be determined. Failures are logged at debug
// level.
func (p *Probe) DurationSeconds(path string) int {
	d, err := p.Duration(path)
	if err != nil {
		p.logger.Debug("duration probe failed", zap.String("path", path), zap.Error(err))
		return 0
	}
	return int(d / time.Second)
}

// Duration returns the duration of the file at path.
func (p *Probe) Duration(path string) (time.Duration, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3Duration(path)
	case ".flac":
		return flacDuration(path)
	case ".wav", ".wave":
		return wavDuration(path)
	default:
		return 0, fmt.Errorf("probe %q: %w", path, ErrUnsupportedFormat)
	}
}

func mp3Duration(path string) (time.Duration, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return 0, err
	}
	defer t.Close()

	tlen := strings.TrimSpace(t.GetTextFrame("TLEN").Text)
	if tlen == "" {
		return 0, fmt.Errorf("probe %q: no TLEN frame", path)
	}
	ms, err := strconv.Atoi(tlen)
	if err != nil {
		return 0, fmt.Errorf("probe %q: bad TLEN %q", path, tlen)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func flacDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	meta, err := flac.ParseMetadata(f)
	if err != nil {
		return 0, err
	}
	info, err := meta.GetStreamInfo()
	if err != nil {
		return 0, err
	}
	if info.SampleRate <= 0 || info.SampleCount <= 0 {
		return 0, fmt.Errorf("probe %q: unknown sample count", path)
	}
	return samplesDuration(uint64(info.SampleCount), uint64(info.SampleRate)), nil
}

// samplesDuration converts a sample count at rate Hz to a duration without
// overflowing for long recordings.
func samplesDuration(samples, rate uint64) time.Duration {
	secs := samples / rate
	if secs > uint64(math.MaxInt64/int64(time.Second)) {
		return math.MaxInt64
	}
	rem := samples % rate
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/rate)
}

func wavDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d, err := wav.NewDecoder(f).Duration()
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("probe %q: not a readable WAV file", path)
	}
	return d, nil
}

// Tags reads the embedded metadata of the file at path.
func (p *Probe) Tags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Tags{}, fmt.Errorf("read tags %q: %w", path, err)
	}
	track, _ := m.Track()
	return Tags{
		Format: string(m.Format()),
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
		Genre:  strings.TrimSpace(m.Genre()),
		Year:   m.Year(),
		Track:  track,
	}, nil
}
