package player

import (
	"sync"
	"time"
)

// Device opens audio files for playback.
type Device interface {
	// Open prepares path for playback. The returned stream is stopped.
	Open(path string) (Stream, error)

	// GainRange returns the lowest and highest gain in dB the device accepts.
	GainRange() (minDB, maxDB float64)
}

// Stream is one opened file on a Device.
//
// PositionMs, DurationMs and Finished must be safe to call concurrently
// with the other methods.
type Stream interface {
	Start() error
	Pause() error
	Resume() error
	Seek(ms int64) error
	SetGain(db float64) error
	Close() error

	PositionMs() int64
	DurationMs() int64

	// Finished reports whether playback reached the end of the file.
	Finished() bool
}

// NullDevice is a Device that produces no sound. Its streams advance with
// the wall clock, which keeps the transport usable without an audio
// backend.
type NullDevice struct {
	durationSeconds func(path string) int
	now             func() time.Time
}

// NewNullDevice creates a NullDevice. durationSeconds reports the length
// of a file and may be nil, in which case streams never finish.
func NewNullDevice(durationSeconds func(path string) int) *NullDevice {
	return &NullDevice{durationSeconds: durationSeconds, now: time.Now}
}

// Open implements Device.
func (d *NullDevice) Open(path string) (Stream, error) {
	var durMs int64
	if d.durationSeconds != nil {
		durMs = int64(d.durationSeconds(path)) * 1000
	}
	return &nullStream{durationMs: durMs, now: d.now}, nil
}

// GainRange implements Device.
func (d *NullDevice) GainRange() (float64, float64) {
	return -80, 6
}

type nullStream struct {
	mu         sync.Mutex
	now        func() time.Time
	durationMs int64

	running   bool
	startedAt time.Time
	offsetMs  int64
	gainDB    float64
}

func (s *nullStream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsetMs = 0
	s.startedAt = s.now()
	s.running = true
	return nil
}

func (s *nullStream) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.offsetMs = s.positionLocked()
		s.running = false
	}
	return nil
}

func (s *nullStream) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		s.startedAt = s.now()
		s.running = true
	}
	return nil
}

func (s *nullStream) Seek(ms int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsetMs = max(ms, 0)
	s.startedAt = s.now()
	return nil
}

func (s *nullStream) SetGain(db float64) error {
	s.mu.Lock()
	s.gainDB = db
	s.mu.Unlock()
	return nil
}

func (s *nullStream) Close() error {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	return nil
}

func (s *nullStream) PositionMs() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positionLocked()
}

func (s *nullStream) DurationMs() int64 {
	return s.durationMs
}

func (s *nullStream) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.durationMs > 0 && s.positionLocked() >= s.durationMs
}

func (s *nullStream) positionLocked() int64 {
	pos := s.offsetMs
	if s.running {
		pos += s.now().Sub(s.startedAt).Milliseconds()
	}
	if s.durationMs > 0 && pos > s.durationMs {
		pos = s.durationMs
	}
	return pos
}
