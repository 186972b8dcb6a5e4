package player

import (
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

// fadeSteps is the number of gain changes used to fade in a started file.
const fadeSteps = 100

// Options configures a Player.
type Options struct {
	// FadeIn is how long a started file takes to reach full volume.
	FadeIn time.Duration

	// Volume is the initial linear volume in [0, 1].
	Volume float64

	// QueueSize bounds the number of pending operations. Defaults to 64.
	QueueSize int
}

// Player serializes transport operations onto one worker goroutine.
//
// Operations return as soon as they are queued. They run in submission
// order, each to completion before the next one starts. Device failures
// are logged and leave the player stopped or unchanged.
type Player struct {
	device Device
	logger *zap.Logger
	fadeIn time.Duration
	sleep  func(time.Duration)

	jobs   chan func()
	done   chan struct{}
	qmu    sync.Mutex
	closed bool

	mu     sync.RWMutex
	stream Stream
	path   string
	paused bool
	volume float64
}

// New creates a Player and starts its worker. logger may be nil.
func New(device Device, opts Options, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	p := &Player{
		device: device,
		logger: logger,
		fadeIn: opts.FadeIn,
		sleep:  time.Sleep,
		jobs:   make(chan func(), opts.QueueSize),
		done:   make(chan struct{}),
		volume: clampUnit(opts.Volume),
	}
	go p.run()
	return p
}

func (p *Player) run() {
	defer close(p.done)
	for job := range p.jobs {
		job()
	}
	p.release()
}

// enqueue reports false once the player is closed.
func (p *Player) enqueue(job func()) bool {
	p.qmu.Lock()
	defer p.qmu.Unlock()
	if p.closed {
		return false
	}
	p.jobs <- job
	return true
}

// Play starts path from the beginning. It does nothing if path is already
// playing.
func (p *Player) Play(path string) {
	p.enqueue(func() { p.play(path) })
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.enqueue(p.pause)
}

// Resume continues paused playback.
func (p *Player) Resume() {
	p.enqueue(p.resume)
}

// Stop ends playback and releases the file.
func (p *Player) Stop() {
	p.enqueue(p.release)
}

// Seek moves the playback position to ms milliseconds.
func (p *Player) Seek(ms int64) {
	p.enqueue(func() { p.seek(ms) })
}

// SetVolume sets the linear volume. Values outside [0, 1] are clamped.
func (p *Player) SetVolume(v float64) {
	p.enqueue(func() { p.setVolume(v) })
}

// Flush blocks until every operation queued before it has run.
func (p *Player) Flush() {
	ch := make(chan struct{})
	if p.enqueue(func() { close(ch) }) {
		<-ch
	}
}

// Close runs the pending operations, stops playback and stops the worker.
// Operations queued after Close are ignored.
func (p *Player) Close() {
	p.qmu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.qmu.Unlock()
	<-p.done
}

// IsPlaying reports whether a file is playing and has not reached its end.
func (p *Player) IsPlaying() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stream != nil && !p.paused && !p.stream.Finished()
}

// IsPaused reports whether a file is loaded and paused.
func (p *Player) IsPaused() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stream != nil && p.paused
}

// PositionMs returns the playback position, or 0 when nothing is loaded.
func (p *Player) PositionMs() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stream == nil {
		return 0
	}
	return p.stream.PositionMs()
}

// DurationMs returns the length of the loaded file, or 0 when nothing is
// loaded or the length is unknown.
func (p *Player) DurationMs() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stream == nil {
		return 0
	}
	return p.stream.DurationMs()
}

// Path returns the loaded file, or "".
func (p *Player) Path() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.path
}

// Volume returns the linear volume.
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volume
}

func (p *Player) play(path string) {
	if path == "" {
		return
	}
	if p.Path() == path && p.IsPlaying() {
		p.logger.Debug("already playing", zap.String("path", path))
		return
	}
	p.release()

	s, err := p.device.Open(path)
	if err != nil {
		p.logger.Warn("failed to open audio file", zap.String("path", path), zap.Error(err))
		return
	}
	minDB, _ := p.device.GainRange()
	if err := s.SetGain(minDB); err != nil {
		p.logger.Debug("failed to mute stream", zap.Error(err))
	}
	if err := s.Start(); err != nil {
		p.logger.Warn("failed to start playback", zap.String("path", path), zap.Error(err))
		s.Close()
		return
	}

	p.mu.Lock()
	p.stream = s
	p.path = path
	p.paused = false
	p.mu.Unlock()

	p.fade(s)
}

// fade raises the gain from silence to the current volume.
func (p *Player) fade(s Stream) {
	minDB, maxDB := p.device.GainRange()
	volume := p.Volume()
	if p.fadeIn <= 0 {
		s.SetGain(Gain(volume, minDB, maxDB))
		return
	}
	step := p.fadeIn / fadeSteps
	for i := 1; i <= fadeSteps; i++ {
		if err := s.SetGain(Gain(volume*float64(i)/fadeSteps, minDB, maxDB)); err != nil {
			p.logger.Debug("fade interrupted", zap.Error(err))
			return
		}
		p.sleep(step)
	}
}

func (p *Player) pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream == nil || p.paused {
		return
	}
	if err := p.stream.Pause(); err != nil {
		p.logger.Warn("failed to pause", zap.String("path", p.path), zap.Error(err))
		return
	}
	p.paused = true
}

func (p *Player) resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream == nil || !p.paused {
		return
	}
	if err := p.stream.Resume(); err != nil {
		p.logger.Warn("failed to resume", zap.String("path", p.path), zap.Error(err))
		return
	}
	p.paused = false
}

func (p *Player) seek(ms int64) {
	p.mu.RLock()
	s, path := p.stream, p.path
	p.mu.RUnlock()
	if s == nil {
		return
	}
	if err := s.Seek(max(ms, 0)); err != nil {
		p.logger.Warn("failed to seek", zap.String("path", path), zap.Int64("ms", ms), zap.Error(err))
	}
}

func (p *Player) setVolume(v float64) {
	p.mu.Lock()
	p.volume = clampUnit(v)
	s, volume := p.stream, p.volume
	p.mu.Unlock()
	if s == nil {
		return
	}
	minDB, maxDB := p.device.GainRange()
	if err := s.SetGain(Gain(volume, minDB, maxDB)); err != nil {
		p.logger.Warn("failed to set volume", zap.Error(err))
	}
}

// release closes the loaded stream, if any.
func (p *Player) release() {
	p.mu.Lock()
	s, path := p.stream, p.path
	p.stream = nil
	p.path = ""
	p.paused = false
	p.mu.Unlock()
	if s == nil {
		return
	}
	if err := s.Close(); err != nil {
		p.logger.Warn("failed to close audio file", zap.String("path", path), zap.Error(err))
	}
}

// Gain maps a linear volume to decibels, clamped to [minDB, maxDB].
// Volumes at or below zero map to minDB.
func Gain(v, minDB, maxDB float64) float64 {
	v = clampUnit(v)
	if v == 0 {
		return minDB
	}
	db := 20 * math.Log10(v)
	return math.Min(math.Max(db, minDB), maxDB)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}
