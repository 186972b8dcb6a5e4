// Package player plays one audio file at a time on an output Device.
//
// # Player
//
// All transport operations are queued and run in order by a single worker
// goroutine, so callers never block on the device:
//
//	p := player.New(player.NewNullDevice(probe.DurationSeconds), player.Options{
//	    FadeIn: 20 * time.Millisecond,
//	    Volume: 0.8,
//	}, logger)
//	defer p.Close()
//
//	p.Play("/music/Roxy - Avalon.flac")
//	p.Seek(30_000)
//
// Playing the file that is already playing is a no-op. Every start fades
// in from silence over Options.FadeIn.
//
// # Volume
//
// Volume is a linear value in [0, 1] mapped to a gain of 20·log10(v) dB,
// clamped to the device's gain range. Zero maps to the device minimum.
//
// # Observers
//
// IsPlaying, IsPaused, PositionMs and DurationMs may be called from any
// goroutine, including while the worker is busy.
package player
